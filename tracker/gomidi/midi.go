package gomidi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vsariola/chiptrack/tracker"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	// RTMIDIContext lists the rtmidi inputs and forwards the note messages of
	// the open one to the model, through the broker.
	RTMIDIContext struct {
		driver             *rtmididrv.Driver
		broker             *tracker.Broker
		currentIn          drivers.In
		stopListening      func()
		inputDevices       []RTMIDIDevice
		devicesInitialized bool
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
	}
)

// NewContext opens the driver. If the driver cannot be opened, the context
// has no inputs and reports MIDISupportNoDriver.
func NewContext(broker *tracker.Broker) *RTMIDIContext {
	m := RTMIDIContext{broker: broker}
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	m.driver, _ = rtmididrv.New()
	return &m
}

func (m *RTMIDIContext) Inputs(yield func(tracker.MIDIInputDevice) bool) {
	if m.devicesInitialized {
		m.yieldCachedInputDevices(yield)
	} else {
		m.initInputDevices(yield)
	}
}

func (m *RTMIDIContext) yieldCachedInputDevices(yield func(tracker.MIDIInputDevice) bool) {
	for _, device := range m.inputDevices {
		if !yield(device) {
			break
		}
	}
}

func (m *RTMIDIContext) initInputDevices(yield func(tracker.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	for i := 0; i < len(ins); i++ {
		device := RTMIDIDevice{context: m, in: ins[i]}
		m.inputDevices = append(m.inputDevices, device)
		if !yield(device) {
			break
		}
	}
	m.devicesInitialized = true
}

func (m *RTMIDIContext) Support() tracker.MIDISupport {
	if m.driver == nil {
		return tracker.MIDISupportNoDriver
	}
	return tracker.MIDISupported
}

// Open an input device while closing the currently open if necessary.
func (d RTMIDIDevice) Open() error {
	c := d.context
	if c.currentIn == d.in {
		return nil
	}
	if c.driver == nil {
		return errors.New("no driver available")
	}
	if c.HasDeviceOpen() {
		c.closeCurrent()
	}
	c.currentIn = d.in
	if err := d.in.Open(); err != nil {
		c.currentIn = nil
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, c.HandleMessage)
	if err != nil {
		d.in.Close()
		c.currentIn = nil
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	c.stopListening = stop
	return nil
}

func (d RTMIDIDevice) Close() error {
	if d.context.currentIn != d.in {
		return nil
	}
	return d.context.closeCurrent()
}

func (d RTMIDIDevice) IsOpen() bool {
	return d.context.currentIn == d.in && d.in.IsOpen()
}

func (d RTMIDIDevice) String() string {
	return d.in.String()
}

func (c *RTMIDIContext) closeCurrent() error {
	if c.stopListening != nil {
		c.stopListening()
		c.stopListening = nil
	}
	in := c.currentIn
	c.currentIn = nil
	if in == nil || !in.IsOpen() {
		return nil
	}
	return in.Close()
}

func (c *RTMIDIContext) Close() {
	if c.driver == nil {
		return
	}
	c.closeCurrent()
	c.driver.Close()
}

func (c *RTMIDIContext) HasDeviceOpen() bool {
	return c.currentIn != nil && c.currentIn.IsOpen()
}

// TryToOpenBy opens the first input whose name starts with namePrefix, or
// the first input at all when takeFirst is set.
func (c *RTMIDIContext) TryToOpenBy(namePrefix string, takeFirst bool) error {
	if namePrefix == "" && !takeFirst {
		return nil
	}
	for input := range c.Inputs {
		if takeFirst || strings.HasPrefix(input.String(), namePrefix) {
			return input.Open()
		}
	}
	if takeFirst {
		return errors.New("could not find any MIDI input")
	}
	return fmt.Errorf("could not find any MIDI input starting with %q", namePrefix)
}

// HandleMessage is called by the driver goroutine; the note messages are
// posted to the model and the rest dropped.
func (c *RTMIDIContext) HandleMessage(msg midi.Message, timestampms int32) {
	var channel, key, velocity uint8
	isNoteOn := msg.GetNoteOn(&channel, &key, &velocity)
	isNoteOff := !isNoteOn && msg.GetNoteOff(&channel, &key, &velocity)
	if !isNoteOn && !isNoteOff || c.broker == nil {
		return
	}
	// a note on with zero velocity is a note off
	ev := tracker.NoteEvent{Channel: int(channel), Note: key, On: isNoteOn && velocity > 0, Velocity: velocity}
	tracker.TrySend(c.broker.ToModel, tracker.MsgToModel{Data: ev}) // if the channel is full, just drop the message
}
