package tracker

import (
	"fmt"
	"strings"

	"github.com/vsariola/chiptrack"
)

type MIDIModel Model

func (m *Model) MIDI() *MIDIModel { return (*MIDIModel)(m) }

type (
	midiState struct {
		noteInput    bool
		currentInput MIDIInputDevice
		context      MIDIContext
		inputs       []MIDIInputDevice
		err          error
	}

	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int

	// NoteEvent is a note on or off received from a MIDI input. Note is the
	// MIDI key, 60 being the middle C.
	NoteEvent struct {
		Channel  int
		Note     byte
		On       bool
		Velocity byte
	}
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

// SetContext sets the MIDI driver context and refreshes the inputs.
func (m *MIDIModel) SetContext(ctx MIDIContext) {
	m.midi.context = ctx
	m.Refresh().Do()
}

// Err returns the last error opening or closing an input.
func (m *MIDIModel) Err() error { return m.midi.err }

func (m *MIDIModel) setErr(err error) {
	m.midi.err = err
	(*Model)(m).Alerts().Add(err.Error(), Error, AlertDuration)
}

// Refresh rescans the inputs, reopening the current input if it is still
// there.
func (m *MIDIModel) Refresh() Action { return MakeAction((*midiRefresh)(m)) }

type midiRefresh MIDIModel

func (m *midiRefresh) Do() {
	if m.midi.context == nil {
		return
	}
	m.midi.inputs = m.midi.inputs[:0]
	for i := range m.midi.context.Inputs {
		m.midi.inputs = append(m.midi.inputs, i)
		if m.midi.currentInput != nil && i.String() == m.midi.currentInput.String() {
			m.midi.currentInput.Close()
			m.midi.currentInput = nil
			if err := i.Open(); err != nil {
				(*MIDIModel)(m).setErr(fmt.Errorf("failed to reopen MIDI input port: %w", err))
				continue
			}
			m.midi.currentInput = i
		}
	}
}

// Input returns an Int selecting the MIDI input device; 0 means closed.
func (m *MIDIModel) Input() Int { return MakeInt((*midiInputDevices)(m)) }

type midiInputDevices MIDIModel

func (m *midiInputDevices) Value() int {
	if m.midi.currentInput == nil {
		return 0
	}
	for i, d := range m.midi.inputs {
		if d == m.midi.currentInput {
			return i + 1
		}
	}
	return 0
}
func (m *midiInputDevices) SetValue(val int) bool {
	if val < 0 || val > len(m.midi.inputs) {
		return false
	}
	if m.midi.currentInput != nil {
		if err := m.midi.currentInput.Close(); err != nil {
			(*MIDIModel)(m).setErr(fmt.Errorf("failed to close current MIDI input port: %w", err))
		}
		m.midi.currentInput = nil
	}
	if val == 0 {
		return true
	}
	newInput := m.midi.inputs[val-1]
	if err := newInput.Open(); err != nil {
		(*MIDIModel)(m).setErr(fmt.Errorf("failed to open MIDI input port: %w", err))
		return false
	}
	m.midi.currentInput = newInput
	return true
}
func (m *midiInputDevices) Range() RangeInclusive {
	return RangeInclusive{Min: 0, Max: len(m.midi.inputs)}
}
func (m *midiInputDevices) StringOf(value int) string {
	if value < 0 || value > len(m.midi.inputs) {
		return ""
	}
	if value == 0 {
		if m.midi.context == nil {
			return "Not compiled"
		}
		switch m.midi.context.Support() {
		case MIDISupportNotCompiled:
			return "Not compiled"
		case MIDISupportNoDriver:
			return "No driver"
		default:
			return "Closed"
		}
	}
	return m.midi.inputs[value-1].String()
}

// InputtingNotes returns a Bool controlling whether the MIDI note events are
// entered in the tracker note column, or only previewed.
func (m *MIDIModel) InputtingNotes() Bool { return MakeBoolFromPtr(&m.midi.noteInput) }

// RunMIDICloser waits for a message on broker.CloseMIDI, closes the MIDI
// context and then closes broker.FinishedMIDI. Run it in its own goroutine.
func RunMIDICloser(broker *Broker, ctx MIDIContext) {
	<-broker.CloseMIDI
	ctx.Close()
	close(broker.FinishedMIDI)
}

// handleNoteEvent enters a note on in the note column of the tracker cursor
// when inputting notes, and otherwise previews it. Note offs are ignored;
// the preview stops by itself.
func (m *MIDIModel) handleNoteEvent(e NoteEvent) {
	if !e.On {
		return
	}
	model := (*Model)(m)
	note := int(e.Note) % chiptrack.NoteCount
	octave := clamp(int(e.Note)/chiptrack.NoteCount-2, 0, chiptrack.MaxOctave)
	t := model.Tracker()
	if m.midi.noteInput && m.d.View == TrackerView && !t.InSelector() && t.Column() <= ColumnSemitone {
		if model.RowEditor().SetNote(t.Ref(), note, octave, m.d.LastSfx) {
			t.move(NavDown)
		}
		return
	}
	row := chiptrack.Row{Note: chiptrack.NoteStart + note, Octave: octave, Sfx: m.d.LastSfx}
	channel := m.d.Piano.Channel
	if m.d.View == TrackerView {
		channel = t.Channel()
	}
	model.Play().Note(row, channel)
}

// FindMIDIInputByPrefix returns the value of the Input Int selecting the
// first input whose name starts with prefix, case insensitively.
func FindMIDIInputByPrefix(ctx MIDIContext, prefix string) (value int, ok bool) {
	if ctx == nil {
		return 0, false
	}
	prefix = strings.ToLower(prefix)
	i := 0
	for input := range ctx.Inputs {
		i++
		if strings.HasPrefix(strings.ToLower(input.String()), prefix) {
			return i, true
		}
	}
	return 0, false
}

// NullMIDIContext is a mockup MIDIContext if you don't want to create a real
// one.
type NullMIDIContext struct{}

func (m NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (m NullMIDIContext) Close()                                        {}
func (m NullMIDIContext) Support() MIDISupport                          { return MIDISupportNotCompiled }
