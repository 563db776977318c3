package tracker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vsariola/chiptrack/tracker"
)

type fakeMIDIInput struct {
	name   string
	open   bool
	broken bool
}

func (d *fakeMIDIInput) Open() error {
	if d.broken {
		return errors.New("device busy")
	}
	d.open = true
	return nil
}

func (d *fakeMIDIInput) Close() error {
	d.open = false
	return nil
}

func (d *fakeMIDIInput) IsOpen() bool   { return d.open }
func (d *fakeMIDIInput) String() string { return d.name }

type fakeMIDIContext struct {
	inputs []*fakeMIDIInput
	closed int
}

func (c *fakeMIDIContext) Inputs(yield func(input tracker.MIDIInputDevice) bool) {
	for _, i := range c.inputs {
		if !yield(i) {
			return
		}
	}
}
func (c *fakeMIDIContext) Close()                       { c.closed++ }
func (c *fakeMIDIContext) Support() tracker.MIDISupport { return tracker.MIDISupported }

func sendNote(t *testing.T, f *fixture, note byte) {
	t.Helper()
	ev := tracker.NoteEvent{Note: note, On: true, Velocity: 100}
	if !tracker.TrySend(f.model.Broker().ToModel, tracker.MsgToModel{Data: ev}) {
		t.Fatalf("broker is full")
	}
}

func TestMIDINoteInput(t *testing.T) {
	f := newFixture(t)
	f.model.MIDI().InputtingNotes().SetValue(true)
	sendNote(t, f, 62)
	f.model.Tick(f.in)
	r := f.row(0, 0, 0)
	if r.Semitone() != 2 || r.Octave != 3 {
		t.Errorf("recorded note: semitone %d octave %d, expected 2 and 3", r.Semitone(), r.Octave)
	}
	if got := f.model.Tracker().Cursor().Y; got != 1 {
		t.Errorf("cursor did not advance: row %d", got)
	}
}

func TestMIDINotePreview(t *testing.T) {
	f := newFixture(t)
	f.model.Tracker().SetCursor(tracker.Point{X: tracker.ChannelColumns, Y: 0})
	sendNote(t, f, 48)
	f.model.Tick(f.in)
	if f.row(0, 1, 0).HasNote() {
		t.Errorf("note was recorded without note input")
	}
	if len(f.engine.triggered) != 1 {
		t.Fatalf("expected one preview, got %d", len(f.engine.triggered))
	}
	if got := f.engine.triggered[0]; got.channel != 1 || got.octave != 2 || got.note != 0 {
		t.Errorf("preview: %+v", got)
	}
}

func TestMIDIInputSelection(t *testing.T) {
	f := newFixture(t)
	ctx := &fakeMIDIContext{inputs: []*fakeMIDIInput{{name: "keys"}, {name: "pads"}}}
	midi := f.model.MIDI()
	midi.SetContext(ctx)
	in := midi.Input()
	if got := in.Range().Max; got != 2 {
		t.Fatalf("got %d inputs, expected 2", got)
	}
	if got := in.String(); got != "Closed" {
		t.Errorf("closed input label: %q", got)
	}
	in.SetValue(2)
	if !ctx.inputs[1].open || in.String() != "pads" {
		t.Errorf("input 2 was not opened")
	}
	in.SetValue(1)
	if ctx.inputs[1].open || !ctx.inputs[0].open {
		t.Errorf("switching inputs did not close the previous one")
	}
	midi.Refresh().Do()
	if !ctx.inputs[0].open || in.Value() != 1 {
		t.Errorf("refresh lost the open input")
	}
	if midi.Err() != nil {
		t.Errorf("unexpected error: %v", midi.Err())
	}
}

func TestMIDIInputtingNotesToggle(t *testing.T) {
	f := newFixture(t)
	b := f.model.MIDI().InputtingNotes()
	b.Toggle()
	if !b.Value() || !f.model.MIDI().InputtingNotes().Value() {
		t.Fatalf("toggle did not turn note input on")
	}
	b.Toggle()
	if b.Value() {
		t.Errorf("toggle did not turn note input off")
	}
}

func TestRunMIDICloser(t *testing.T) {
	broker := tracker.NewBroker()
	ctx := &fakeMIDIContext{}
	go tracker.RunMIDICloser(broker, ctx)
	if !tracker.TrySend(broker.CloseMIDI, struct{}{}) {
		t.Fatalf("could not request closing")
	}
	select {
	case <-broker.FinishedMIDI:
	case <-time.After(5 * time.Second):
		t.Fatalf("closer did not finish")
	}
	if ctx.closed != 1 {
		t.Errorf("context closed %d times, expected 1", ctx.closed)
	}
}

func TestFindMIDIInputByPrefix(t *testing.T) {
	ctx := &fakeMIDIContext{inputs: []*fakeMIDIInput{{name: "Keys 1"}, {name: "Pads"}}}
	if v, ok := tracker.FindMIDIInputByPrefix(ctx, "pa"); !ok || v != 2 {
		t.Errorf("got %d, %v, expected 2, true", v, ok)
	}
	if _, ok := tracker.FindMIDIInputByPrefix(ctx, "drums"); ok {
		t.Errorf("found an input that does not exist")
	}
	if _, ok := tracker.FindMIDIInputByPrefix(tracker.NullMIDIContext{}, ""); ok {
		t.Errorf("found an input in the null context")
	}
}

func TestMIDIOpenFailureAlerts(t *testing.T) {
	f := newFixture(t)
	ctx := &fakeMIDIContext{inputs: []*fakeMIDIInput{{name: "keys", broken: true}}}
	f.model.MIDI().SetContext(ctx)
	if f.model.MIDI().Input().SetValue(1) {
		t.Errorf("broken input was opened")
	}
	if f.model.MIDI().Err() == nil {
		t.Fatalf("no error after a failed open")
	}
	alert, ok := f.model.Alerts().Current()
	if !ok || alert.Type != tracker.Error {
		t.Fatalf("no error alert: %+v", alert)
	}
	for i := 0; i < tracker.AlertDuration; i++ {
		f.model.Tick(f.in)
	}
	if _, ok := f.model.Alerts().Current(); ok {
		t.Errorf("alert did not expire")
	}
}
