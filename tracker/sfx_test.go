package tracker_test

import (
	"testing"

	"github.com/vsariola/chiptrack"
	"github.com/vsariola/chiptrack/tracker"
)

type sfxFixture struct {
	sfx     *tracker.SfxModel
	samples *chiptrack.Samples
	engine  *fakeEngine
	in      *tracker.KeySet
}

func newSfxFixture() *sfxFixture {
	f := &sfxFixture{
		samples: new(chiptrack.Samples),
		engine:  newFakeEngine(),
		in:      &tracker.KeySet{},
	}
	f.sfx = tracker.NewSfxModel(f.samples, f.engine, nil, tracker.Preferences{Octave: 3})
	return f
}

func (f *sfxFixture) tick() {
	f.sfx.Tick(f.in)
	f.in.Clear()
}

func TestSfxPreviewWhileKeyHeld(t *testing.T) {
	f := newSfxFixture()
	f.samples[0].Speed = 2
	f.in.Press("Z")
	f.tick()
	if len(f.engine.triggered) != 1 {
		t.Fatalf("expected one trigger, got %d", len(f.engine.triggered))
	}
	want := trigger{sfx: 0, note: 0, octave: 3, duration: -1, channel: tracker.SfxPreviewChannel, volume: chiptrack.MaxVolume, speed: 2}
	if got := f.engine.triggered[0]; got != want {
		t.Errorf("trigger: got %+v, expected %+v", got, want)
	}
	if s := f.samples[0]; s.Note != 0 || s.Octave != 3 {
		t.Errorf("sample note: got %d/%d, expected 0/3", s.Note, s.Octave)
	}
	f.tick()
	f.tick()
	if len(f.engine.triggered) != 1 {
		t.Errorf("held key retriggered the preview")
	}
	f.in.Release("Z")
	f.in.Press("Q")
	f.tick()
	if len(f.engine.triggered) != 2 {
		t.Fatalf("note change did not restart the preview")
	}
	if got := f.engine.triggered[1]; got.note != 0 || got.octave != 4 {
		t.Errorf("restarted preview: %+v", got)
	}
	f.in.Release("Q")
	f.tick()
	if f.sfx.Previewing() {
		t.Errorf("preview still running after release")
	}
	if len(f.engine.stopped) != 1 || f.engine.stopped[0] != tracker.SfxPreviewChannel {
		t.Errorf("stopped channels: %v", f.engine.stopped)
	}
	if got := f.sfx.Checkpoints(); got != 2 {
		t.Errorf("got %d checkpoints, expected 2", got)
	}
}

func TestSfxClipboardAndUndo(t *testing.T) {
	f := newSfxFixture()
	f.samples[0].Data[10] = 0x5a
	f.sfx.SetNote(7, 2)
	f.in.Press(tracker.KeyCtrl)
	f.in.Press("C")
	f.tick()
	f.in.Release("C")
	f.sfx.Selected().SetValue(5)
	f.in.Press("V")
	f.tick()
	f.in.Release("V")
	if f.samples[5] != f.samples[0] {
		t.Errorf("pasted sample differs: %+v", f.samples[5])
	}
	f.in.Press("Z")
	f.tick()
	f.in.Release("Z")
	if f.samples[5] != (chiptrack.Sample{}) {
		t.Errorf("undo did not restore the empty sample")
	}
	if f.samples[0].Note != 7 {
		t.Errorf("undo of the paste reverted the note of sample 0")
	}
	f.in.Press("X")
	f.sfx.Selected().SetValue(0)
	f.tick()
	if f.samples[0] != (chiptrack.Sample{}) {
		t.Errorf("cut did not clear the sample")
	}
	if f.engine.triggered != nil {
		t.Errorf("shortcuts triggered a preview")
	}
}

func TestSfxSelectedRange(t *testing.T) {
	f := newSfxFixture()
	f.sfx.Selected().SetValue(100)
	if got := f.sfx.Selected().Value(); got != chiptrack.SfxCount-1 {
		t.Errorf("selected: got %d, expected %d", got, chiptrack.SfxCount-1)
	}
	if got := f.sfx.Selected().String(); got != "63" {
		t.Errorf("label: got %q", got)
	}
}
