package tracker_test

import (
	"testing"

	"github.com/vsariola/chiptrack"
	"github.com/vsariola/chiptrack/tracker"
)

type synthEvent struct {
	kind                  string
	channel, sfx, note    int
	octave, volume, speed int
}

type recordingSynth struct {
	events []synthEvent
}

func (s *recordingSynth) Trigger(channel, sfx, note, octave, volume, speed int) {
	s.events = append(s.events, synthEvent{"trigger", channel, sfx, note, octave, volume, speed})
}
func (s *recordingSynth) Release(channel int) {
	s.events = append(s.events, synthEvent{kind: "release", channel: channel})
}
func (s *recordingSynth) Mute(channel int) {
	s.events = append(s.events, synthEvent{kind: "mute", channel: channel})
}

func (s *recordingSynth) count(kind string) int {
	n := 0
	for _, e := range s.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func TestTickRow(t *testing.T) {
	for _, tc := range []struct{ tick, tempo, speed, want int }{
		{0, 150, 6, 0},
		{5, 150, 6, 0},
		{6, 150, 6, 1},
		{60, 150, 6, 10},
		{60, 150, 3, 20},
		{60, 75, 6, 5},
		{60, 150, 0, 0},
	} {
		if got := tracker.TickRow(tc.tick, tc.tempo, tc.speed); got != tc.want {
			t.Errorf("TickRow(%d, %d, %d): got %d, expected %d", tc.tick, tc.tempo, tc.speed, got, tc.want)
		}
	}
}

func newSequencerMusic() *chiptrack.Music {
	music := new(chiptrack.Music)
	music.Tracks[0].Rows = chiptrack.PatternRows - 16
	music.Tracks[0].Frames.SetPatternID(0, 0, 1)
	music.Tracks[0].Frames.SetPatternID(1, 0, 2)
	music.Patterns[0].Rows[0] = chiptrack.Row{Note: chiptrack.NoteStart + 2, Octave: 4, Sfx: 7}
	music.Patterns[0].Rows[1] = chiptrack.Row{Note: chiptrack.NoteStop}
	music.Patterns[1].Rows[0] = chiptrack.Row{Note: chiptrack.NoteStart + 9, Octave: 3, Sfx: 1}
	return music
}

func TestSequencerPlaysRows(t *testing.T) {
	synth := &recordingSynth{}
	s := tracker.NewSequencer(newSequencerMusic(), synth)
	if st := s.Status(); st.State != tracker.Stopped || st.Track != -1 {
		t.Fatalf("new sequencer is not stopped: %+v", st)
	}
	s.Play(0, 0, -1, true, false)
	if got := s.Status().Row; got != -1 {
		t.Errorf("row before the first tick: got %d, expected -1", got)
	}
	s.Tick()
	if got := s.Status().Row; got != 0 {
		t.Errorf("row after the first tick: got %d, expected 0", got)
	}
	if len(synth.events) != 1 {
		t.Fatalf("expected one trigger, got %+v", synth.events)
	}
	if got, want := synth.events[0], (synthEvent{"trigger", 0, 7, 2, 4, chiptrack.MaxVolume, 0}); got != want {
		t.Errorf("trigger: got %+v, expected %+v", got, want)
	}
	for i := 0; i < 6; i++ {
		s.Tick()
	}
	if got := s.Status().Row; got != 1 {
		t.Errorf("row after 7 ticks: got %d, expected 1", got)
	}
	if synth.count("release") != 1 {
		t.Errorf("stop note did not release: %+v", synth.events)
	}
}

func TestSequencerLoopsFrame(t *testing.T) {
	s := tracker.NewSequencer(newSequencerMusic(), nil)
	s.Play(0, 0, -1, true, false)
	for i := 0; i < 16*6+1; i++ {
		s.Tick()
	}
	if st := s.Status(); st.Frame != 0 || st.Row != 0 || st.State != tracker.PlayingFrame {
		t.Errorf("status after a frame: %+v", st)
	}
}

func TestSequencerWalksTrack(t *testing.T) {
	synth := &recordingSynth{}
	s := tracker.NewSequencer(newSequencerMusic(), synth)
	s.Play(0, -1, -1, true, false)
	for i := 0; i < 16*6+1; i++ {
		s.Tick()
	}
	if st := s.Status(); st.Frame != 1 || st.Row != 0 || st.State != tracker.PlayingTrack {
		t.Errorf("status after a frame: %+v", st)
	}
	last := synth.events[len(synth.events)-1]
	if last.kind != "trigger" || last.note != 9 || last.sfx != 1 {
		t.Errorf("second frame was not triggered: %+v", last)
	}
	for i := 0; i < (chiptrack.Frames-1)*16*6; i++ {
		s.Tick()
	}
	if st := s.Status(); st.Frame != 0 || st.Track != 0 {
		t.Errorf("looping track did not wrap to the first frame: %+v", st)
	}
}

func TestSequencerStopsAtTrackEnd(t *testing.T) {
	s := tracker.NewSequencer(newSequencerMusic(), nil)
	s.Play(0, -1, -1, false, false)
	for i := 0; i < chiptrack.Frames*16*6+1; i++ {
		s.Tick()
	}
	if st := s.Status(); st.State != tracker.Stopped || st.Track != -1 {
		t.Errorf("non looping track did not stop: %+v", st)
	}
}

func TestSequencerStartsFromRow(t *testing.T) {
	s := tracker.NewSequencer(newSequencerMusic(), nil)
	s.Play(0, 2, 5, true, false)
	s.Tick()
	if st := s.Status(); st.Frame != 2 || st.Row != 5 {
		t.Errorf("status: %+v", st)
	}
}

func TestSequencerPreviewDuration(t *testing.T) {
	synth := &recordingSynth{}
	s := tracker.NewSequencer(newSequencerMusic(), synth)
	s.TriggerNote(3, 0, 4, 2, 1, chiptrack.MaxVolume, 0)
	s.Tick()
	if synth.count("release") != 0 {
		t.Errorf("note released too early")
	}
	s.Tick()
	if synth.count("release") != 1 {
		t.Errorf("note not released after its duration: %+v", synth.events)
	}
	s.TriggerNote(3, 0, 4, -1, 2, chiptrack.MaxVolume, 0)
	for i := 0; i < 100; i++ {
		s.Tick()
	}
	if synth.count("release") != 1 {
		t.Errorf("sustained note was released")
	}
	s.StopChannel(2)
	if synth.count("release") != 2 {
		t.Errorf("StopChannel did not release")
	}
}

func TestSequencerDrivesModel(t *testing.T) {
	music := newSequencerMusic()
	seq := tracker.NewSequencer(music, nil)
	prefs := tracker.Preferences{View: "tracker", Follow: true, MaxUndo: 8}
	m := tracker.NewModel(nil, music, seq, nil, prefs)
	m.Play().Frame().Do()
	in := &tracker.KeySet{}
	for i := 0; i < 3*6+1; i++ {
		seq.Tick()
		m.Tick(in)
	}
	if got := m.Tracker().Cursor().Y; got != 3 {
		t.Errorf("followed row: got %d, expected 3", got)
	}
	m.Play().Stop().Do()
	if seq.Status().State != tracker.Stopped {
		t.Errorf("stop action did not stop the sequencer")
	}
}

func TestSequencerSkipsInvalidPatternIDs(t *testing.T) {
	music := newSequencerMusic()
	frames := &music.Tracks[0].Frames
	chiptrack.WriteField(frames[:chiptrack.FrameBytes], chiptrack.PatternIDBits, 1, 63)
	synth := &recordingSynth{}
	s := tracker.NewSequencer(music, synth)
	s.Play(0, 0, -1, true, false)
	s.Tick()
	if st := s.Status(); st.Row != 0 {
		t.Fatalf("status: %+v", st)
	}
	if got := synth.count("trigger"); got != 1 {
		t.Errorf("got %d triggers, expected only the valid channel", got)
	}
	if len(synth.events) > 0 && synth.events[0].channel != 0 {
		t.Errorf("triggered channel %d", synth.events[0].channel)
	}
}
