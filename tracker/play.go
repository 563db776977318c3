package tracker

import "github.com/vsariola/chiptrack"

type (
	// Engine is the playback engine the editor drives. Frame and row -1
	// mean the start of the track or frame; track -1 stops.
	Engine interface {
		TriggerNote(sfx, note, octave, duration, channel, volume, speed int)
		StopChannel(channel int)
		Play(track, frame, row int, loop, sustain bool)
		Stop()
		Status() PlayStatus
		SetSustain(sustain bool)
		// MuteChannel silences the channel for the current tick.
		MuteChannel(channel int)
	}

	// PlayStatus is the playback position reported by the engine. Track is
	// -1 when nothing plays; Row is -1 before the first row is reached.
	PlayStatus struct {
		State   PlayState
		Track   int
		Frame   int
		Row     int
		Sustain bool
	}

	PlayState int

	PlayModel Model
)

const (
	Stopped PlayState = iota
	PlayingFrame
	PlayingTrack
)

func (s PlayState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case PlayingFrame:
		return "playing frame"
	case PlayingTrack:
		return "playing track"
	}
	return "unknown"
}

// nullEngine is used when the model has no engine: it never plays and
// ignores the notes.
type nullEngine struct{}

func (nullEngine) TriggerNote(sfx, note, octave, duration, channel, volume, speed int) {}
func (nullEngine) StopChannel(channel int)                                             {}
func (nullEngine) Play(track, frame, row int, loop, sustain bool)                      {}
func (nullEngine) Stop()                                                               {}
func (nullEngine) SetSustain(sustain bool)                                             {}
func (nullEngine) MuteChannel(channel int)                                             {}
func (nullEngine) Status() PlayStatus {
	return PlayStatus{State: Stopped, Track: -1, Frame: -1, Row: -1}
}

func (m *Model) Play() *PlayModel { return (*PlayModel)(m) }

// FrameRow returns an Action to loop the current frame from the tracker
// cursor row.
func (m *PlayModel) FrameRow() Action { return MakeAction((*playFrameRow)(m)) }

type playFrameRow PlayModel

func (m *playFrameRow) Do() {
	m.engine.Play(m.d.Track, m.d.Frame, m.d.Tracker.Edit.Y, true, m.d.Sustain)
}

// Frame returns an Action to loop the current frame.
func (m *PlayModel) Frame() Action { return MakeAction((*playFrame)(m)) }

type playFrame PlayModel

func (m *playFrame) Do() { m.engine.Play(m.d.Track, m.d.Frame, -1, true, m.d.Sustain) }

// Track returns an Action to play the current track from the beginning.
func (m *PlayModel) Track() Action { return MakeAction((*playTrack)(m)) }

type playTrack PlayModel

func (m *playTrack) Do() { m.engine.Play(m.d.Track, -1, -1, true, m.d.Sustain) }

// Stop returns an Action to stop the playback.
func (m *PlayModel) Stop() Action { return MakeAction((*playStop)(m)) }

type playStop PlayModel

func (m *playStop) Do() { m.engine.Stop() }

// Toggle starts playing the current frame when nothing plays, otherwise
// stops. With fromRow in the tracker view, the frame plays from the cursor
// row.
func (m *PlayModel) Toggle(fromRow bool) {
	if m.engine.Status().Track >= 0 {
		m.Stop().Do()
		return
	}
	if fromRow && m.d.View == TrackerView {
		m.FrameRow().Do()
		return
	}
	m.Frame().Do()
}

// Playing reports whether the engine plays the edited track.
func (m *PlayModel) Playing() bool { return m.engine.Status().Track == m.d.Track }

// IsPlayingRow reports whether the row of the current frame is playing, for
// highlighting.
func (m *PlayModel) IsPlayingRow(row int) bool {
	s := m.engine.Status()
	return s.Track == m.d.Track && s.Frame == m.d.Frame && s.Row == row
}

// Note previews a row on a channel. Nothing is triggered while music plays
// or when the row has no real note.
func (m *PlayModel) Note(row chiptrack.Row, channel int) {
	if m.engine.Status().State != Stopped || !row.HasNote() {
		return
	}
	m.engine.StopChannel(channel)
	m.engine.TriggerNote(row.Sfx, row.Semitone(), row.Octave, PreviewDuration, channel, chiptrack.MaxVolume, 0)
}

// follow copies the playback position to the tracker cursor when following
// the edited track.
func (m *Model) follow() {
	if !m.d.Follow {
		return
	}
	s := m.engine.Status()
	if s.Track == m.d.Track && m.d.Tracker.Edit.Y >= 0 && s.Row >= 0 {
		m.d.Frame = clamp(s.Frame, 0, chiptrack.Frames-1)
		m.d.Tracker.Edit.Y = s.Row
		m.updateTracker()
	}
}
