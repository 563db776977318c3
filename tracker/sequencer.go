package tracker

import (
	"sync"

	"github.com/vsariola/chiptrack"
)

type (
	// Synth makes the sound of the notes the Sequencer triggers. It is
	// called with the sequencer lock held, so it should not block.
	Synth interface {
		Trigger(channel, sfx, note, octave, volume, speed int)
		Release(channel int)
		Mute(channel int)
	}

	// Sequencer is an Engine that walks the rows of a Music in time with the
	// tempo and speed of the played track, one Tick per frame, and triggers
	// the notes it meets on a Synth. It renders no audio itself.
	Sequencer struct {
		// we use mutex so that the status can be polled from another
		// goroutine than the one ticking
		mutex  sync.Mutex
		music  *chiptrack.Music
		synth  Synth
		status PlayStatus
		loop   bool
		tick   int // ticks since the start of the frame
		start  int // row the frame started from
		voices [chiptrack.Channels]voice
	}

	voice struct {
		remaining int // ticks until release, -1 sustains
		active    bool
	}
)

// NewSequencer returns a stopped sequencer over music. synth may be nil.
func NewSequencer(music *chiptrack.Music, synth Synth) *Sequencer {
	return &Sequencer{
		music:  music,
		synth:  synth,
		status: PlayStatus{State: Stopped, Track: -1, Frame: -1, Row: -1},
	}
}

// TickRow returns the row reached after tick ticks of playing at tempo and
// speed; with the default tempo and speed a row lasts six ticks.
func TickRow(tick, tempo, speed int) int {
	if speed <= 0 {
		return 0
	}
	return tick * tempo * chiptrack.DefaultSpeed / (speed * chiptrack.FrameRate * 15)
}

func (s *Sequencer) TriggerNote(sfx, note, octave, duration, channel, volume, speed int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if channel < 0 || channel >= chiptrack.Channels {
		return
	}
	if s.synth != nil {
		s.synth.Trigger(channel, sfx, note, octave, volume, speed)
	}
	s.voices[channel] = voice{remaining: duration, active: true}
}

func (s *Sequencer) StopChannel(channel int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.release(channel)
}

func (s *Sequencer) release(channel int) {
	if channel < 0 || channel >= chiptrack.Channels {
		return
	}
	if s.voices[channel].active && s.synth != nil {
		s.synth.Release(channel)
	}
	s.voices[channel] = voice{}
}

func (s *Sequencer) Play(track, frame, row int, loop, sustain bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if track < 0 || track >= chiptrack.Tracks {
		s.stop()
		return
	}
	s.loop = loop
	s.status = PlayStatus{State: PlayingTrack, Track: track, Frame: 0, Row: -1, Sustain: sustain}
	if frame >= 0 {
		s.status.State = PlayingFrame
		s.status.Frame = min(frame, chiptrack.Frames-1)
	}
	s.start = max(row, 0)
	s.tick = 0
	if !sustain {
		for ch := range s.voices {
			s.release(ch)
		}
	}
}

func (s *Sequencer) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.stop()
}

func (s *Sequencer) stop() {
	sustain := s.status.Sustain
	s.status = PlayStatus{State: Stopped, Track: -1, Frame: -1, Row: -1, Sustain: sustain}
	for ch := range s.voices {
		s.release(ch)
	}
}

func (s *Sequencer) Status() PlayStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.status
}

func (s *Sequencer) SetSustain(sustain bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.status.Sustain = sustain
}

func (s *Sequencer) MuteChannel(channel int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.synth != nil && channel >= 0 && channel < chiptrack.Channels {
		s.synth.Mute(channel)
	}
}

// Tick advances the sequencer by one frame: counts down the note durations
// and, when playing, moves to the row the tick falls on and triggers it.
func (s *Sequencer) Tick() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for ch := range s.voices {
		v := &s.voices[ch]
		if !v.active || v.remaining < 0 {
			continue
		}
		if v.remaining--; v.remaining <= 0 {
			s.release(ch)
		}
	}
	if s.status.State == Stopped {
		return
	}
	t := s.music.Track(s.status.Track)
	row := s.start + TickRow(s.tick, t.ActualTempo(), t.ActualSpeed())
	s.tick++
	if row == s.status.Row {
		return
	}
	if row >= t.VisibleRows() {
		if !s.nextFrame() {
			return
		}
		row = 0
	}
	s.status.Row = row
	s.triggerRow(s.status.Frame, row)
}

// nextFrame moves to the frame played after the current one. It returns
// false if the playback ended.
func (s *Sequencer) nextFrame() bool {
	s.start = 0
	s.tick = 1
	if s.status.State == PlayingFrame {
		return true
	}
	s.status.Frame++
	if s.status.Frame >= chiptrack.Frames {
		if !s.loop {
			s.stop()
			return false
		}
		s.status.Frame = 0
	}
	return true
}

// triggerRow plays a row of the frame on every channel with a valid pattern.
func (s *Sequencer) triggerRow(frame, row int) {
	for ch := 0; ch < chiptrack.Channels; ch++ {
		p := s.music.Pattern(s.status.Track, frame, ch)
		if p == nil {
			continue
		}
		r := p.Rows[row]
		switch {
		case r.Note == chiptrack.NoteStop:
			s.release(ch)
		case r.HasNote():
			if s.synth != nil {
				s.synth.Trigger(ch, r.Sfx, r.Semitone(), r.Octave, chiptrack.MaxVolume, 0)
			}
			s.voices[ch] = voice{remaining: -1, active: true}
		}
	}
}
