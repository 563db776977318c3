package chiptrack

// Music is the sequencer part of a project document: all the tracks and the
// shared pattern pool. It is a value type without references, so copying a
// Music is a deep copy.
type Music struct {
	Tracks   [Tracks]Track
	Patterns [Patterns]Pattern
}

// Copy returns a deep copy of the music.
func (m *Music) Copy() *Music {
	ret := *m
	return &ret
}

// Track returns the track at index, or nil if out of range.
func (m *Music) Track(index int) *Track {
	if index < 0 || index >= Tracks {
		return nil
	}
	return &m.Tracks[index]
}

// PatternID returns the id of the pattern a channel plays in a frame of a
// track, 0 if none.
func (m *Music) PatternID(track, frame, channel int) int {
	t := m.Track(track)
	if t == nil {
		return 0
	}
	return t.Frames.PatternID(frame, channel)
}

// Pattern resolves the pattern a channel plays in a frame of a track. It
// returns nil when no pattern is assigned; callers treat nil as "nothing to
// edit".
func (m *Music) Pattern(track, frame, channel int) *Pattern {
	id := m.PatternID(track, frame, channel)
	if id <= 0 || id > Patterns {
		return nil
	}
	return &m.Patterns[id-1]
}
