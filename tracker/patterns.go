package tracker

import "github.com/vsariola/chiptrack"

// PatternID returns the id of the pattern a channel plays in a frame of the
// current track, 0 if none.
func (m *Model) PatternID(frame, channel int) int {
	return m.music.PatternID(m.d.Track, frame, channel)
}

// SetPatternID assigns a pattern to a channel in a frame of the current
// track. Ids outside [0, Patterns] wrap around. Assigning is always a
// committed change, even when the id stays the same.
func (m *Model) SetPatternID(frame, channel, id int) {
	if frame < 0 || frame >= chiptrack.Frames || channel < 0 || channel >= chiptrack.Channels {
		return
	}
	defer m.change("SetPatternID")()
	m.track().Frames.SetPatternID(frame, channel, id)
}

// AddChannelPattern steps the pattern of a channel in the current frame by
// delta, wrapping around.
func (m *Model) AddChannelPattern(channel, delta int) {
	m.SetPatternID(m.d.Frame, channel, m.PatternID(m.d.Frame, channel)+delta)
}

// pattern resolves the pattern a channel plays in a frame of the current
// track, nil if none.
func (m *Model) pattern(frame, channel int) *chiptrack.Pattern {
	return m.music.Pattern(m.d.Track, frame, channel)
}

// enterPatternDigit sets the tens (pos 1) or ones (pos 0) digit of the
// pattern id of a channel in a frame. Ids above Patterns are rejected.
func (m *Model) enterPatternDigit(frame, channel, pos, digit int) bool {
	id := SetDigit(pos, m.PatternID(frame, channel), digit)
	if id > chiptrack.Patterns {
		return false
	}
	m.SetPatternID(frame, channel, id)
	return true
}
