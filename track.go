package chiptrack

type (
	// Track is one song: playback settings and a frame table telling which
	// pattern each channel plays in each frame. Tempo and Speed are stored as
	// offsets from DefaultTempo and DefaultSpeed so that a zeroed Track is a
	// valid default. Rows is how many rows are cut from the end of every
	// pattern when this track is played or edited.
	Track struct {
		Tempo  int
		Speed  int
		Rows   int
		Frames FrameTable
	}

	// FrameTable packs PatternIDBits wide pattern ids, Channels per frame, in
	// FrameBytes bytes per frame. Id 0 means no pattern, ids 1..Patterns
	// refer to the pattern pool with an offset of one.
	FrameTable [Frames * FrameBytes]byte
)

// PatternID returns the pattern id of a channel in a frame, or 0 if the
// frame or channel is out of range.
func (f *FrameTable) PatternID(frame, channel int) int {
	if frame < 0 || frame >= Frames || channel < 0 || channel >= Channels {
		return 0
	}
	return ReadField(f[frame*FrameBytes:(frame+1)*FrameBytes], PatternIDBits, channel)
}

// SetPatternID stores a pattern id, wrapping ids outside [0, Patterns]
// around: ids below 0 become Patterns and ids above Patterns become 0. It
// returns the id actually stored.
func (f *FrameTable) SetPatternID(frame, channel, id int) int {
	if frame < 0 || frame >= Frames || channel < 0 || channel >= Channels {
		return 0
	}
	id = WrapPatternID(id)
	WriteField(f[frame*FrameBytes:(frame+1)*FrameBytes], PatternIDBits, channel, id)
	return id
}

// WrapPatternID maps an out of range pattern id back to the valid range,
// wrapping instead of saturating.
func WrapPatternID(id int) int {
	if id < 0 {
		return Patterns
	}
	if id > Patterns {
		return 0
	}
	return id
}

// VisibleRows returns the number of rows in each pattern when playing or
// editing this track; always PatternRows - Rows.
func (t *Track) VisibleRows() int {
	return PatternRows - t.Rows
}

// ActualTempo returns the tempo in beats per minute.
func (t *Track) ActualTempo() int { return DefaultTempo + t.Tempo }

// ActualSpeed returns the number of ticks per row at the default tempo.
func (t *Track) ActualSpeed() int { return DefaultSpeed + t.Speed }
