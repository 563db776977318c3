// Package chiptrack contains the document types of a pattern based chiptune
// sequencer: tracks made of frames, frames mapping each channel to a pattern
// in a shared pool, and patterns made of fixed size rows. The types here are
// plain data; the editing state machine lives in the tracker package.
package chiptrack

const (
	Tracks      = 8  // number of independent songs in a Music
	Frames      = 16 // frames in each track
	Channels    = 4  // parallel voices
	PatternRows = 64 // rows in each pattern
	Patterns    = 60 // size of the shared pattern pool

	// PatternIDBits is the width of one pattern id in the frame table. One
	// frame packs Channels ids, i.e. 24 bits or FrameBytes bytes.
	PatternIDBits = 6
	FrameBytes    = Channels * PatternIDBits / 8

	SfxCount  = 64
	MaxVolume = 15
	MaxOctave = 7

	// PitchDelta is the neutral value of the pitch command, split over the
	// two parameter nibbles.
	PitchDelta = 128

	DefaultTempo = 150
	DefaultSpeed = 6

	// FrameRate is the number of ticks per second.
	FrameRate    = 60
	NotesPerBeat = 4
)
