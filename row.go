package chiptrack

import (
	"errors"
	"fmt"
)

type (
	// Row is one time step of a pattern. All the fields are small unsigned
	// integers; see RowSize for the packed representation.
	Row struct {
		Note    int     `yaml:"note"`   // NoteNone, NoteStop or NoteStart + semitone
		Octave  int     `yaml:"octave"` // 0..MaxOctave
		Sfx     int     `yaml:"sfx"`    // 0..SfxCount-1
		Command Command `yaml:"command"`
		Param1  int     `yaml:"param1"` // 0..15
		Param2  int     `yaml:"param2"` // 0..15
	}

	// Command is the effect command of a row. The meaning of the two
	// parameter nibbles depends on the command.
	Command int
)

const (
	NoteNone  = 0
	NoteStop  = 1
	NoteStart = 4
	NoteCount = 12 // semitones in an octave
)

const (
	CommandEmpty Command = iota
	CommandVolume
	CommandChord
	CommandJump
	CommandSlide
	CommandPitch
	CommandVibrato
	CommandDelay
	CommandCount
)

// CommandSymbols lists the single character symbol of each command, in
// command order. Entering a symbol in the command column selects the command
// at the same index.
const CommandSymbols = "0MCJSPVD"

// RowSize is the size of a packed row record in bytes.
const RowSize = 3

var commandNames = [CommandCount]string{"empty", "master volume", "chord", "jump", "slide", "pitch", "vibrato", "delay"}

var noteNames = [NoteCount]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

func (c Command) String() string {
	if c < 0 || c >= CommandCount {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// Symbol returns the single character symbol of the command.
func (c Command) Symbol() byte {
	if c < 0 || c >= CommandCount {
		return '?'
	}
	return CommandSymbols[c]
}

// HasNote reports whether the row triggers a real note, i.e. it is neither
// empty nor a stop.
func (r Row) HasNote() bool { return r.Note >= NoteStart }

// Semitone returns the semitone of the note, 0..11, or -1 when the row has
// no real note.
func (r Row) Semitone() int {
	if !r.HasNote() {
		return -1
	}
	return r.Note - NoteStart
}

// NoteString returns a tracker style textual representation, e.g. "C#4",
// "---" for an empty row or "^^^" for a stop.
func (r Row) NoteString() string {
	switch {
	case r.Note == NoteStop:
		return "^^^"
	case !r.HasNote():
		return "---"
	}
	return fmt.Sprintf("%s%d", noteNames[r.Semitone()%NoteCount], r.Octave+1)
}

// SetSfx sets the sound effect reference of the row, saturating to the valid
// range.
func (r *Row) SetSfx(sfx int) {
	r.Sfx = max(min(sfx, SfxCount-1), 0)
}

// MarshalBinary packs the row into its RowSize byte record:
//
//	byte 0: note (bits 0-3), param1 (bits 4-7)
//	byte 1: param2 (bits 0-3), command (bits 4-6), sfx high bit (bit 7)
//	byte 2: sfx low bits (bits 0-4), octave (bits 5-7)
//
// The layout uses all 24 bits, so packing and unpacking is a bijection.
func (r Row) MarshalBinary() ([]byte, error) {
	var b [RowSize]byte
	r.put(b[:])
	return b[:], nil
}

func (r Row) put(b []byte) {
	b[0] = byte(r.Note&0xf) | byte(r.Param1&0xf)<<4
	b[1] = byte(r.Param2&0xf) | byte(int(r.Command)&0x7)<<4 | byte((r.Sfx>>5)&1)<<7
	b[2] = byte(r.Sfx&0x1f) | byte(r.Octave&0x7)<<5
}

// UnmarshalRow unpacks a RowSize byte record.
func UnmarshalRow(b []byte) (Row, error) {
	if len(b) < RowSize {
		return Row{}, errors.New("row record too short")
	}
	return Row{
		Note:    int(b[0] & 0xf),
		Param1:  int(b[0] >> 4),
		Param2:  int(b[1] & 0xf),
		Command: Command((b[1] >> 4) & 0x7),
		Sfx:     int(b[1]>>7)<<5 | int(b[2]&0x1f),
		Octave:  int(b[2] >> 5),
	}, nil
}
