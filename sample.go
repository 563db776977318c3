package chiptrack

import "fmt"

type (
	// Sample is a sound effect definition. Its envelopes and waveform are
	// kept as an opaque blob; the sequencer only needs the note, octave and
	// speed it should be previewed with.
	Sample struct {
		Data   [SampleDataSize]byte
		Note   int // semitone, 0..11
		Octave int // 0..MaxOctave
		Speed  int // 0..7
	}

	// Samples is the sound effect bank referenced by the rows.
	Samples [SfxCount]Sample
)

const (
	SampleDataSize = 64
	// SampleSize is the size of a packed sample: the data followed by one
	// byte of note and octave and one byte of speed.
	SampleSize = SampleDataSize + 2
)

// MarshalBinary packs the sample into SampleSize bytes.
func (s Sample) MarshalBinary() ([]byte, error) {
	ret := make([]byte, SampleSize)
	copy(ret, s.Data[:])
	ret[SampleDataSize] = byte(s.Note&0xf) | byte(s.Octave&0x7)<<4
	ret[SampleDataSize+1] = byte(s.Speed & 0x7)
	return ret, nil
}

// UnmarshalBinary unpacks a sample packed with MarshalBinary.
func (s *Sample) UnmarshalBinary(data []byte) error {
	if len(data) != SampleSize {
		return fmt.Errorf("sample must be %d bytes, got %d", SampleSize, len(data))
	}
	copy(s.Data[:], data)
	s.Note = int(data[SampleDataSize] & 0xf)
	s.Octave = int(data[SampleDataSize]>>4) & 0x7
	s.Speed = int(data[SampleDataSize+1] & 0x7)
	return nil
}

// Copy returns a deep copy of the bank.
func (s *Samples) Copy() *Samples {
	ret := *s
	return &ret
}
