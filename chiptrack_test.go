package chiptrack_test

import (
	"bytes"
	"testing"

	"github.com/vsariola/chiptrack"
)

func TestFieldsDoNotOverlap(t *testing.T) {
	buf := make([]byte, chiptrack.FrameBytes)
	values := []int{63, 0, 42, 1}
	for i, v := range values {
		if !chiptrack.WriteField(buf, chiptrack.PatternIDBits, i, v) {
			t.Fatalf("WriteField(%d) failed", i)
		}
	}
	for i, v := range values {
		if got := chiptrack.ReadField(buf, chiptrack.PatternIDBits, i); got != v {
			t.Errorf("field %d: got %d, expected %d", i, got, v)
		}
	}
	// overwrite one field, the neighbours must survive
	chiptrack.WriteField(buf, chiptrack.PatternIDBits, 1, 21)
	for i, v := range []int{63, 21, 42, 1} {
		if got := chiptrack.ReadField(buf, chiptrack.PatternIDBits, i); got != v {
			t.Errorf("after overwrite field %d: got %d, expected %d", i, got, v)
		}
	}
}

func TestFieldLayoutIsLittleEndian(t *testing.T) {
	buf := make([]byte, 3)
	chiptrack.WriteField(buf, 6, 0, 1)
	chiptrack.WriteField(buf, 6, 1, 2)
	chiptrack.WriteField(buf, 6, 2, 3)
	chiptrack.WriteField(buf, 6, 3, 4)
	// 1 | 2<<6 | 3<<12 | 4<<18
	packed := 1 | 2<<6 | 3<<12 | 4<<18
	expected := []byte{byte(packed), byte(packed >> 8), byte(packed >> 16)}
	if !bytes.Equal(buf, expected) {
		t.Errorf("got % x, expected % x", buf, expected)
	}
}

func TestFieldOutOfRange(t *testing.T) {
	buf := make([]byte, 3)
	if chiptrack.WriteField(buf, 6, 4, 1) {
		t.Error("WriteField past the buffer should fail")
	}
	if got := chiptrack.ReadField(buf, 6, 4); got != 0 {
		t.Errorf("ReadField past the buffer: got %d, expected 0", got)
	}
}

func TestPatternIDWraps(t *testing.T) {
	tests := []struct {
		id, expected int
	}{
		{0, 0},
		{1, 1},
		{chiptrack.Patterns, chiptrack.Patterns},
		{-1, chiptrack.Patterns},
		{chiptrack.Patterns + 1, 0},
	}
	for frame := 0; frame < chiptrack.Frames; frame++ {
		for channel := 0; channel < chiptrack.Channels; channel++ {
			for _, tt := range tests {
				var f chiptrack.FrameTable
				f.SetPatternID(frame, channel, tt.id)
				if got := f.PatternID(frame, channel); got != tt.expected {
					t.Fatalf("frame %d channel %d id %d: got %d, expected %d", frame, channel, tt.id, got, tt.expected)
				}
			}
		}
	}
}

func TestResolveEmptyPattern(t *testing.T) {
	var m chiptrack.Music
	if p := m.Pattern(0, 0, 0); p != nil {
		t.Error("expected no pattern for id 0")
	}
	m.Tracks[2].Frames.SetPatternID(5, 3, 7)
	if p := m.Pattern(2, 5, 3); p != &m.Patterns[6] {
		t.Error("expected pattern 7 to resolve to pool index 6")
	}
	if p := m.Pattern(chiptrack.Tracks, 0, 0); p != nil {
		t.Error("expected nil for an out of range track")
	}
}

func TestRowRecordIsBijective(t *testing.T) {
	for i := 0; i < 1<<24; i += 4099 {
		b := []byte{byte(i), byte(i >> 8), byte(i >> 16)}
		r, err := chiptrack.UnmarshalRow(b)
		if err != nil {
			t.Fatal(err)
		}
		out, _ := r.MarshalBinary()
		if !bytes.Equal(b, out) {
			t.Fatalf("record % x came back as % x", b, out)
		}
	}
}

func TestRowFieldsRoundTrip(t *testing.T) {
	row := chiptrack.Row{Note: chiptrack.NoteStart + 11, Octave: 7, Sfx: 63, Command: chiptrack.CommandDelay, Param1: 15, Param2: 9}
	b, _ := row.MarshalBinary()
	got, err := chiptrack.UnmarshalRow(b)
	if err != nil {
		t.Fatal(err)
	}
	if got != row {
		t.Errorf("got %+v, expected %+v", got, row)
	}
	if s := got.NoteString(); s != "B-8" {
		t.Errorf("NoteString: got %q", s)
	}
}

func TestPatternRows(t *testing.T) {
	var p chiptrack.Pattern
	p.Rows[10] = chiptrack.Row{Note: chiptrack.NoteStart, Octave: 3, Sfx: 33}
	p.Rows[11] = chiptrack.Row{Note: chiptrack.NoteStop}
	data, err := p.MarshalRows(10, 2)
	if err != nil {
		t.Fatal(err)
	}
	var q chiptrack.Pattern
	if err := q.UnmarshalRows(62, data); err != nil {
		t.Fatal(err)
	}
	if q.Rows[62] != p.Rows[10] || q.Rows[63] != p.Rows[11] {
		t.Error("rows did not survive marshaling")
	}
	if err := q.UnmarshalRows(63, data); err == nil {
		t.Error("expected an error when the rows do not fit")
	}
	if _, err := p.MarshalRows(63, 2); err == nil {
		t.Error("expected an error when marshaling past the end")
	}
}

func TestSampleRoundTrip(t *testing.T) {
	s := chiptrack.Sample{Note: 11, Octave: 5, Speed: 3}
	s.Data[7] = 0xaa
	b, _ := s.MarshalBinary()
	var got chiptrack.Sample
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("got %+v, expected %+v", got, s)
	}
	if err := got.UnmarshalBinary(b[1:]); err == nil {
		t.Error("expected a size error")
	}
}
