package tracker

import (
	"encoding/hex"
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/vsariola/chiptrack"
	"golang.org/x/exp/slices"
)

type (
	// Clipboard is the text clipboard of the host. Text returned by Text
	// must be handed back to Free exactly once.
	Clipboard interface {
		HasText() bool
		Text() (text string, ok bool)
		Free(text string)
		SetText(text string)
	}

	// MemoryClipboard is a process local Clipboard.
	MemoryClipboard struct {
		text        string
		has         bool
		Outstanding int // texts retrieved but not yet freed
	}
)

const clipHeaderSize = 1

func (c *MemoryClipboard) HasText() bool { return c.has }

func (c *MemoryClipboard) Text() (string, bool) {
	if !c.has {
		return "", false
	}
	c.Outstanding++
	return c.text, true
}

func (c *MemoryClipboard) Free(text string) { c.Outstanding-- }

func (c *MemoryClipboard) SetText(text string) {
	c.text = text
	c.has = true
}

// EncodeClip encodes packed row records as clipboard text: a one byte row
// count followed by the records, written as hexadecimal with the low nibble
// of each byte first.
func EncodeClip(rows []byte) (string, error) {
	if len(rows)%chiptrack.RowSize != 0 {
		return "", fault.Wrap(fmt.Errorf("%d bytes is not a whole number of rows", len(rows)),
			fmsg.With("cannot encode clip"), ftag.With(ftag.InvalidArgument))
	}
	count := len(rows) / chiptrack.RowSize
	if count > 0xff {
		return "", fault.Wrap(fmt.Errorf("%d rows do not fit in the header", count),
			fmsg.With("cannot encode clip"), ftag.With(ftag.InvalidArgument))
	}
	blob := make([]byte, 0, clipHeaderSize+len(rows))
	blob = append(blob, byte(count))
	blob = append(blob, rows...)
	return hex.EncodeToString(swapNibbles(blob)), nil
}

// DecodeClip decodes clipboard text into its row count and packed row
// records. The text must decode to exactly the number of records the header
// announces. A trailing odd character is ignored.
func DecodeClip(text string) (count int, rows []byte, err error) {
	text = text[:len(text)&^1]
	blob, err := hex.DecodeString(text)
	if err != nil {
		return 0, nil, fault.Wrap(err, fmsg.With("clip is not hexadecimal"), ftag.With(ftag.InvalidArgument))
	}
	if len(blob) <= clipHeaderSize {
		return 0, nil, fault.Wrap(fmt.Errorf("clip of %d bytes has no rows", len(blob)),
			fmsg.With("cannot decode clip"), ftag.With(ftag.InvalidArgument))
	}
	blob = swapNibbles(blob)
	count = int(blob[0])
	if count*chiptrack.RowSize != len(blob)-clipHeaderSize {
		return 0, nil, fault.Wrap(fmt.Errorf("header announces %d rows, clip has %d bytes", count, len(blob)),
			fmsg.With("cannot decode clip"), ftag.With(ftag.InvalidArgument))
	}
	return count, blob[clipHeaderSize:], nil
}

// EncodeSampleClip encodes a packed sample as clipboard text. Sample clips
// have no header; the text is the hexadecimal of the bytes, low nibble
// first.
func EncodeSampleClip(data []byte) string {
	return hex.EncodeToString(swapNibbles(slices.Clone(data)))
}

// DecodeSampleClip decodes clipboard text encoded with EncodeSampleClip.
// The text must hold exactly one packed sample. A trailing odd character is
// ignored.
func DecodeSampleClip(text string) ([]byte, error) {
	text = text[:len(text)&^1]
	blob, err := hex.DecodeString(text)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("clip is not hexadecimal"), ftag.With(ftag.InvalidArgument))
	}
	if len(blob) != chiptrack.SampleSize {
		return nil, fault.Wrap(fmt.Errorf("clip has %d bytes, a sample has %d", len(blob), chiptrack.SampleSize),
			fmsg.With("cannot decode sample clip"), ftag.With(ftag.InvalidArgument))
	}
	return swapNibbles(blob), nil
}

func swapNibbles(b []byte) []byte {
	for i, v := range b {
		b[i] = v<<4 | v>>4
	}
	return b
}

// readClip retrieves and decodes the clipboard text, releasing the text
// exactly once.
func (m *Model) readClip() (count int, rows []byte, err error) {
	if !m.clipboard.HasText() {
		return 0, nil, fault.New("clipboard is empty", ftag.With(ftag.NotFound))
	}
	text, ok := m.clipboard.Text()
	if !ok {
		return 0, nil, fault.New("clipboard is empty", ftag.With(ftag.NotFound))
	}
	defer m.clipboard.Free(text)
	return DecodeClip(text)
}

func (m *Model) copyToClipboard(cut bool) {
	switch m.d.View {
	case TrackerView:
		m.Tracker().copyToClipboard(cut)
	case PianoView:
		m.Piano().copyToClipboard(cut)
	}
}

func (m *Model) pasteFromClipboard() {
	switch m.d.View {
	case TrackerView:
		m.Tracker().pasteFromClipboard()
	case PianoView:
		m.Piano().pasteFromClipboard()
	}
}

// Copy copies the selected rows, or the cursor row, to the clipboard and
// resets the selection.
func (t *TrackerModel) Copy() { t.copyToClipboard(false) }

// Cut is Copy followed by clearing the copied rows.
func (t *TrackerModel) Cut() { t.copyToClipboard(true) }

// Paste writes the rows on the clipboard starting from the cursor row,
// dropping the rows that do not fit in the pattern.
func (t *TrackerModel) Paste() { t.pasteFromClipboard() }

func (t *TrackerModel) copyToClipboard(cut bool) {
	m := (*Model)(t)
	if t.InSelector() {
		return
	}
	p := m.pattern(t.d.Frame, t.Channel())
	if p == nil {
		return
	}
	row, count := t.selectedRows()
	data, err := p.MarshalRows(row, count)
	if err != nil {
		return
	}
	text, err := EncodeClip(data)
	if err != nil {
		return
	}
	m.clipboard.SetText(text)
	if cut {
		defer m.change("Cut")()
		p.Clear(row, count)
	}
	m.resetSelection()
}

func (t *TrackerModel) pasteFromClipboard() {
	m := (*Model)(t)
	y := t.d.Tracker.Edit.Y
	p := m.pattern(t.d.Frame, t.Channel())
	if p == nil || y < 0 {
		return
	}
	count, rows, err := m.readClip()
	if err != nil {
		return
	}
	if y+count > chiptrack.PatternRows {
		count = chiptrack.PatternRows - y
	}
	defer m.change("Paste")()
	if err := p.UnmarshalRows(y, rows[:count*chiptrack.RowSize]); err != nil {
		m.changeCancel = true
	}
}

// Copy copies the whole pattern the piano channel plays in the current
// frame.
func (p *PianoModel) Copy() { p.copyToClipboard(false) }

// Cut is Copy followed by clearing the pattern.
func (p *PianoModel) Cut() { p.copyToClipboard(true) }

// Paste replaces the whole pattern the piano channel plays in the current
// frame. Only clips of exactly one pattern are accepted.
func (p *PianoModel) Paste() { p.pasteFromClipboard() }

func (p *PianoModel) copyToClipboard(cut bool) {
	m := (*Model)(p)
	pat := m.pattern(p.d.Frame, p.d.Piano.Channel)
	if pat == nil {
		return
	}
	data, err := pat.MarshalRows(0, chiptrack.PatternRows)
	if err != nil {
		return
	}
	text, err := EncodeClip(data)
	if err != nil {
		return
	}
	m.clipboard.SetText(text)
	if cut {
		defer m.change("Cut")()
		pat.Clear(0, chiptrack.PatternRows)
	}
}

func (p *PianoModel) pasteFromClipboard() {
	m := (*Model)(p)
	pat := m.pattern(p.d.Frame, p.d.Piano.Channel)
	if pat == nil {
		return
	}
	count, rows, err := m.readClip()
	if err != nil || count != chiptrack.PatternRows {
		return
	}
	defer m.change("Paste")()
	if err := pat.UnmarshalRows(0, rows); err != nil {
		m.changeCancel = true
	}
}
