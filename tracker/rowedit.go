package tracker

import (
	"strconv"
	"strings"

	"github.com/vsariola/chiptrack"
)

type (
	// RowEditor groups the mutations of single rows. Every method resolves
	// the pattern of the addressed row first; when there is no pattern the
	// edit is silently dropped and no checkpoint is taken.
	RowEditor Model

	// RowRef addresses a row of the pattern a channel plays in a frame of
	// the current track.
	RowRef struct {
		Frame, Channel, Row int
	}

	// columnEntry describes how a key press is entered in one tracker
	// column: decode turns the key into a value, accept checks the row can
	// take it, apply commits it and advance moves the cursor afterwards.
	columnEntry struct {
		decode  func(k keyPress) (int, bool)
		accept  func(r chiptrack.Row) bool
		apply   func(e *RowEditor, ref RowRef, col, value int) bool
		advance func(t *TrackerModel, col int)
	}

	keyPress struct {
		actions []string
		char    rune
	}
)

func (m *Model) RowEditor() *RowEditor { return (*RowEditor)(m) }

func (e *RowEditor) row(ref RowRef) *chiptrack.Row {
	if ref.Row < 0 || ref.Row >= chiptrack.PatternRows {
		return nil
	}
	p := (*Model)(e).pattern(ref.Frame, ref.Channel)
	if p == nil {
		return nil
	}
	return &p.Rows[ref.Row]
}

// Row returns the addressed row; ok is false when there is no pattern.
func (e *RowEditor) Row(ref RowRef) (row chiptrack.Row, ok bool) {
	r := e.row(ref)
	if r == nil {
		return chiptrack.Row{}, false
	}
	return *r, true
}

// edit applies f to the addressed row as a mutation of kind. If f returns
// false, the mutation is cancelled and no checkpoint is taken.
func (e *RowEditor) edit(ref RowRef, kind string, f func(r *chiptrack.Row) bool) bool {
	m := (*Model)(e)
	r := e.row(ref)
	if r == nil {
		return false
	}
	defer m.change(kind)()
	if !f(r) {
		m.changeCancel = true
		return false
	}
	return true
}

func (e *RowEditor) preview(ref RowRef) {
	if r, ok := e.Row(ref); ok {
		(*Model)(e).Play().Note(r, ref.Channel)
	}
}

// SetNote sets a note, 0..11, with octave and sound effect, and previews it.
// Octave and sound effect saturate to their ranges.
func (e *RowEditor) SetNote(ref RowRef, note, octave, sfx int) bool {
	if note < 0 || note >= chiptrack.NoteCount {
		return false
	}
	ok := e.edit(ref, "SetNote", func(r *chiptrack.Row) bool {
		r.Note = chiptrack.NoteStart + note
		r.Octave = clamp(octave, 0, chiptrack.MaxOctave)
		r.SetSfx(sfx)
		return true
	})
	if ok {
		e.preview(ref)
	}
	return ok
}

// SetStop makes the row stop the note playing on the channel.
func (e *RowEditor) SetStop(ref RowRef) bool {
	return e.edit(ref, "SetStop", func(r *chiptrack.Row) bool {
		r.Note = chiptrack.NoteStop
		r.Octave = 0
		return true
	})
}

// SetOctave sets the octave of the row, remembers it for the next notes and
// previews the row.
func (e *RowEditor) SetOctave(ref RowRef, octave int) bool {
	octave = clamp(octave, 0, chiptrack.MaxOctave)
	ok := e.edit(ref, "SetOctave", func(r *chiptrack.Row) bool {
		r.Octave = octave
		return true
	})
	if ok {
		e.d.LastOctave = octave
		e.preview(ref)
	}
	return ok
}

// SetSfx sets the sound effect of the row, remembers it for the next notes
// and previews the row.
func (e *RowEditor) SetSfx(ref RowRef, sfx int) bool {
	ok := e.edit(ref, "SetSfx", func(r *chiptrack.Row) bool {
		r.SetSfx(sfx)
		e.d.LastSfx = r.Sfx
		return true
	})
	if ok {
		e.preview(ref)
	}
	return ok
}

// ClearSfx resets the sound effect of the row to 0.
func (e *RowEditor) ClearSfx(ref RowRef) bool {
	return e.edit(ref, "ClearSfx", func(r *chiptrack.Row) bool {
		r.Sfx = 0
		return true
	})
}

// SetCommand sets the command of the row. A command replacing the empty
// command gets its default parameters.
func (e *RowEditor) SetCommand(ref RowRef, c chiptrack.Command) bool {
	if c < 0 || c >= chiptrack.CommandCount {
		return false
	}
	return e.edit(ref, "SetCommand", func(r *chiptrack.Row) bool {
		prev := r.Command
		r.Command = c
		if prev == chiptrack.CommandEmpty {
			setCommandDefaults(r)
		}
		return true
	})
}

func setCommandDefaults(r *chiptrack.Row) {
	switch r.Command {
	case chiptrack.CommandVolume:
		r.Param1, r.Param2 = chiptrack.MaxVolume, chiptrack.MaxVolume
	case chiptrack.CommandPitch:
		r.Param1, r.Param2 = chiptrack.PitchDelta>>4, chiptrack.PitchDelta&0xf
	}
}

func (e *RowEditor) SetParam1(ref RowRef, value int) bool {
	if value < 0 || value > 0xf {
		return false
	}
	return e.edit(ref, "SetParam1", func(r *chiptrack.Row) bool {
		r.Param1 = value
		return true
	})
}

func (e *RowEditor) SetParam2(ref RowRef, value int) bool {
	if value < 0 || value > 0xf {
		return false
	}
	return e.edit(ref, "SetParam2", func(r *chiptrack.Row) bool {
		r.Param2 = value
		return true
	})
}

// ClearParams zeroes both command parameters of the row.
func (e *RowEditor) ClearParams(ref RowRef) bool {
	return e.edit(ref, "ClearParams", func(r *chiptrack.Row) bool {
		r.Param1, r.Param2 = 0, 0
		return true
	})
}

// Clear zeroes count rows starting from the addressed row.
func (e *RowEditor) Clear(ref RowRef, count int) bool {
	p := (*Model)(e).pattern(ref.Frame, ref.Channel)
	if p == nil || count <= 0 {
		return false
	}
	defer (*Model)(e).change("Clear")()
	p.Clear(ref.Row, count)
	return true
}

var trackerColumns = [ChannelColumns]columnEntry{
	ColumnNote:     noteColumn,
	ColumnSemitone: noteColumn,
	ColumnOctave: {
		decode: decodeChar(octaveDigit),
		accept: chiptrack.Row.HasNote,
		apply: func(e *RowEditor, ref RowRef, col, value int) bool {
			return e.SetOctave(ref, value)
		},
		advance: func(t *TrackerModel, col int) { t.move(NavDown) },
	},
	ColumnSfxHi:  sfxColumn,
	ColumnSfxLow: sfxColumn,
	ColumnCommand: {
		decode: func(k keyPress) (int, bool) {
			c, ok := commandOrdinal(k.char)
			return int(c), ok
		},
		apply: func(e *RowEditor, ref RowRef, col, value int) bool {
			return e.SetCommand(ref, chiptrack.Command(value))
		},
	},
	ColumnParam1: paramColumn,
	ColumnParam2: paramColumn,
}

var noteColumn = columnEntry{
	decode: func(k keyPress) (int, bool) {
		for _, a := range k.actions {
			if a == "StopNote" {
				return -1, true
			}
			if n, ok := noteAction(a); ok {
				return n, true
			}
		}
		return 0, false
	},
	apply: func(e *RowEditor, ref RowRef, col, value int) bool {
		if value < 0 {
			return e.SetStop(ref)
		}
		octave := value/chiptrack.NoteCount + e.d.LastOctave
		return e.SetNote(ref, value%chiptrack.NoteCount, octave, e.d.LastSfx)
	},
	advance: func(t *TrackerModel, col int) { t.move(NavDown) },
}

var sfxColumn = columnEntry{
	decode: decodeChar(decDigit),
	accept: chiptrack.Row.HasNote,
	apply: func(e *RowEditor, ref RowRef, col, value int) bool {
		r, _ := e.Row(ref)
		pos := 0
		if col == ColumnSfxHi {
			pos = 1
		}
		return e.SetSfx(ref, SetDigit(pos, r.Sfx, value))
	},
	advance: func(t *TrackerModel, col int) {
		if col == ColumnSfxHi {
			t.move(NavRight)
			return
		}
		t.move(NavDown)
		t.move(NavLeft)
	},
}

var paramColumn = columnEntry{
	decode: decodeChar(hexDigit),
	apply: func(e *RowEditor, ref RowRef, col, value int) bool {
		if col == ColumnParam1 {
			return e.SetParam1(ref, value)
		}
		return e.SetParam2(ref, value)
	},
}

func decodeChar(f func(rune) int) func(k keyPress) (int, bool) {
	return func(k keyPress) (int, bool) {
		v := f(k.char)
		return v, v >= 0
	}
}

// noteAction parses the index of a "NoteN" action, N being the number of
// semitones from the C of the current octave.
func noteAction(action string) (int, bool) {
	s, ok := strings.CutPrefix(action, "Note")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// enter runs the column entry of the cursor column for the key press.
func (t *TrackerModel) enter(k keyPress) {
	col := t.d.Tracker.Edit.X % ChannelColumns
	entry := trackerColumns[col]
	value, ok := entry.decode(k)
	if !ok {
		return
	}
	e := (*Model)(t).RowEditor()
	ref := t.Ref()
	r, ok := e.Row(ref)
	if !ok {
		return
	}
	if entry.accept != nil && !entry.accept(r) {
		return
	}
	if !entry.apply(e, ref, col, value) {
		return
	}
	if entry.advance != nil {
		entry.advance(t, col)
	}
}
