package tracker

import (
	"github.com/vsariola/chiptrack"
	"golang.org/x/exp/slices"
)

// PianoModel is the per note view. Its cursor moves over PianoColumns
// columns of two digits each: the first Channels columns edit the frame
// table of the current track, one frame per cursor row, and the last two
// edit the sound effect and the command parameters of the rows of the
// pattern the piano channel plays in the current frame.
type PianoModel Model

const (
	PianoSfxColumn = chiptrack.Channels + iota
	PianoXYColumn
	PianoColumns
)

func (m *Model) Piano() *PianoModel { return (*PianoModel)(m) }

func (p *PianoModel) Cursor() Point { return p.d.Piano.Edit }
func (p *PianoModel) Column() int   { return p.d.Piano.Edit.X / 2 }

// Channel returns an Int selecting the channel whose pattern the piano
// shows.
func (p *PianoModel) Channel() Int { return MakeInt((*pianoChannel)(p)) }

type pianoChannel PianoModel

func (v *pianoChannel) Value() int { return v.d.Piano.Channel }
func (v *pianoChannel) SetValue(value int) bool {
	v.d.Piano.Channel = value
	return true
}
func (v *pianoChannel) Range() RangeInclusive { return RangeInclusive{0, chiptrack.Channels - 1} }

// Ref returns the address of the row the sfx and command columns edit at
// the cursor.
func (p *PianoModel) Ref() RowRef {
	return RowRef{Frame: p.d.Frame, Channel: p.d.Piano.Channel, Row: p.d.Piano.Edit.Y + p.d.Scroll}
}

// SetCursor moves the cursor, e.g. on a mouse click.
func (p *PianoModel) SetCursor(pt Point) {
	p.d.Piano.Edit = pt
	p.updateEditPos()
}

// Navigate moves the cursor. On the sfx and command columns moving past the
// top or bottom scrolls the rows instead.
func (p *PianoModel) Navigate(nav Navigation) {
	e := &p.d.Piano.Edit
	switch nav {
	case NavUp:
		e.Y--
	case NavDown:
		e.Y++
	case NavLeft:
		e.X--
	case NavRight:
		e.X++
	case NavHome:
		e.X = 0
	case NavEnd:
		e.X = PianoColumns*2 - 1
	case NavPageUp:
		e.Y -= ViewportRows
	case NavPageDown:
		e.Y += ViewportRows
	}
	p.updateEditPos()
}

func (p *PianoModel) updateEditPos() {
	m := (*Model)(p)
	e := &p.d.Piano.Edit
	e.X = clamp(e.X, 0, PianoColumns*2-1)
	switch e.X / 2 {
	case PianoSfxColumn, PianoXYColumn:
		if e.Y < 0 {
			p.d.Scroll += e.Y
		}
		if e.Y > ViewportRows-1 {
			p.d.Scroll += e.Y - (ViewportRows - 1)
		}
		m.updateScroll()
	}
	e.Y = clamp(e.Y, 0, chiptrack.Frames-1)
}

// advance moves from the first digit of a column to the second one, and
// from the second digit to the first digit of the next row.
func (p *PianoModel) advance() {
	e := &p.d.Piano.Edit
	if e.X&1 == 1 {
		e.X--
		e.Y++
	} else {
		e.X++
	}
	p.updateEditPos()
}

// Delete clears the field under the cursor: the pattern id of the frame, the
// sound effect or the command parameters of the row.
func (p *PianoModel) Delete() {
	m := (*Model)(p)
	switch col := p.Column(); col {
	case PianoSfxColumn:
		m.RowEditor().ClearSfx(p.Ref())
	case PianoXYColumn:
		m.RowEditor().ClearParams(p.Ref())
	default:
		m.SetPatternID(p.d.Piano.Edit.Y, col, 0)
	}
}

// Type enters a typed character at the cursor: decimal digits of pattern
// ids and sound effects, hexadecimal digits of command parameters. The sound
// effect needs a row with a real note and the parameters a row with a
// command.
func (p *PianoModel) Type(c rune) bool {
	m := (*Model)(p)
	e := p.d.Piano.Edit
	pos := 0
	if e.X&1 == 0 {
		pos = 1
	}
	dec, hex := decDigit(c), hexDigit(c)
	switch col := p.Column(); col {
	case PianoSfxColumn:
		r, ok := m.RowEditor().Row(p.Ref())
		if !ok || !r.HasNote() || dec < 0 {
			return false
		}
		if !m.RowEditor().SetSfx(p.Ref(), SetDigit(pos, r.Sfx, dec)) {
			return false
		}
	case PianoXYColumn:
		r, ok := m.RowEditor().Row(p.Ref())
		if !ok || r.Command == chiptrack.CommandEmpty || hex < 0 {
			return false
		}
		set := m.RowEditor().SetParam1
		if e.X&1 == 1 {
			set = m.RowEditor().SetParam2
		}
		if !set(p.Ref(), hex) {
			return false
		}
	default:
		if dec < 0 || !m.enterPatternDigit(e.Y, col, pos, dec) {
			return false
		}
	}
	p.advance()
	return true
}

func (p *PianoModel) processKeyboard(in Input, actions []string) {
	if nav, ok := firstNavigation(actions); ok && nav != NavTab && nav != NavBackTab {
		p.Navigate(nav)
	}
	if slices.Contains(actions, "Delete") {
		p.Delete()
	}
	if c := in.Char(); c != 0 {
		p.Type(c)
	}
}
