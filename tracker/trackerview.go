package tracker

import (
	"github.com/vsariola/chiptrack"
	"golang.org/x/exp/slices"
)

type (
	// TrackerModel is the step sequencer view: a cursor over the columns of
	// all the channels and the rows of the current frame, a rectangular
	// selection inside one channel and the pattern selector row above the
	// first row.
	TrackerModel Model

	Navigation int
)

const (
	NavUp Navigation = iota
	NavDown
	NavLeft
	NavRight
	NavHome
	NavEnd
	NavPageUp
	NavPageDown
	NavTab
	NavBackTab
)

var navigations = map[string]Navigation{
	"Up":       NavUp,
	"Down":     NavDown,
	"Left":     NavLeft,
	"Right":    NavRight,
	"Home":     NavHome,
	"End":      NavEnd,
	"PageUp":   NavPageUp,
	"PageDown": NavPageDown,
	"Tab":      NavTab,
	"BackTab":  NavBackTab,
}

func (m *Model) Tracker() *TrackerModel { return (*TrackerModel)(m) }

// Cursor returns the column and row of the cursor; row -1 is the pattern
// selector.
func (t *TrackerModel) Cursor() Point    { return t.d.Tracker.Edit }
func (t *TrackerModel) Channel() int     { return t.d.Tracker.Edit.X / ChannelColumns }
func (t *TrackerModel) Column() int      { return t.d.Tracker.Edit.X % ChannelColumns }
func (t *TrackerModel) InSelector() bool { return t.d.Tracker.Edit.Y < 0 }
func (t *TrackerModel) Selection() Rect  { return t.d.Tracker.Selection }

// SelectorDigit returns the digit of the pattern selector being edited, 0
// for tens and 1 for ones.
func (t *TrackerModel) SelectorDigit() int { return t.d.Tracker.Col }

// Ref returns the address of the row under the cursor.
func (t *TrackerModel) Ref() RowRef {
	return RowRef{Frame: t.d.Frame, Channel: t.Channel(), Row: t.d.Tracker.Edit.Y}
}

// SetCursor moves the cursor, e.g. on a mouse click, and resets the
// selection.
func (t *TrackerModel) SetCursor(p Point) {
	t.d.Tracker.Edit = Point{X: clamp(p.X, 0, TrackerColumns-1), Y: p.Y}
	(*Model)(t).updateTracker()
	(*Model)(t).resetSelection()
}

// Navigate moves the cursor. With extend, the selection is extended to the
// new cursor position; otherwise it is reset. On the pattern selector the
// moves step between the digits and channels instead.
func (t *TrackerModel) Navigate(nav Navigation, extend bool) {
	if t.InSelector() {
		t.navigateSelector(nav)
		return
	}
	if nav == NavBackTab {
		extend = false
	}
	if extend {
		t.checkSelection()
	}
	if extend && nav == NavUp && t.d.Tracker.Edit.Y == 0 {
		return // the selection cannot reach the pattern selector
	}
	t.move(nav)
	if extend {
		t.updateSelection()
	} else {
		(*Model)(t).resetSelection()
	}
}

func (t *TrackerModel) move(nav Navigation) {
	m := (*Model)(t)
	e := &t.d.Tracker.Edit
	switch nav {
	case NavUp:
		if e.Y > -1 {
			e.Y--
		}
	case NavDown:
		if s := m.engine.Status(); s.Track == t.d.Track && t.d.Follow {
			return
		}
		if e.Y < m.visibleRows()-1 {
			e.Y++
		}
	case NavLeft:
		if e.X > 0 {
			e.X--
		}
	case NavRight:
		if e.X < TrackerColumns-1 {
			e.X++
		}
	case NavHome:
		e.X -= e.X % ChannelColumns
	case NavEnd:
		e.X += ChannelColumns - 1 - e.X%ChannelColumns
	case NavPageUp:
		e.Y = max(e.Y-ViewportRows, 0)
	case NavPageDown:
		e.Y = min(e.Y+ViewportRows, m.visibleRows()-1)
	case NavTab, NavBackTab:
		step := 1
		if nav == NavBackTab {
			step = chiptrack.Channels - 1
		}
		channel := (e.X/ChannelColumns + step) % chiptrack.Channels
		e.X = channel*ChannelColumns + e.X%ChannelColumns
	}
	m.updateTracker()
}

// updateTracker clamps the cursor row and scrolls so that the cursor stays
// inside the viewport, at least the scroll margin away from its edges.
func (m *Model) updateTracker() {
	rows := m.visibleRows()
	y := clamp(m.d.Tracker.Edit.Y, -1, rows-1)
	m.d.Tracker.Edit.Y = y
	margin := m.scrollMargin()
	m.d.Scroll = clamp(m.d.Scroll, y-(ViewportRows-1-margin), y-margin)
	m.updateScroll()
}

func (m *Model) resetSelection() {
	m.d.Tracker.Anchor = Point{-1, -1}
	m.d.Tracker.Selection = Rect{}
}

// IsSelected reports whether a cell of the tracker view is in the selection,
// for highlighting.
func (t *TrackerModel) IsSelected(p Point) bool { return t.d.Tracker.Selection.Contains(p) }

// ResetSelection clears the selection.
func (t *TrackerModel) ResetSelection() { (*Model)(t).resetSelection() }

func (t *TrackerModel) checkSelection() {
	if t.d.Tracker.Anchor.X < 0 || t.d.Tracker.Anchor.Y < 0 {
		t.d.Tracker.Anchor = t.d.Tracker.Edit
	}
}

// updateSelection spans the selection between the anchor and the cursor.
// A selection that would cover columns of two channels is reset.
func (t *TrackerModel) updateSelection() {
	r := rectFromCorners(t.d.Tracker.Anchor, t.d.Tracker.Edit)
	if r.X%ChannelColumns+r.W > ChannelColumns {
		(*Model)(t).resetSelection()
		return
	}
	t.d.Tracker.Selection = r
}

// SelectAll selects all the visible rows of the cursor channel.
func (t *TrackerModel) SelectAll() {
	m := (*Model)(t)
	m.resetSelection()
	col := t.d.Tracker.Edit.X - t.d.Tracker.Edit.X%ChannelColumns
	t.d.Tracker.Anchor = Point{X: col, Y: 0}
	t.d.Tracker.Edit = Point{X: col + ChannelColumns - 1, Y: m.visibleRows() - 1}
	m.updateTracker()
	t.updateSelection()
}

// selectedRows returns the first row and the number of rows the clipboard
// and delete operate on: the selection, or the cursor row if there is none.
func (t *TrackerModel) selectedRows() (row, count int) {
	if r := t.d.Tracker.Selection; !r.Empty() {
		return r.Y, r.H
	}
	return t.d.Tracker.Edit.Y, 1
}

// Delete clears the selected rows, or the cursor row, and moves down.
func (t *TrackerModel) Delete() {
	row, count := t.selectedRows()
	ref := t.Ref()
	ref.Row = row
	(*Model)(t).RowEditor().Clear(ref, count)
	t.move(NavDown)
}

// Preview plays the row under the cursor.
func (t *TrackerModel) Preview() {
	if r, ok := (*Model)(t).RowEditor().Row(t.Ref()); ok {
		(*Model)(t).Play().Note(r, t.Channel())
	}
}

func (t *TrackerModel) processKeyboard(in Input, actions []string) {
	if in.Held(KeyCtrl) || in.Held(KeyAlt) {
		return
	}
	shift := in.Held(KeyShift)
	nav, hasNav := firstNavigation(actions)
	switch {
	case hasNav:
		t.Navigate(nav, shift)
	case slices.Contains(actions, "Delete"):
		t.Delete()
	case slices.Contains(actions, "PreviewRow"):
		t.Preview()
	}
	if !shift && (len(actions) > 0 || in.Char() != 0) {
		(*Model)(t).resetSelection()
	}
	if t.InSelector() {
		return
	}
	t.enter(keyPress{actions: actions, char: in.Char()})
}

// Pattern selector

func (t *TrackerModel) navigateSelector(nav Navigation) {
	switch nav {
	case NavLeft:
		t.selectorLeft()
	case NavRight:
		t.selectorRight()
	case NavTab:
		t.nextPattern()
	case NavBackTab:
		t.prevPattern()
	case NavDown:
		t.d.Tracker.Edit.Y = t.d.Scroll
	}
}

func (t *TrackerModel) prevPattern() {
	if ch := t.Channel(); ch > 0 {
		t.d.Tracker.Edit.X = (ch - 1) * ChannelColumns
		t.d.Tracker.Col = 1
	}
}

func (t *TrackerModel) nextPattern() {
	if ch := t.Channel(); ch < chiptrack.Channels-1 {
		t.d.Tracker.Edit.X = (ch + 1) * ChannelColumns
		t.d.Tracker.Col = 0
	}
}

func (t *TrackerModel) selectorLeft() {
	if t.d.Tracker.Col > 0 {
		t.d.Tracker.Col--
		return
	}
	t.prevPattern()
}

func (t *TrackerModel) selectorRight() {
	if t.d.Tracker.Col < 1 {
		t.d.Tracker.Col++
		return
	}
	t.nextPattern()
}

// EnterSelectorDigit types a digit into the pattern selector of the cursor
// channel. Ids above the pool size are rejected; after the tens digit the
// selector moves to the ones digit.
func (t *TrackerModel) EnterSelectorDigit(digit int) bool {
	pos := 0
	if t.d.Tracker.Col == 0 {
		pos = 1
	}
	if !(*Model)(t).enterPatternDigit(t.d.Frame, t.Channel(), pos, digit) {
		return false
	}
	if t.d.Tracker.Col == 0 {
		t.selectorRight()
	}
	return true
}

func (t *TrackerModel) processSelectorKeyboard(in Input, actions []string) {
	if in.Held(KeyCtrl) || in.Held(KeyAlt) {
		return
	}
	switch {
	case slices.Contains(actions, "Delete"):
		(*Model)(t).SetPatternID(t.d.Frame, t.Channel(), 0)
	case slices.Contains(actions, "PlayOrStop"):
		t.navigateSelector(NavDown)
	default:
		if nav, ok := firstNavigation(actions); ok {
			t.navigateSelector(nav)
			return
		}
		if d := decDigit(in.Char()); d >= 0 {
			t.EnterSelectorDigit(d)
		}
	}
}

func firstNavigation(actions []string) (Navigation, bool) {
	for _, a := range actions {
		if nav, ok := navigations[a]; ok {
			return nav, true
		}
	}
	return 0, false
}
