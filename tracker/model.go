package tracker

import (
	"fmt"
	"strings"

	"github.com/vsariola/chiptrack"
)

// Model implements the editing session of the music editor: the cursors of
// the two views, the selection, the viewport scroll and the session state
// like the last entered octave and sound effect.
//
// The music itself is owned by the host. The model only keeps a pointer to
// it and mutates it in place; every committed mutation is reported to the
// History exactly once. The model is owned by one goroutine; the only
// cross-goroutine edge is the Broker, used by the MIDI driver to post note
// events, which are drained in Tick.
type (
	Model struct {
		d modelData

		music         *chiptrack.Music
		history       History
		customHistory bool
		engine        Engine
		clipboard     Clipboard
		broker        *Broker
		prefs         Preferences
		keymap        *Keymap
		midi          midiState
		alert         Alert

		changeCancel bool
		lastChange   string
		checkpoints  int
	}

	// modelData is the transient state of the session, recreated every time
	// the session is reset against a document.
	modelData struct {
		Track       int
		Frame       int
		Scroll      int
		View        View
		Follow      bool
		Sustain     bool
		Beat34      bool
		LastOctave  int
		LastSfx     int
		ChannelOn   [chiptrack.Channels]bool
		Tracker     trackerCursor
		Piano       pianoCursor
		TickCounter int
	}

	trackerCursor struct {
		// Edit.X is the column, ChannelColumns per channel; Edit.Y is the
		// row, or -1 when the cursor is on the pattern selector.
		Edit Point
		// Col is the digit of the pattern selector being edited: 0 for tens,
		// 1 for ones.
		Col       int
		Anchor    Point
		Selection Rect
	}

	pianoCursor struct {
		Channel int
		// Edit.X is the sub column, two per piano column; Edit.Y is the frame
		// for the pattern columns and the row relative to Scroll for the sfx
		// and command columns.
		Edit Point
	}

	View int

	ToolbarEvent int
)

const (
	PianoView View = iota
	TrackerView
)

const (
	ToolbarCut ToolbarEvent = iota
	ToolbarCopy
	ToolbarPaste
	ToolbarUndo
	ToolbarRedo
)

const (
	ChannelColumns  = 8
	TrackerColumns  = chiptrack.Channels * ChannelColumns
	ViewportRows    = chiptrack.PatternRows / 4
	PreviewDuration = chiptrack.FrameRate / 4
)

// Tracker columns inside one channel.
const (
	ColumnNote = iota
	ColumnSemitone
	ColumnOctave
	ColumnSfxHi
	ColumnSfxLow
	ColumnCommand
	ColumnParam1
	ColumnParam2
)

func (v View) String() string {
	switch v {
	case TrackerView:
		return "tracker"
	case PianoView:
		return "piano"
	}
	return "unknown"
}

// ParseView returns the view with the given name, case insensitively.
func ParseView(s string) (View, bool) {
	switch {
	case strings.EqualFold(s, "tracker"):
		return TrackerView, true
	case strings.EqualFold(s, "piano"):
		return PianoView, true
	}
	return PianoView, false
}

// NewModel returns a new editing session over music. A nil engine is
// replaced with one that never plays, a nil clipboard with a
// MemoryClipboard.
func NewModel(broker *Broker, music *chiptrack.Music, engine Engine, clipboard Clipboard, prefs Preferences) *Model {
	m := new(Model)
	m.broker = broker
	m.engine = engine
	if m.engine == nil {
		m.engine = nullEngine{}
	}
	m.clipboard = clipboard
	if m.clipboard == nil {
		m.clipboard = &MemoryClipboard{}
	}
	m.prefs = prefs
	m.Reset(music)
	if prefs.YmlError != nil {
		m.alertYmlError(fmt.Errorf("preferences.yml: %w", prefs.YmlError))
	}
	m.SetKeymap(defaultKeymap)
	return m
}

// Reset re-initializes the session against music: all the cursor, selection
// and scroll state is recreated. The default history starts over; a history
// installed with SetHistory is kept.
func (m *Model) Reset(music *chiptrack.Music) {
	m.music = music
	view, _ := ParseView(m.prefs.View)
	m.d = modelData{
		View:       view,
		Follow:     m.prefs.Follow,
		Sustain:    m.prefs.Sustain,
		LastOctave: clamp(m.prefs.Octave, 0, chiptrack.MaxOctave),
	}
	for i := range m.d.ChannelOn {
		m.d.ChannelOn[i] = true
	}
	m.resetSelection()
	if !m.customHistory {
		m.history = NewUndoHistory(music, m.prefs.MaxUndo)
	}
	m.checkpoints = 0
	m.lastChange = ""
	m.engine.SetSustain(m.d.Sustain)
}

// SetHistory replaces the checkpoint service, e.g. with one shared with the
// other editors of the host. The history survives Reset; nil restores the
// default in-memory history.
func (m *Model) SetHistory(h History) {
	m.customHistory = h != nil
	if h == nil {
		h = NewUndoHistory(m.music, m.prefs.MaxUndo)
	}
	m.history = h
}

func (m *Model) Music() *chiptrack.Music { return m.music }
func (m *Model) Broker() *Broker         { return m.broker }
func (m *Model) View() View              { return m.d.View }
func (m *Model) SetView(v View)          { m.d.View = v }
func (m *Model) Scroll() int             { return m.d.Scroll }
func (m *Model) TickCounter() int        { return m.d.TickCounter }
func (m *Model) LastChange() string      { return m.lastChange }

// NoteBeat reports whether the row starts a beat, for highlighting.
func (m *Model) NoteBeat(row int) bool {
	if m.d.Beat34 {
		return row%3 == 0
	}
	return row%chiptrack.NotesPerBeat == 0
}

// PatternLabel returns the two digit label of the pattern in a frame and
// channel of the current track, "--" when there is none.
func (m *Model) PatternLabel(frame, channel int) string {
	id := m.music.PatternID(m.d.Track, frame, channel)
	if id == 0 {
		return "--"
	}
	return string([]byte{byte('0' + id/10), byte('0' + id%10)})
}

// Tick advances the session by one frame: drains the broker, applies mouse
// wheel scrolling and keyboard input, follows the playback and mutes the
// disabled channels.
func (m *Model) Tick(in Input) {
	m.drainBroker()
	if dy := in.ScrollY(); dy != 0 && !in.Held(KeyCtrl) {
		delta := chiptrack.NotesPerBeat
		if dy > 0 {
			delta = -delta
		}
		m.d.Scroll += delta
		m.updateScroll()
	}
	m.processKeyboard(in)
	m.follow()
	m.Alerts().tick()
	for ch, on := range m.d.ChannelOn {
		if !on {
			m.engine.MuteChannel(ch)
		}
	}
	m.d.TickCounter++
}

// OnToolbarEvent dispatches a toolbar event to the active view.
func (m *Model) OnToolbarEvent(e ToolbarEvent) {
	switch e {
	case ToolbarCut:
		m.copyToClipboard(true)
	case ToolbarCopy:
		m.copyToClipboard(false)
	case ToolbarPaste:
		m.pasteFromClipboard()
	case ToolbarUndo:
		m.History().Undo().Do()
	case ToolbarRedo:
		m.History().Redo().Do()
	}
}

func (m *Model) track() *chiptrack.Track { return m.music.Track(m.d.Track) }

func (m *Model) visibleRows() int { return m.track().VisibleRows() }

func (m *Model) scrollMargin() int {
	if m.prefs.ScrollMargin > 0 {
		return min(m.prefs.ScrollMargin, (ViewportRows-1)/2)
	}
	return ViewportRows / 4
}

func (m *Model) updateScroll() {
	m.d.Scroll = clamp(m.d.Scroll, 0, m.visibleRows()-ViewportRows)
}

// change marks the beginning of a mutation of kind. The returned function
// should be deferred; it takes the checkpoint unless the mutation was
// cancelled by setting changeCancel.
func (m *Model) change(kind string) func() {
	m.changeCancel = false
	return func() {
		if m.changeCancel {
			m.changeCancel = false
			return
		}
		m.lastChange = kind
		m.checkpoint()
	}
}

func (m *Model) checkpoint() {
	m.history.Checkpoint()
	m.checkpoints++
}

// afterRestore brings the cursors back to valid positions after the
// document was replaced under them.
func (m *Model) afterRestore() {
	m.updateTracker()
	(*PianoModel)(m).updateEditPos()
}
