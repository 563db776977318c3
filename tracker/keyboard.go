package tracker

import "golang.org/x/exp/slices"

// processKeyboard maps the keys pressed during this tick to actions and
// dispatches them. With ctrl held only the shortcuts are handled.
func (m *Model) processKeyboard(in Input) {
	actions := m.keymap.Actions(in)
	if in.Held(KeyCtrl) {
		for _, a := range actions {
			m.doShortcut(a)
		}
		return
	}
	if slices.Contains(actions, "PlayOrStop") {
		m.Play().Toggle(in.Held(KeyShift))
	}
	switch m.d.View {
	case TrackerView:
		if m.Tracker().InSelector() {
			m.Tracker().processSelectorKeyboard(in, actions)
		} else {
			m.Tracker().processKeyboard(in, actions)
		}
	case PianoView:
		m.Piano().processKeyboard(in, actions)
	}
}

func (m *Model) doShortcut(action string) {
	switch action {
	case "SelectAll":
		m.Tracker().SelectAll()
	case "Undo":
		m.OnToolbarEvent(ToolbarUndo)
	case "Redo":
		m.OnToolbarEvent(ToolbarRedo)
	case "Cut":
		m.OnToolbarEvent(ToolbarCut)
	case "Copy":
		m.OnToolbarEvent(ToolbarCopy)
	case "Paste":
		m.OnToolbarEvent(ToolbarPaste)
	case "FollowToggle":
		m.Follow().Toggle()
	case "ToggleView":
		if m.d.View == TrackerView {
			m.d.View = PianoView
		} else {
			m.d.View = TrackerView
		}
	}
}
