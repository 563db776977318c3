package tracker

type (
	// Key names a key of the keyboard. Printable keys are named by their
	// upper case character, e.g. "Z" or "1".
	Key string

	// Input is the input state of one tick, polled from the host.
	Input interface {
		// Pressed reports whether the key went down during this tick.
		Pressed(Key) bool
		// Held reports whether the key is currently down; used for the
		// modifiers.
		Held(Key) bool
		// Char returns the character typed during this tick, 0 if none.
		Char() rune
		// ScrollY returns the mouse wheel movement of this tick; positive
		// values scroll up.
		ScrollY() int
	}
)

const (
	KeyUp       Key = "Up"
	KeyDown     Key = "Down"
	KeyLeft     Key = "Left"
	KeyRight    Key = "Right"
	KeyHome     Key = "Home"
	KeyEnd      Key = "End"
	KeyPageUp   Key = "PageUp"
	KeyPageDown Key = "PageDown"
	KeyTab      Key = "Tab"
	KeyDelete   Key = "Delete"
	KeySpace    Key = "Space"
	KeyReturn   Key = "Return"
	KeyCtrl     Key = "Ctrl"
	KeyShift    Key = "Shift"
	KeyAlt      Key = "Alt"
)

// KeySet is an Input backed by plain sets, for hosts that get key events
// instead of polling and for tests. Clear it after every tick.
type KeySet struct {
	Down    map[Key]bool
	Typed   rune
	Wheel   int
	pressed map[Key]bool
}

// Press marks the key pressed in this tick and held until Release.
func (s *KeySet) Press(k Key) {
	if s.pressed == nil {
		s.pressed = map[Key]bool{}
	}
	if s.Down == nil {
		s.Down = map[Key]bool{}
	}
	s.pressed[k] = true
	s.Down[k] = true
}

func (s *KeySet) Release(k Key) { delete(s.Down, k) }

// Clear forgets the per tick state; held keys stay held.
func (s *KeySet) Clear() {
	clear(s.pressed)
	s.Typed = 0
	s.Wheel = 0
}

func (s *KeySet) Pressed(k Key) bool { return s.pressed[k] }
func (s *KeySet) Held(k Key) bool    { return s.Down[k] }
func (s *KeySet) Char() rune         { return s.Typed }
func (s *KeySet) ScrollY() int       { return s.Wheel }
