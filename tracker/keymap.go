package tracker

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type (
	// KeyBinding binds a key with modifiers to a named action. A binding
	// with an empty action removes an earlier binding of the same key.
	KeyBinding struct {
		Key              string
		Ctrl, Shift, Alt bool
		Action           string
	}

	// Keymap maps key presses to action names.
	Keymap struct {
		// YmlError is the error of a malformed user keybindings file, whose
		// bindings were skipped.
		YmlError error

		bindings map[keyChord]string
		hints    map[string]string // first key bound to an action, for display
		keys     []Key
	}

	keyChord struct {
		key              Key
		ctrl, shift, alt bool
	}
)

//go:embed keybindings.yml
var defaultKeyBindingsYml []byte

var defaultKeymap *Keymap

func init() {
	path, err := customConfigPath("keybindings.yml")
	if err != nil {
		path = ""
	}
	defaultKeymap = LoadKeymap(path)
}

// LoadKeymap builds a keymap from the embedded bindings followed by the
// bindings of the yml file at path. A missing file, or an empty path, gives
// the embedded bindings. A malformed file is skipped and its error kept in
// YmlError.
func LoadKeymap(path string) *Keymap {
	keyBindings, err := decodeKeyBindings(defaultKeyBindingsYml)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	var ymlErr error
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			userKeyBindings, err := decodeKeyBindings(data)
			if err != nil {
				ymlErr = fmt.Errorf("%s: %w", filepath.Base(path), err)
			} else {
				keyBindings = append(keyBindings, userKeyBindings...)
			}
		}
	}
	k := NewKeymap(keyBindings)
	k.YmlError = ymlErr
	return k
}

func decodeKeyBindings(data []byte) ([]KeyBinding, error) {
	var ret []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// DefaultKeymap returns the keymap built from the embedded bindings and the
// user's keybindings.yml, if any.
func DefaultKeymap() *Keymap { return defaultKeymap }

// NewKeymap builds a keymap from bindings; later bindings override earlier
// ones.
func NewKeymap(bindings []KeyBinding) *Keymap {
	k := &Keymap{bindings: map[keyChord]string{}, hints: map[string]string{}}
	for _, kb := range bindings {
		chord := keyChord{key: Key(strings.TrimSpace(kb.Key)), ctrl: kb.Ctrl, shift: kb.Shift, alt: kb.Alt}
		if old, ok := k.bindings[chord]; ok && k.hints[old] == chord.String() {
			delete(k.hints, old)
		}
		if kb.Action == "" {
			delete(k.bindings, chord)
			continue
		}
		k.bindings[chord] = kb.Action
		if _, ok := k.hints[kb.Action]; !ok {
			k.hints[kb.Action] = chord.String()
		}
		if !slices.Contains(k.keys, chord.key) {
			k.keys = append(k.keys, chord.key)
		}
	}
	return k
}

// Action returns the action bound to the key with the given modifiers. If
// there is no binding with shift, the binding without shift is returned.
func (k *Keymap) Action(key Key, ctrl, shift, alt bool) (string, bool) {
	if a, ok := k.bindings[keyChord{key, ctrl, shift, alt}]; ok {
		return a, true
	}
	if shift {
		a, ok := k.bindings[keyChord{key, ctrl, false, alt}]
		return a, ok
	}
	return "", false
}

// Actions returns the actions of the keys pressed during this tick.
func (k *Keymap) Actions(in Input) []string {
	ctrl, shift, alt := in.Held(KeyCtrl), in.Held(KeyShift), in.Held(KeyAlt)
	var ret []string
	for _, key := range k.keys {
		if !in.Pressed(key) {
			continue
		}
		if a, ok := k.Action(key, ctrl, shift, alt); ok {
			ret = append(ret, a)
		}
	}
	return ret
}

// HeldActions returns the actions bound without modifiers to the keys held
// down, in the order the keys were first bound.
func (k *Keymap) HeldActions(in Input) []string {
	var ret []string
	for _, key := range k.keys {
		if !in.Held(key) {
			continue
		}
		if a, ok := k.bindings[keyChord{key: key}]; ok {
			ret = append(ret, a)
		}
	}
	return ret
}

// Hint returns a human readable key combination for the action, e.g.
// "Ctrl+Z", or "" if the action is not bound.
func (k *Keymap) Hint(action string) string { return k.hints[action] }

func (c keyChord) String() string {
	var mods []string
	if c.ctrl {
		mods = append(mods, "Ctrl")
	}
	if c.shift {
		mods = append(mods, "Shift")
	}
	if c.alt {
		mods = append(mods, "Alt")
	}
	return strings.Join(append(mods, string(c.key)), "+")
}

// SetKeymap replaces the keymap used by Tick. A YmlError of the keymap is
// shown as a warning.
func (m *Model) SetKeymap(k *Keymap) {
	if k == nil {
		k = defaultKeymap
	}
	m.keymap = k
	m.alertYmlError(k.YmlError)
}

func (m *Model) alertYmlError(err error) {
	if err != nil {
		m.Alerts().Add(err.Error(), Warning, AlertDuration)
	}
}
