package tracker

import (
	"github.com/vsariola/chiptrack"
	"golang.org/x/exp/slices"
)

type (
	// SfxModel is the editing session of the sound effect bank. It is a
	// separate instance from Model, with its own history, sharing only the
	// engine, the clipboard and the keymap with the host.
	SfxModel struct {
		samples   *chiptrack.Samples
		history   History
		engine    Engine
		clipboard Clipboard
		keymap    *Keymap

		selected    int
		octave      int
		preview     sfxPreview
		checkpoints int
	}

	sfxPreview struct {
		playing      bool
		note, octave int
	}
)

// SfxPreviewChannel is the channel the sound effect editor previews on.
const SfxPreviewChannel = 0

// NewSfxModel returns a sound effect editor over samples. A nil clipboard
// is replaced with a MemoryClipboard.
func NewSfxModel(samples *chiptrack.Samples, engine Engine, clipboard Clipboard, prefs Preferences) *SfxModel {
	if clipboard == nil {
		clipboard = &MemoryClipboard{}
	}
	return &SfxModel{
		samples:   samples,
		history:   NewUndoHistory(samples, prefs.MaxUndo),
		engine:    engine,
		clipboard: clipboard,
		keymap:    defaultKeymap,
		octave:    clamp(prefs.Octave, 0, chiptrack.MaxOctave),
	}
}

func (s *SfxModel) Samples() *chiptrack.Samples { return s.samples }
func (s *SfxModel) Sample() chiptrack.Sample    { return s.samples[s.selected] }
func (s *SfxModel) Checkpoints() int            { return s.checkpoints }
func (s *SfxModel) Previewing() bool            { return s.preview.playing }

// SetKeymap replaces the keymap used by Tick.
func (s *SfxModel) SetKeymap(k *Keymap) {
	if k == nil {
		k = defaultKeymap
	}
	s.keymap = k
}

// Selected returns an Int selecting the edited sound effect.
func (s *SfxModel) Selected() Int { return MakeInt((*sfxSelected)(s)) }

type sfxSelected SfxModel

func (v *sfxSelected) Value() int { return v.selected }
func (v *sfxSelected) SetValue(value int) bool {
	v.selected = value
	return true
}
func (v *sfxSelected) Range() RangeInclusive { return RangeInclusive{0, chiptrack.SfxCount - 1} }
func (v *sfxSelected) StringOf(value int) string {
	return string([]byte{byte('0' + value/10), byte('0' + value%10)})
}

// Octave returns an Int of the octave the piano keys start from.
func (s *SfxModel) Octave() Int { return MakeInt((*sfxOctave)(s)) }

type sfxOctave SfxModel

func (v *sfxOctave) Value() int { return v.octave }
func (v *sfxOctave) SetValue(value int) bool {
	v.octave = value
	return true
}
func (v *sfxOctave) Range() RangeInclusive { return RangeInclusive{0, chiptrack.MaxOctave} }

// SetNote sets the note and octave the selected sound effect is played at
// when previewed.
func (s *SfxModel) SetNote(note, octave int) bool {
	smp := &s.samples[s.selected]
	note = clamp(note, 0, chiptrack.NoteCount-1)
	octave = clamp(octave, 0, chiptrack.MaxOctave)
	if smp.Note == note && smp.Octave == octave {
		return false
	}
	smp.Note, smp.Octave = note, octave
	s.checkpoint()
	return true
}

// Tick handles the input of one tick: the shortcuts with ctrl held, the
// piano keys otherwise, and keeps the preview running while a piano key is
// held.
func (s *SfxModel) Tick(in Input) {
	actions := s.keymap.Actions(in)
	if in.Held(KeyCtrl) {
		for _, a := range actions {
			s.doShortcut(a)
		}
	} else {
		for _, a := range actions {
			if n, ok := noteAction(a); ok {
				s.SetNote(n%chiptrack.NoteCount, s.octave+n/chiptrack.NoteCount)
			}
		}
	}
	s.updatePreview(in)
}

func (s *SfxModel) doShortcut(action string) {
	switch action {
	case "Undo":
		s.OnToolbarEvent(ToolbarUndo)
	case "Redo":
		s.OnToolbarEvent(ToolbarRedo)
	case "Cut":
		s.OnToolbarEvent(ToolbarCut)
	case "Copy":
		s.OnToolbarEvent(ToolbarCopy)
	case "Paste":
		s.OnToolbarEvent(ToolbarPaste)
	}
}

// updatePreview starts a sustained preview of the held piano key, restarts
// it when the key changes and stops it when no key is held.
func (s *SfxModel) updatePreview(in Input) {
	held := -1
	if !in.Held(KeyCtrl) {
		actions := s.keymap.HeldActions(in)
		i := slices.IndexFunc(actions, func(a string) bool {
			_, ok := noteAction(a)
			return ok
		})
		if i >= 0 {
			held, _ = noteAction(actions[i])
		}
	}
	if held < 0 {
		if s.preview.playing {
			s.engine.StopChannel(SfxPreviewChannel)
			s.preview = sfxPreview{}
		}
		return
	}
	note := held % chiptrack.NoteCount
	octave := clamp(s.octave+held/chiptrack.NoteCount, 0, chiptrack.MaxOctave)
	if s.preview.playing && s.preview.note == note && s.preview.octave == octave {
		return
	}
	smp := s.samples[s.selected]
	s.engine.TriggerNote(s.selected, note, octave, -1, SfxPreviewChannel, chiptrack.MaxVolume, smp.Speed)
	s.preview = sfxPreview{playing: true, note: note, octave: octave}
}

// OnToolbarEvent runs a toolbar event on the selected sound effect.
func (s *SfxModel) OnToolbarEvent(e ToolbarEvent) {
	switch e {
	case ToolbarCut:
		s.copyToClipboard(true)
	case ToolbarCopy:
		s.copyToClipboard(false)
	case ToolbarPaste:
		s.pasteFromClipboard()
	case ToolbarUndo:
		s.history.Undo()
	case ToolbarRedo:
		s.history.Redo()
	}
}

func (s *SfxModel) checkpoint() {
	s.history.Checkpoint()
	s.checkpoints++
}

func (s *SfxModel) copyToClipboard(cut bool) {
	data, err := s.samples[s.selected].MarshalBinary()
	if err != nil {
		return
	}
	s.clipboard.SetText(EncodeSampleClip(data))
	if cut {
		s.samples[s.selected] = chiptrack.Sample{}
		s.checkpoint()
	}
}

func (s *SfxModel) pasteFromClipboard() {
	if !s.clipboard.HasText() {
		return
	}
	text, ok := s.clipboard.Text()
	if !ok {
		return
	}
	defer s.clipboard.Free(text)
	data, err := DecodeSampleClip(text)
	if err != nil {
		return
	}
	var smp chiptrack.Sample
	if err := smp.UnmarshalBinary(data); err != nil {
		return
	}
	s.samples[s.selected] = smp
	s.checkpoint()
}
