package tracker

import (
	"strconv"

	"github.com/vsariola/chiptrack"
)

type (
	trackIndex Model
	frameIndex Model
	tempo      Model
	speed      Model
	rows       Model
	octave     Model
	lastSfx    Model
)

const (
	MinTempo  = 40
	MaxTempo  = 250
	TempoStep = 10
	MinSpeed  = 1
	MaxSpeed  = 31
)

// Model methods

func (m *Model) TrackIndex() Int { return MakeInt((*trackIndex)(m)) }
func (m *Model) Frame() Int      { return MakeInt((*frameIndex)(m)) }
func (m *Model) Tempo() Int      { return MakeInt((*tempo)(m)) }
func (m *Model) Speed() Int      { return MakeInt((*speed)(m)) }
func (m *Model) Rows() Int       { return MakeInt((*rows)(m)) }
func (m *Model) Octave() Int     { return MakeInt((*octave)(m)) }
func (m *Model) Sfx() Int        { return MakeInt((*lastSfx)(m)) }

// trackIndex

func (v *trackIndex) Value() int { return v.d.Track }
func (v *trackIndex) SetValue(value int) bool {
	v.d.Track = value
	(*Model)(v).updateTracker()
	return true
}
func (v *trackIndex) Range() RangeInclusive { return RangeInclusive{0, chiptrack.Tracks - 1} }

// frameIndex

func (v *frameIndex) Value() int { return v.d.Frame }
func (v *frameIndex) SetValue(value int) bool {
	v.d.Frame = value
	return true
}
func (v *frameIndex) Range() RangeInclusive { return RangeInclusive{0, chiptrack.Frames - 1} }

// tempo is the actual tempo of the current track, in beats per minute

func (v *tempo) Value() int { return (*Model)(v).track().ActualTempo() }
func (v *tempo) SetValue(value int) bool {
	defer (*Model)(v).change("Tempo")()
	(*Model)(v).track().Tempo = value - chiptrack.DefaultTempo
	return true
}
func (v *tempo) Range() RangeInclusive { return RangeInclusive{MinTempo, MaxTempo} }

// speed is the actual speed of the current track

func (v *speed) Value() int { return (*Model)(v).track().ActualSpeed() }
func (v *speed) SetValue(value int) bool {
	defer (*Model)(v).change("Speed")()
	(*Model)(v).track().Speed = value - chiptrack.DefaultSpeed
	return true
}
func (v *speed) Range() RangeInclusive { return RangeInclusive{MinSpeed, MaxSpeed} }

// rows is the number of visible rows of the current track

func (v *rows) Value() int { return (*Model)(v).visibleRows() }
func (v *rows) SetValue(value int) bool {
	defer (*Model)(v).change("Rows")()
	(*Model)(v).track().Rows = chiptrack.PatternRows - value
	(*Model)(v).updateTracker()
	return true
}
func (v *rows) Range() RangeInclusive { return RangeInclusive{ViewportRows, chiptrack.PatternRows} }

// octave is the octave used for the next entered note

func (v *octave) Value() int { return v.d.LastOctave }
func (v *octave) SetValue(value int) bool {
	v.d.LastOctave = value
	return true
}
func (v *octave) Range() RangeInclusive     { return RangeInclusive{0, chiptrack.MaxOctave} }
func (v *octave) StringOf(value int) string { return strconv.Itoa(value + 1) }

// lastSfx is the sound effect used for the next entered note

func (v *lastSfx) Value() int { return v.d.LastSfx }
func (v *lastSfx) SetValue(value int) bool {
	v.d.LastSfx = value
	return true
}
func (v *lastSfx) Range() RangeInclusive { return RangeInclusive{0, chiptrack.SfxCount - 1} }
func (v *lastSfx) StringOf(value int) string {
	return string([]byte{byte('0' + value/10), byte('0' + value%10)})
}
