package cmd

import (
	"log"

	"github.com/vsariola/chiptrack/tracker"
)

// LogSynth is a tracker.Synth that renders nothing and logs the note events
// instead. A nil Logger discards them.
type LogSynth struct {
	Logger *log.Logger
}

var _ tracker.Synth = LogSynth{}

func (s LogSynth) Trigger(channel, sfx, note, octave, volume, speed int) {
	if s.Logger != nil {
		s.Logger.Printf("ch%d: sfx %02d note %d octave %d volume %d speed %d", channel, sfx, note, octave, volume, speed)
	}
}

func (s LogSynth) Release(channel int) {
	if s.Logger != nil {
		s.Logger.Printf("ch%d: release", channel)
	}
}

func (s LogSynth) Mute(channel int) {}
