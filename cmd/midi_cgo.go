//go:build cgo

package cmd

import (
	"github.com/vsariola/chiptrack/tracker"
	"github.com/vsariola/chiptrack/tracker/gomidi"
)

func NewMidiContext(broker *tracker.Broker) tracker.MIDIContext {
	return gomidi.NewContext(broker)
}
