package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/vsariola/chiptrack"
	"github.com/vsariola/chiptrack/cmd"
	"github.com/vsariola/chiptrack/tracker"
	"github.com/vsariola/chiptrack/version"
)

func main() {
	midiInput := flag.StringP("midi-input", "m", "", "connect MIDI input to matching device name prefix")
	channel := flag.IntP("channel", "c", 0, "channel to record to, 0-3")
	pattern := flag.IntP("pattern", "p", 1, "pattern to record to, 1-60")
	duration := flag.DurationP("duration", "d", 0, "stop recording after this long; 0 records until interrupted")
	play := flag.Bool("play", false, "loop the frame while recording")
	verbose := flag.Bool("verbose", false, "log the notes the sequencer triggers")
	listInputs := flag.BoolP("list", "l", false, "list the MIDI inputs and exit")
	versionFlag := flag.BoolP("version", "v", false, "print version")
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *channel < 0 || *channel >= chiptrack.Channels || *pattern < 1 || *pattern > chiptrack.Patterns {
		log.Fatalf("channel must be 0-%d and pattern 1-%d", chiptrack.Channels-1, chiptrack.Patterns)
	}
	broker := tracker.NewBroker()
	midiContext := cmd.NewMidiContext(broker)
	go tracker.RunMIDICloser(broker, midiContext)
	defer closeMIDI(broker)
	if *listInputs {
		for input := range midiContext.Inputs {
			fmt.Println(input.String())
		}
		return
	}
	prefs := tracker.MakePreferences()
	if prefs.YmlError != nil {
		log.Printf("failed to read preferences.yml: %v", prefs.YmlError)
	}
	prefs.View = tracker.TrackerView.String()
	music := new(chiptrack.Music)
	music.Tracks[0].Frames.SetPatternID(0, *channel, *pattern)
	synth := cmd.LogSynth{}
	if *verbose {
		synth.Logger = log.Default()
	}
	seq := tracker.NewSequencer(music, synth)
	model := tracker.NewModel(broker, music, seq, nil, prefs)
	model.Tracker().SetCursor(tracker.Point{X: *channel * tracker.ChannelColumns, Y: 0})
	model.MIDI().SetContext(midiContext)
	value, ok := tracker.FindMIDIInputByPrefix(midiContext, *midiInput)
	if !ok {
		log.Fatalf("no MIDI input device found with prefix '%s'", *midiInput)
	}
	if !model.MIDI().Input().SetValue(value) {
		log.Fatalf("failed to open MIDI input '%s': %v", model.MIDI().Input().String(), model.MIDI().Err())
	}
	log.Printf("recording from '%s' to pattern %02d", model.MIDI().Input().String(), *pattern)
	model.MIDI().InputtingNotes().SetValue(true)
	if *play {
		model.Play().Frame().Do()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}
	run(ctx, model, seq)
	model.MIDI().Input().SetValue(0)
	rows := model.Rows().Value()
	data, err := music.Patterns[*pattern-1].MarshalRows(0, rows)
	if err != nil {
		log.Fatal(err)
	}
	text, err := tracker.EncodeClip(data)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("recorded %d edits", model.History().Checkpoints())
	fmt.Println(text)
}

// closeMIDI asks the MIDI closer to shut the driver down and waits a moment
// for it to finish.
func closeMIDI(broker *tracker.Broker) {
	tracker.TrySend(broker.CloseMIDI, struct{}{})
	select {
	case <-broker.FinishedMIDI:
	case <-time.After(time.Second):
		log.Printf("timed out waiting for the MIDI input to close")
	}
}

// run ticks the sequencer and the model at the frame rate until ctx is done.
func run(ctx context.Context, model *tracker.Model, seq *tracker.Sequencer) {
	ticker := time.NewTicker(time.Second / chiptrack.FrameRate)
	defer ticker.Stop()
	var in tracker.KeySet
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			seq.Tick()
			model.Tick(&in)
		}
	}
}
