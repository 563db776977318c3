package tracker

type (
	// Broker carries the messages posted to the model from other goroutines,
	// at the moment the note events of the MIDI driver. The model drains the
	// messages in Tick, so the editing state is only ever touched by the
	// goroutine ticking the model.
	//
	// The MIDI driver is shut down through CloseMIDI and FinishedMIDI, see
	// RunMIDICloser. CloseMIDI has a capacity of 1, so you can always send an
	// empty message (struct{}{}) to it without blocking. FinishedMIDI is only
	// ever closed, signalling that the MIDI context has been closed.
	Broker struct {
		ToModel chan MsgToModel

		CloseMIDI    chan struct{}
		FinishedMIDI chan struct{}
	}

	// MsgToModel is a message sent to the model. Data is one of the event
	// types of this package, e.g. NoteEvent.
	MsgToModel struct {
		Data any
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:      make(chan MsgToModel, 1024),
		CloseMIDI:    make(chan struct{}, 1),
		FinishedMIDI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// drainBroker handles all the messages posted since the last tick.
func (m *Model) drainBroker() {
	if m.broker == nil {
		return
	}
	for {
		select {
		case msg := <-m.broker.ToModel:
			switch e := msg.Data.(type) {
			case NoteEvent:
				m.MIDI().handleNoteEvent(e)
			case *NoteEvent:
				m.MIDI().handleNoteEvent(*e)
			}
		default:
			return
		}
	}
}
