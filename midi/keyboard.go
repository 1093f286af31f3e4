package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"

	"pitched/debug"
	"pitched/tone"
)

// NoteEvent is sent when a key is pressed on a MIDI keyboard.
type NoteEvent struct {
	Tone     tone.Tone
	Velocity uint8
	Channel  uint8
}

// Keyboard reports the keys played on a MIDI input, so guesses can be
// played instead of typed.
type Keyboard struct {
	name     string
	stopFunc func()
	noteChan chan NoteEvent
}

func newKeyboard(name string) *Keyboard {
	return &Keyboard{
		name:     name,
		noteChan: make(chan NoteEvent, 32),
	}
}

// ListenKeyboard opens the input port matching id (see selectPort).
func ListenKeyboard(id string) (*Keyboard, error) {
	ports, err := InPorts(ScanTimeout)
	if err != nil {
		return nil, err
	}
	i, err := selectPort(PortNames(ports), id)
	if err != nil {
		return nil, err
	}

	kb := newKeyboard(ports[i].String())
	stop, err := gomidi.ListenTo(ports[i], kb.handle)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	kb.stopFunc = stop
	debug.Log("midi", "listening on %q", kb.name)
	return kb, nil
}

func (kb *Keyboard) handle(msg gomidi.Message, timestampms int32) {
	var channel, note, velocity uint8
	if !msg.GetNoteOn(&channel, &note, &velocity) || velocity == 0 {
		return
	}
	select {
	case kb.noteChan <- NoteEvent{Tone: tone.Tone(note), Velocity: velocity, Channel: channel}:
	default:
		debug.Log("midi", "dropped %s, queue full", tone.Tone(note))
	}
}

func (kb *Keyboard) Name() string {
	return kb.name
}

func (kb *Keyboard) Notes() <-chan NoteEvent {
	return kb.noteChan
}

func (kb *Keyboard) Close() error {
	if kb.stopFunc != nil {
		kb.stopFunc()
	}
	close(kb.noteChan)
	return nil
}
