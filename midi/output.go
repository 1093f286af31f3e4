package midi

import (
	"context"
	"fmt"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"pitched/debug"
	"pitched/tone"
)

const (
	DefaultVelocity = 127
	DefaultLength   = 500 * time.Millisecond
)

// Output plays tones on a MIDI output port.
type Output struct {
	Channel  uint8
	Velocity uint8
	Length   time.Duration

	name     string
	send     func(msg gomidi.Message) error
	closeFn  func() error
	mu       sync.Mutex
	sounding map[tone.Tone]int
}

// NewOutput wraps a send func, as returned by gomidi.SendTo.
func NewOutput(name string, send func(msg gomidi.Message) error) *Output {
	return &Output{
		Velocity: DefaultVelocity,
		Length:   DefaultLength,
		name:     name,
		send:     send,
		sounding: make(map[tone.Tone]int),
	}
}

// Open connects to the output port matching id (see selectPort).
func Open(id string) (*Output, error) {
	ports, err := OutPorts(ScanTimeout)
	if err != nil {
		return nil, err
	}
	i, err := selectPort(PortNames(ports), id)
	if err != nil {
		return nil, err
	}
	port := ports[i]

	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", port.String(), err)
	}
	debug.Log("midi", "opened output %q", port.String())

	out := NewOutput(port.String(), send)
	out.closeFn = port.Close
	return out, nil
}

func (o *Output) Name() string {
	return o.name
}

func (o *Output) NoteOn(t tone.Tone) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	msg := t.NoteOn(o.Channel, o.Velocity)
	if err := o.send(gomidi.Message(msg[:])); err != nil {
		return fmt.Errorf("note on %s: %w", t, err)
	}
	o.sounding[t]++
	return nil
}

func (o *Output) NoteOff(t tone.Tone) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.noteOff(t)
}

func (o *Output) noteOff(t tone.Tone) error {
	msg := t.NoteOff(o.Channel, o.Velocity)
	if err := o.send(gomidi.Message(msg[:])); err != nil {
		return fmt.Errorf("note off %s: %w", t, err)
	}
	if o.sounding[t] > 1 {
		o.sounding[t]--
	} else {
		delete(o.sounding, t)
	}
	return nil
}

// Play sounds t for o.Length. Cancelling ctx cuts the note short; the note
// off is sent either way.
func (o *Output) Play(ctx context.Context, t tone.Tone) error {
	if err := o.NoteOn(t); err != nil {
		return err
	}
	debug.Log("play", "%s (%d) for %v", t, t, o.Length)

	timer := time.NewTimer(o.Length)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	return o.NoteOff(t)
}

// Silence releases every note still sounding.
func (o *Output) Silence() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	var firstErr error
	for t, n := range o.sounding {
		for ; n > 0; n-- {
			if err := o.noteOff(t); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Sounding returns the number of notes that are on.
func (o *Output) Sounding() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, c := range o.sounding {
		n += c
	}
	return n
}

// Close silences the output and closes its port.
func (o *Output) Close() error {
	err := o.Silence()
	if o.closeFn != nil {
		if cerr := o.closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
