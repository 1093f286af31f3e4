package midi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"

	"pitched/tone"
)

type recorder struct {
	msgs [][]byte
	err  error
}

func (r *recorder) send(msg gomidi.Message) error {
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, append([]byte(nil), msg...))
	return nil
}

func TestSelectPort(t *testing.T) {
	names := []string{"Midi Through Port-0", "FLUID Synth (1234)", "USB Keyboard MIDI 1"}

	for _, tc := range []struct {
		id       string
		expected int
	}{
		{id: "", expected: 2},
		{id: "FLUID Synth (1234)", expected: 1},
		{id: "0", expected: 0},
		{id: "fluid", expected: 1},
		{id: "usb keyboard", expected: 2},
	} {
		t.Run(tc.id, func(t *testing.T) {
			i, err := selectPort(names, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, i)
		})
	}

	_, err := selectPort(names, "timidity")
	assert.ErrorIs(t, err, ErrNoPort)
	_, err = selectPort(names, "7")
	assert.ErrorIs(t, err, ErrNoPort)
	_, err = selectPort(nil, "")
	assert.ErrorIs(t, err, ErrNoPort)
}

func TestOutputPlay(t *testing.T) {
	rec := &recorder{}
	out := NewOutput("test", rec.send)
	out.Channel = 1
	out.Velocity = 200
	out.Length = time.Millisecond

	require.NoError(t, out.Play(context.Background(), tone.Tone(60)))
	assert.Equal(t, [][]byte{{0x91, 60, 72}, {0x81, 60, 72}}, rec.msgs)
	assert.Equal(t, 0, out.Sounding())
}

func TestOutputPlayCancelled(t *testing.T) {
	rec := &recorder{}
	out := NewOutput("test", rec.send)
	out.Length = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, out.Play(ctx, tone.A4))
	assert.Equal(t, [][]byte{{0x90, 81, 127}, {0x80, 81, 127}}, rec.msgs)
}

func TestOutputSilence(t *testing.T) {
	rec := &recorder{}
	out := NewOutput("test", rec.send)

	require.NoError(t, out.NoteOn(tone.Tone(60)))
	require.NoError(t, out.NoteOn(tone.Tone(60)))
	require.NoError(t, out.NoteOn(tone.Tone(64)))
	assert.Equal(t, 3, out.Sounding())

	require.NoError(t, out.Close())
	assert.Equal(t, 0, out.Sounding())
	assert.Len(t, rec.msgs, 6)
}

func TestOutputSendError(t *testing.T) {
	rec := &recorder{err: errors.New("port gone")}
	out := NewOutput("test", rec.send)

	err := out.Play(context.Background(), tone.A4)
	assert.ErrorContains(t, err, "note on a4: port gone")
	assert.Equal(t, 0, out.Sounding())
}

func TestKeyboardHandle(t *testing.T) {
	kb := newKeyboard("test")

	kb.handle(gomidi.NoteOn(2, 61, 90), 0)
	kb.handle(gomidi.NoteOn(2, 62, 0), 0)
	kb.handle(gomidi.NoteOff(2, 61), 0)
	kb.handle(gomidi.ControlChange(2, 7, 100), 0)
	require.NoError(t, kb.Close())

	var events []NoteEvent
	for ev := range kb.Notes() {
		events = append(events, ev)
	}
	assert.Equal(t, []NoteEvent{{Tone: tone.MustParse("cis3"), Velocity: 90, Channel: 2}}, events)
}
