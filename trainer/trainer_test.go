package trainer

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitched/tone"
)

type fakePlayer struct {
	played []tone.Tone
	err    error
}

func (p *fakePlayer) Play(ctx context.Context, t tone.Tone) error {
	p.played = append(p.played, t)
	return p.err
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// cis3 is the only tone in this range.
var cis3Only = tone.Range{Start: tone.MustParse("cis3"), End: tone.MustParse("d3")}

func TestSessionTargetsStayInRange(t *testing.T) {
	s := NewSession(tone.DefaultRange, newRNG())
	for i := 0; i < 200; i++ {
		require.True(t, s.Range.Contains(s.Target()))
		s.Next()
	}
}

func TestGuessExact(t *testing.T) {
	s := NewSession(tone.Range{Start: tone.MustParse("c2"), End: tone.MustParse("c5")}, newRNG())
	target := s.Target()

	o, err := s.Guess(target.String())
	require.NoError(t, err)
	assert.True(t, o.Correct)
	assert.Equal(t, "Success!", o.String())

	c, n := s.Score()
	assert.Equal(t, 1, c)
	assert.Equal(t, 1, n)
}

func TestGuessEnharmonic(t *testing.T) {
	s := NewSession(cis3Only, newRNG())
	require.Equal(t, tone.MustParse("cis3"), s.Target())

	for _, guess := range []string{"cis3", "des3", "c#3", "db3", "des", "cis-"} {
		o, err := s.Guess(guess)
		require.NoError(t, err)
		assert.True(t, o.Correct, guess)
	}

	o, err := s.Guess("d3")
	require.NoError(t, err)
	assert.False(t, o.Correct)
	assert.Equal(t, "Failure! cis3 (not d3)", o.String())
	assert.Equal(t, "Score: 6/7", s.Summary())
}

func TestGuessSingleOctaveIgnoresOctave(t *testing.T) {
	s := NewSession(tone.DefaultRange, newRNG())
	target := s.Target()

	o, err := s.Guess(target.Name())
	require.NoError(t, err)
	assert.True(t, o.Correct)
	assert.Equal(t, target, o.Guess)

	o = s.GuessTone(target + 24)
	assert.True(t, o.Correct)
}

func TestGuessWideRangeNeedsOctave(t *testing.T) {
	s := NewSession(tone.Range{Start: tone.MustParse("c2"), End: tone.MustParse("c4")}, newRNG())
	s.target = tone.MustParse("e2")

	o, err := s.Guess("e3")
	require.NoError(t, err)
	assert.False(t, o.Correct)
	assert.Equal(t, "Failure! e2 (not e3)", o.String())

	o, err = s.Guess("fes2")
	require.NoError(t, err)
	assert.True(t, o.Correct)

	o, err = s.Guess("e2")
	require.NoError(t, err)
	assert.True(t, o.Correct)
}

func TestGuessUnreadable(t *testing.T) {
	s := NewSession(tone.DefaultRange, newRNG())
	_, err := s.Guess("x4")
	assert.ErrorIs(t, err, tone.ErrInvalidToneName)

	_, err = s.Guess("c4.5")
	assert.ErrorIs(t, err, tone.ErrInvalidOctave)

	_, n := s.Score()
	assert.Equal(t, 0, n)
}

func TestParseCommand(t *testing.T) {
	for _, tc := range []struct {
		line string
		cmd  Command
		text string
	}{
		{line: "", cmd: CmdReplay},
		{line: "   ", cmd: CmdReplay},
		{line: "?", cmd: CmdHelp},
		{line: "help", cmd: CmdHelp},
		{line: "q", cmd: CmdQuit},
		{line: " quit ", cmd: CmdQuit},
		{line: " cis4 ", cmd: CmdGuess, text: "cis4"},
		{line: "Q", cmd: CmdGuess, text: "Q"},
	} {
		t.Run(tc.line, func(t *testing.T) {
			cmd, text := ParseCommand(tc.line)
			assert.Equal(t, tc.cmd, cmd)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestRunPlain(t *testing.T) {
	s := NewSession(cis3Only, newRNG())
	p := &fakePlayer{}
	in := strings.NewReader("\n?\nx4\ndes3\nd3\nq\ncis3\n")
	var out bytes.Buffer

	require.NoError(t, RunPlain(context.Background(), in, &out, s, p))

	text := out.String()
	assert.Contains(t, text, "> ")
	assert.Contains(t, text, Help)
	assert.Contains(t, text, `invalid tone name "x"`)
	assert.Contains(t, text, "Success!")
	assert.Contains(t, text, "Failure! cis3 (not d3)")
	assert.True(t, strings.HasSuffix(text, "Score: 1/2\n"))
	assert.Len(t, p.played, 4)
}

func TestRunPlainEOF(t *testing.T) {
	s := NewSession(cis3Only, newRNG())
	var out bytes.Buffer

	require.NoError(t, RunPlain(context.Background(), strings.NewReader("cis3"), &out, s, &fakePlayer{}))
	assert.Contains(t, out.String(), "Score: 1/1")
}

func TestRunPlainPlayError(t *testing.T) {
	s := NewSession(cis3Only, newRNG())
	p := &fakePlayer{err: errors.New("port gone")}

	err := RunPlain(context.Background(), strings.NewReader(""), &bytes.Buffer{}, s, p)
	assert.EqualError(t, err, "port gone")
}
