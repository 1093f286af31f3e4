// Package trainer runs the guessing game: pick a tone from a range, play
// it, and judge the name the player gives for it.
package trainer

import (
	"context"
	"fmt"
	"math/rand/v2"

	"pitched/debug"
	"pitched/tone"
)

// Player sounds a tone, returning once it has finished or ctx is done.
type Player interface {
	Play(ctx context.Context, t tone.Tone) error
}

// Outcome is the verdict on one guess.
type Outcome struct {
	Target  tone.Tone
	Guess   tone.Tone
	Correct bool
}

func (o Outcome) String() string {
	if o.Correct {
		return "Success!"
	}
	return fmt.Sprintf("Failure! %s (not %s)", o.Target, o.Guess)
}

// Session holds the current target and the score. It is not safe for
// concurrent use.
type Session struct {
	Range tone.Range

	rng     *rand.Rand
	target  tone.Tone
	correct int
	total   int
}

// NewSession starts a session with a first target already chosen.
func NewSession(r tone.Range, rng *rand.Rand) *Session {
	s := &Session{Range: r, rng: rng}
	s.Next()
	return s
}

// Next picks and returns a new target.
func (s *Session) Next() tone.Tone {
	s.target = s.Range.Random(s.rng)
	debug.Log("trainer", "target %s (%d)", s.target, s.target)
	return s.target
}

func (s *Session) Target() tone.Tone {
	return s.target
}

// Score returns the number of correct guesses and of all guesses.
func (s *Session) Score() (correct, total int) {
	return s.correct, s.total
}

// Summary formats the score for display.
func (s *Session) Summary() string {
	return fmt.Sprintf("Score: %d/%d", s.correct, s.total)
}

// Guess judges a typed note name. Unreadable input returns the parse error
// and leaves the score alone.
func (s *Session) Guess(text string) (Outcome, error) {
	t, err := tone.Parse(text)
	if err != nil {
		debug.Log("trainer", "unreadable guess %q: %v", text, err)
		return Outcome{}, err
	}
	return s.GuessTone(t), nil
}

// GuessTone judges a guess given as a tone, e.g. one played on a keyboard.
func (s *Session) GuessTone(t tone.Tone) Outcome {
	guess := s.align(t)
	o := Outcome{Target: s.target, Guess: guess, Correct: guess == s.target}
	s.total++
	if o.Correct {
		s.correct++
	}
	debug.Log("trainer", "guess %s for %s: correct=%v score=%d/%d", guess, s.target, o.Correct, s.correct, s.total)
	return o
}

// align moves t into the range when the range spans at most an octave, so
// only the pitch class of a guess counts there.
func (s *Session) align(t tone.Tone) tone.Tone {
	if !s.Range.SingleOctave() {
		return t
	}
	for c := s.Range.Start; c < s.Range.End; c++ {
		if c.SamePitchClass(t) {
			return c
		}
	}
	return t
}
