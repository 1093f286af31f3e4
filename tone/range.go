package tone

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const rangeSep = ".."

var (
	ErrRangeSyntax = errors.New("range must look like <start>..<end>")
	ErrEmptyRange  = errors.New("range start must be below its end")
)

// Range is the half-open interval [Start, End) of tones.
type Range struct {
	Start Tone
	End   Tone
}

// DefaultRange is the octave from c3 up to, not including, c4.
var DefaultRange = Range{Start: New(C, 3), End: New(C, 4)}

// ParseRange reads "<start>..<end>", e.g. "c3..c4", and requires start < end.
func ParseRange(text string) (Range, error) {
	lo, hi, ok := strings.Cut(text, rangeSep)
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrRangeSyntax, text)
	}
	start, err := Parse(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("range start: %w", err)
	}
	end, err := Parse(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("range end: %w", err)
	}
	if start >= end {
		return Range{}, fmt.Errorf("%w: %s%s%s", ErrEmptyRange, start, rangeSep, end)
	}
	return Range{Start: start, End: end}, nil
}

// Len returns the number of tones in the range.
func (r Range) Len() int {
	return int(r.End) - int(r.Start)
}

func (r Range) Contains(t Tone) bool {
	return r.Start <= t && t < r.End
}

// SingleOctave reports whether no pitch class occurs twice in the range, so
// a guess can be judged on pitch class alone.
func (r Range) SingleOctave() bool {
	return r.Len() <= NotesPerOctave
}

// Random picks a tone uniformly from the range. The range must not be empty.
func (r Range) Random(rng *rand.Rand) Tone {
	return r.Start + Tone(rng.IntN(r.Len()))
}

func (r Range) String() string {
	return r.Start.String() + rangeSep + r.End.String()
}

// Set implements pflag.Value.
func (r *Range) Set(text string) error {
	parsed, err := ParseRange(text)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements pflag.Value.
func (r *Range) Type() string {
	return "range"
}

func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Range) UnmarshalText(text []byte) error {
	return r.Set(string(text))
}
