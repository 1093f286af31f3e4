package tone

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies which part of a note name failed to parse.
type Kind int

const (
	MissingToneName Kind = iota + 1
	InvalidToneName
	InvalidModifier
	InvalidOctave
	OutOfRange
)

var (
	ErrMissingToneName = errors.New("missing tone name")
	ErrInvalidToneName = errors.New("invalid tone name")
	ErrInvalidModifier = errors.New("invalid modifier")
	ErrInvalidOctave   = errors.New("invalid octave")
	ErrOutOfRange      = errors.New("tone is out of supported range")
)

func (k Kind) sentinel() error {
	switch k {
	case MissingToneName:
		return ErrMissingToneName
	case InvalidToneName:
		return ErrInvalidToneName
	case InvalidModifier:
		return ErrInvalidModifier
	case InvalidOctave:
		return ErrInvalidOctave
	case OutOfRange:
		return ErrOutOfRange
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case MissingToneName:
		return "missing tone name"
	case InvalidToneName:
		return "invalid tone name"
	case InvalidModifier:
		return "invalid modifier"
	case InvalidOctave:
		return "invalid octave"
	case OutOfRange:
		return "out of range"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError reports a note name that could not be read. Input[Start:End]
// is the offending part; an out of range error spans the whole input.
type ParseError struct {
	Kind  Kind
	Input string
	Start int
	End   int
	Err   error // cause, set for InvalidOctave
}

// Text returns the offending part of the input.
func (e *ParseError) Text() string {
	return e.Input[e.Start:e.End]
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingToneName:
		return "missing tone name"
	case InvalidOctave:
		var numErr *strconv.NumError
		if errors.As(e.Err, &numErr) {
			return fmt.Sprintf("invalid octave %q: %v", e.Text(), numErr.Err)
		}
		return fmt.Sprintf("invalid octave %q", e.Text())
	case OutOfRange:
		return fmt.Sprintf("tone %q is out of supported range", e.Input)
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Text())
}

// Unwrap exposes the kind's sentinel (for errors.Is) and the cause.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
