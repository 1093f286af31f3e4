// Package tone converts between MIDI note numbers and the note names a
// player types: c, cis, des, h, b, a#, with an optional signed octave.
package tone

import "fmt"

// Tone is a pitch, stored as its MIDI note number (0-127).
type Tone uint8

const (
	// OctaveShift is added to the octave before scaling, so octave -2 is
	// the lowest one and c4 is note 72.
	OctaveShift = 2

	NotesPerOctave = 12
	DefaultOctave  = 4
	MaxNote        = 0x7f
)

// Pitch class values of the natural note letters.
const (
	C uint8 = 0
	D uint8 = 2
	E uint8 = 4
	F uint8 = 5
	G uint8 = 7
	A uint8 = 9
	H uint8 = 11
	B       = H
)

// MIDI channel voice status bytes
const (
	statusNoteOff uint8 = 0x80
	statusNoteOn  uint8 = 0x90
)

var pitchClassNames = [NotesPerOctave]string{
	"c", "cis", "d", "dis", "e", "f", "fis", "g", "gis", "a", "ais", "h",
}

// A4 is the usual tuning reference.
var A4 = New(A, 4)

// New builds a tone from a pitch class (0-11) and an octave. It does not
// validate; callers keep the result within 0-127.
func New(pitchClass uint8, octave int) Tone {
	return Tone(int(pitchClass) + (octave+OctaveShift)*NotesPerOctave)
}

// PitchClass returns the note within its octave, 0 (c) to 11 (h).
func (t Tone) PitchClass() uint8 {
	return uint8(t) % NotesPerOctave
}

// Octave returns the signed octave number.
func (t Tone) Octave() int {
	return int(t)/NotesPerOctave - OctaveShift
}

// Name returns the canonical pitch class name without the octave.
func (t Tone) Name() string {
	return pitchClassNames[t.PitchClass()]
}

// SamePitchClass reports whether both tones name the same note, ignoring
// the octave.
func (t Tone) SamePitchClass(o Tone) bool {
	return t.PitchClass() == o.PitchClass()
}

// String formats the tone canonically: sharps only, h instead of b, and the
// octave appended with no separator (cis4, a-1, h3).
func (t Tone) String() string {
	return fmt.Sprintf("%s%d", t.Name(), t.Octave())
}

// NoteOn encodes a note on message. Channel and velocity are masked, not
// validated.
func (t Tone) NoteOn(channel, velocity uint8) [3]byte {
	return t.message(statusNoteOn, channel, velocity)
}

// NoteOff encodes a note off message, masked like NoteOn.
func (t Tone) NoteOff(channel, velocity uint8) [3]byte {
	return t.message(statusNoteOff, channel, velocity)
}

func (t Tone) message(status, channel, velocity uint8) [3]byte {
	return [3]byte{status | channel&0x0f, uint8(t) & 0x7f, velocity & 0x7f}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (t *Tone) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
