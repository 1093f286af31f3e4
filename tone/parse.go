package tone

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

const eof = -1

// scanner is a forward cursor over a note name.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) next() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += w
	return r
}

func (s *scanner) peek() rune {
	pos := s.pos
	r := s.next()
	s.pos = pos
	return r
}

// accept consumes r if it is the next rune.
func (s *scanner) accept(r rune) bool {
	if s.peek() == r {
		s.next()
		return true
	}
	return false
}

// letter reads the pitch class of the note letter.
func (s *scanner) letter() (uint8, bool) {
	switch unicode.ToLower(s.next()) {
	case 'c':
		return C, true
	case 'd':
		return D, true
	case 'e':
		return E, true
	case 'f':
		return F, true
	case 'g':
		return G, true
	case 'a':
		return A, true
	case 'b', 'h':
		return H, true
	}
	return 0, false
}

// modifier reads one sharp or flat token and returns its semitone delta.
// A partial token (an e or i without the s) is left unread.
func (s *scanner) modifier() int {
	start := s.pos
	switch s.next() {
	case '#':
		return 1
	case 's', 'b':
		return -1
	case 'i':
		if s.accept('s') {
			return 1
		}
	case 'e':
		if s.accept('s') {
			return -1
		}
	}
	s.pos = start
	return 0
}

// skipToOctave advances to the first digit or minus sign.
func (s *scanner) skipToOctave() {
	for {
		r := s.peek()
		if r == eof || r == '-' || ('0' <= r && r <= '9') {
			return
		}
		s.next()
	}
}

// Parse reads a note name: a letter (c d e f g a h b, any case), an
// optional modifier (#, is for sharp; b, s, es for flat) and an optional
// signed octave, which defaults to 4. Failures are returned as *ParseError.
func Parse(text string) (Tone, error) {
	s := &scanner{input: text}
	if s.peek() == eof {
		return 0, &ParseError{Kind: MissingToneName, Input: text}
	}
	base, ok := s.letter()
	if !ok {
		return 0, &ParseError{Kind: InvalidToneName, Input: text, End: s.pos}
	}

	modStart := s.pos
	delta := s.modifier()
	modEnd := s.pos
	s.skipToOctave()
	if s.pos != modEnd {
		return 0, &ParseError{Kind: InvalidModifier, Input: text, Start: modStart, End: s.pos}
	}

	octave, err := parseOctave(text[s.pos:])
	if err != nil {
		return 0, &ParseError{Kind: InvalidOctave, Input: text, Start: s.pos, End: len(text), Err: err}
	}

	t, ok := combine(base, octave, delta)
	if !ok {
		return 0, &ParseError{Kind: OutOfRange, Input: text, End: len(text)}
	}
	return t, nil
}

// MustParse is like Parse but panics on error. For constants and tests.
func MustParse(text string) Tone {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// parseOctave treats an empty octave, or a lone minus, as the default.
func parseOctave(text string) (int8, error) {
	if text == "" || text == "-" {
		return DefaultOctave, nil
	}
	n, err := strconv.ParseInt(text, 10, 8)
	if err != nil {
		return 0, err
	}
	return int8(n), nil
}

// combine computes the note number with every intermediate value kept
// within a byte, failing instead of wrapping around.
func combine(base uint8, octave int8, delta int) (Tone, bool) {
	n := OctaveShift + int(octave)
	if !isByte(n) {
		return 0, false
	}
	n *= NotesPerOctave
	if !isByte(n) {
		return 0, false
	}
	n += int(base)
	if !isByte(n) {
		return 0, false
	}
	n += delta
	if !isByte(n) || n > MaxNote {
		return 0, false
	}
	return Tone(n), true
}

func isByte(n int) bool {
	return 0 <= n && n <= 0xff
}
