package trainer

import "strings"

// Command is what a line of input asks for.
type Command int

const (
	CmdGuess Command = iota
	CmdReplay
	CmdHelp
	CmdQuit
)

// ParseCommand classifies an input line. For CmdGuess the trimmed line is
// returned as the guess text.
func ParseCommand(line string) (Command, string) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return CmdReplay, ""
	case "?", "help":
		return CmdHelp, ""
	case "q", "quit":
		return CmdQuit, ""
	}
	return CmdGuess, line
}

// Help describes the commands and the note syntax.
const Help = `Commands:
  ?  help         show this help
  q  quit         exit
  <note>          guess the note
  <enter/empty>   play the note again

Notes match [CDEFGAHBcdefgahb](#|is|s|es|b)?-?[0-9]*. H and B are the same
note. The octave is 4 unless given, and is ignored when the range spans a
single octave.
`
