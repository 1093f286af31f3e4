package trainer

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// RunPlain runs the game over plain text lines, for input that is not a
// terminal. It returns when the player quits, in reaches EOF or ctx is done,
// printing the score on the way out.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, s *Session, p Player) error {
	err := runPlain(ctx, in, out, s, p)
	fmt.Fprintln(out, s.Summary())
	return err
}

func runPlain(ctx context.Context, in io.Reader, out io.Writer, s *Session, p Player) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	if err := p.Play(ctx, s.Target()); err != nil {
		return err
	}
	for {
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case err := <-errc:
			fmt.Fprintln(out)
			return err
		case line = <-lines:
		}

		cmd, text := ParseCommand(line)
		switch cmd {
		case CmdQuit:
			return nil
		case CmdHelp:
			fmt.Fprint(out, Help)
		case CmdReplay:
			if err := p.Play(ctx, s.Target()); err != nil {
				return err
			}
		case CmdGuess:
			o, err := s.Guess(text)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintln(out, o)
			if err := p.Play(ctx, s.Next()); err != nil {
				return err
			}
		}
	}
}
