package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pitched/tone"
)

var parseCmd = &cobra.Command{
	Use:   "parse <note>...",
	Short: "Show how note names are read",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printParsed(cmd.OutOrStdout(), args)
	},
}

func printParsed(w io.Writer, names []string) error {
	failed := 0
	for _, name := range names {
		t, err := tone.Parse(name)
		if err != nil {
			fmt.Fprintf(w, "%-8s error: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%-8s %-6s %3d  note on % x\n", name, t, uint8(t), t.NoteOn(0, 127))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d notes could not be read", failed, len(names))
	}
	return nil
}
