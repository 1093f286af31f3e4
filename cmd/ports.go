package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pitched/midi"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI ports",
	Long:  "List MIDI ports. The number in brackets can be passed to --port and --input.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, outs, err := midi.Ports(midi.ScanTimeout)
		if err != nil {
			return err
		}
		defer midi.Shutdown()

		w := cmd.OutOrStdout()
		printPorts(w, "MIDI OUT Ports", midi.PortNames(outs))
		fmt.Fprintln(w)
		printPorts(w, "MIDI IN Ports", midi.PortNames(ins))
		return nil
	},
}

func printPorts(w io.Writer, title string, names []string) {
	fmt.Fprintln(w, title)
	if len(names) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, name := range names {
		fmt.Fprintf(w, "  [%d] %s\n", i, name)
	}
}
