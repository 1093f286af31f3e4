package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pitched/config"
	"pitched/debug"
	"pitched/midi"
	"pitched/theme"
	"pitched/tone"
	"pitched/trainer"
	"pitched/tui"
)

var _ pflag.Value = (*tone.Range)(nil)

// options holds the flags that override config values.
type options struct {
	port     string
	input    string
	palette  string
	rng      tone.Range
	channel  uint8
	velocity uint8
	length   int
	save     bool
}

func (o *options) bind(f *pflag.FlagSet) {
	o.rng = tone.DefaultRange
	f.StringVarP(&o.port, "port", "p", "", "MIDI output port: name, index or part of the name (default the last port)")
	f.StringVarP(&o.input, "input", "i", "", "MIDI keyboard to answer with, as for --port")
	f.VarP(&o.rng, "range", "r", "notes to play, <start>..<end>; the end is exclusive")
	f.Uint8Var(&o.channel, "channel", 0, "MIDI channel, 0-15")
	f.Uint8Var(&o.velocity, "velocity", config.DefaultVelocity, "note velocity, 0-127")
	f.IntVar(&o.length, "length", config.DefaultNoteLength, "note length in milliseconds")
	f.StringVar(&o.palette, "palette", "", "GIMP .gpl palette for the colors")
	f.BoolVar(&o.save, "save", false, "save these settings as the defaults")
}

// apply copies the flags that were set onto cfg.
func (o *options) apply(cfg *config.Config, f *pflag.FlagSet) {
	if f.Changed("port") {
		cfg.Port = o.port
	}
	if f.Changed("input") {
		cfg.Input = o.input
	}
	if f.Changed("range") {
		cfg.Range = o.rng
	}
	if f.Changed("channel") {
		cfg.Channel = o.channel
	}
	if f.Changed("velocity") {
		cfg.Velocity = o.velocity
	}
	if f.Changed("length") {
		cfg.NoteLength = o.length
	}
	if f.Changed("palette") {
		cfg.Palette = o.palette
	}
}

var (
	opts      options
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "pitched",
	Short: "Ear training: name the note you hear",
	Long: `pitched plays a random note from a range on a MIDI output and asks you
to name it.

Notes are written as a letter (c d e f g a h, or b for h), an optional sharp
(#, is) or flat (b, s, es), and an optional octave, 4 by default: c, cis4,
des3, a#, h-1. If the range is an octave or less, the octave of a guess is
ignored.

Settings are read from ~/.config/pitched/config.json; flags override them.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTrainer,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugFlag {
			return debug.Enable("")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Disable()
	},
}

func init() {
	opts.bind(rootCmd.Flags())
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log to ~/.config/pitched/debug.log")
	rootCmd.AddCommand(portsCmd, parseCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTrainer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts.apply(cfg, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.save {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}
	th, err := theme.Load(cfg.Palette)
	if err != nil {
		return err
	}

	out, err := midi.Open(cfg.Port)
	if err != nil {
		return err
	}
	defer midi.Shutdown()
	defer out.Close()
	out.Channel = cfg.Channel
	out.Velocity = cfg.Velocity
	out.Length = cfg.NoteDuration()

	var notes <-chan midi.NoteEvent
	if cfg.Input != "" {
		kb, err := midi.ListenKeyboard(cfg.Input)
		if err != nil {
			return err
		}
		defer kb.Close()
		notes = kb.Notes()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	debug.Log("main", "output %q, range %s", out.Name(), cfg.Range)
	session := trainer.NewSession(cfg.Range, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return trainer.RunPlain(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), session, out)
	}

	final, err := tea.NewProgram(tui.NewModel(ctx, session, out, th, notes)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok {
		return m.Err()
	}
	return nil
}
