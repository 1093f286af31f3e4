package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pitched/midi"
	"pitched/theme"
	"pitched/trainer"
)

type Model struct {
	Session *trainer.Session
	Player  trainer.Player
	Theme   *theme.Theme

	ctx    context.Context
	cancel context.CancelFunc
	notes  <-chan midi.NoteEvent

	input    []rune
	feedback string
	help     bool
	playing  bool
	pending  bool // replay once the current tone ends
	quitting bool
	err      error
}

// replayMsg asks for the target to be played (again).
type replayMsg struct{}

type playedMsg struct{ err error }

type noteMsg midi.NoteEvent

// NewModel builds the model. notes may be nil when no keyboard is attached.
func NewModel(ctx context.Context, s *trainer.Session, p trainer.Player, th *theme.Theme, notes <-chan midi.NoteEvent) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		Session: s,
		Player:  p,
		Theme:   th,
		ctx:     ctx,
		cancel:  cancel,
		notes:   notes,
	}
}

// Err returns the playback error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func ListenForNotes(notes <-chan midi.NoteEvent) tea.Cmd {
	if notes == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-notes
		if !ok {
			return nil
		}
		return noteMsg(ev)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return replayMsg{} },
		ListenForNotes(m.notes),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m.quit()
		case tea.KeyEnter:
			line := string(m.input)
			m.input = nil
			return m.submit(line)
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyRunes, tea.KeySpace:
			m.input = append(m.input, msg.Runes...)
		}

	case replayMsg:
		return m.play()

	case playedMsg:
		m.playing = false
		if msg.err != nil && m.ctx.Err() == nil {
			m.err = msg.err
			return m.quit()
		}
		if m.pending {
			m.pending = false
			return m.play()
		}

	case noteMsg:
		next, cmd := m.judge(m.Session.GuessTone(msg.Tone))
		return next, tea.Batch(cmd, ListenForNotes(next.notes))
	}

	return m, nil
}

func (m Model) submit(line string) (Model, tea.Cmd) {
	cmd, text := trainer.ParseCommand(line)
	switch cmd {
	case trainer.CmdQuit:
		return m.quit()
	case trainer.CmdHelp:
		m.help = !m.help
	case trainer.CmdReplay:
		return m.play()
	case trainer.CmdGuess:
		o, err := m.Session.Guess(text)
		if err != nil {
			m.feedback = m.Theme.WarningStyle().Render(fmt.Sprintf("%c %v", m.Theme.Symbols.Error, err))
			return m, nil
		}
		return m.judge(o)
	}
	return m, nil
}

// judge shows the outcome and moves on to a new target.
func (m Model) judge(o trainer.Outcome) (Model, tea.Cmd) {
	if o.Correct {
		m.feedback = m.Theme.SuccessStyle().Render(fmt.Sprintf("%c %s", m.Theme.Symbols.Success, o))
	} else {
		m.feedback = m.Theme.FailureStyle().Render(fmt.Sprintf("%c %s", m.Theme.Symbols.Failure, o))
	}
	m.Session.Next()
	return m.play()
}

func (m Model) play() (Model, tea.Cmd) {
	if m.playing {
		m.pending = true
		return m, nil
	}
	m.playing = true
	target := m.Session.Target()
	ctx, player := m.ctx, m.Player
	return m, func() tea.Msg {
		return playedMsg{err: player.Play(ctx, target)}
	}
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return m.Session.Summary() + "\n"
	}

	// Styles
	headerStyle := m.Theme.AccentStyle()
	dimStyle := m.Theme.MutedStyle()
	textStyle := m.Theme.TextStyle()

	status := ""
	if m.playing {
		status = fmt.Sprintf("  %c", m.Theme.Symbols.Note)
	}
	header := headerStyle.Render(fmt.Sprintf("pitched  %s  %s%s", m.Session.Range, m.Session.Summary(), status))
	prompt := textStyle.Render("> " + string(m.input) + "_")
	help := dimStyle.Render("?:help  enter:replay  q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	if m.feedback != "" {
		out.WriteString(m.feedback)
		out.WriteString("\n\n")
	}
	out.WriteString(prompt)
	out.WriteString("\n\n")
	out.WriteString(help)
	if m.help {
		out.WriteString("\n\n")
		out.WriteString(dimStyle.Render(trainer.Help))
	}
	out.WriteString("\n")
	return out.String()
}
