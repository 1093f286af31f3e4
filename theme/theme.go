package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Success rune // ✓ correct guess
	Failure rune // ✗ wrong guess
	Error   rune // ! unreadable input
	Note    rune // ♪ tone playing
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Success: '✓',
			Failure: '✗',
			Error:   '!',
			Note:    '♪',
		},
	}
}

// Load builds a theme from a .gpl file, or from the built-in palette when
// path is empty.
func Load(path string) (*Theme, error) {
	var (
		p   *Palette
		err error
	)
	if path == "" {
		p, err = Builtin(DefaultPalette)
	} else {
		p, err = LoadGPL(path)
	}
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0
	RoleMuted   = 0.22
	RoleFG      = 0.44
	RoleAccent  = 0.56
	RoleFailure = 0.67
	RoleWarning = 0.78
	RoleSuccess = 1.0
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Failure() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFailure))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

func (t *Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success()).Bold(true)
}

func (t *Theme) FailureStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Failure()).Bold(true)
}

func (t *Theme) WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Warning())
}

func (t *Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted())
}

func (t *Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent())
}

func (t *Theme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FG())
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
