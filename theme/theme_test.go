package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `GIMP Palette
Name: mono
Columns: 2
# comment
  0   0   0	black
255 255 255	white
300   0   0	ignored
`

func TestParseGPL(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "mono", p.Name)
	assert.Equal(t, []RGB{{0, 0, 0}, {255, 255, 255}}, p.Colors)
}

func TestParseGPLEmpty(t *testing.T) {
	_, err := ParseGPL(strings.NewReader("GIMP Palette\nName: none\n"))
	assert.ErrorContains(t, err, "no colors")
}

func TestLookup(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {200, 100, 50}}}
	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(-1))
	assert.Equal(t, RGB{200, 100, 50}, p.Lookup(2))
	assert.Equal(t, RGB{100, 50, 25}, p.Lookup(0.5))

	single := &Palette{Colors: []RGB{{1, 2, 3}}}
	assert.Equal(t, RGB{1, 2, 3}, single.Lookup(0.5))
}

func TestBuiltin(t *testing.T) {
	p, err := Builtin(DefaultPalette)
	require.NoError(t, err)
	assert.Equal(t, "dusk", p.Name)
	assert.Len(t, p.Colors, 10)

	_, err = Builtin("missing")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#261e38"), th.BG())
	assert.Equal(t, lipgloss.Color("#82dc78"), th.Success())

	path := filepath.Join(t.TempDir(), "mono.gpl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))
	th, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#ffffff"), th.Success())

	_, err = Load(filepath.Join(t.TempDir(), "nope.gpl"))
	assert.Error(t, err)
}
