package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDisabled(t *testing.T) {
	Disable()
	assert.False(t, Enabled())
	Log("test", "nothing %d", 1) // must not panic
}

func TestLogWriter(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	t.Cleanup(Disable)

	require.True(t, Enabled())
	Log("play", "%s (%d)", "a4", 81)

	out := buf.String()
	assert.Contains(t, out, "Debug logging started")
	assert.Contains(t, out, "category=play")
	assert.Contains(t, out, `msg="a4 (81)"`)

	Disable()
	buf.Reset()
	Log("play", "ignored")
	assert.Empty(t, buf.String())
}

func TestEnableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "debug.log")
	require.NoError(t, Enable(path))
	Log("midi", "opened output %q", "synth")
	Disable()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "category=midi")
	assert.Contains(t, string(data), "opened output")
}
