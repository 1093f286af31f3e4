package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pitched/tone"
)

const (
	DefaultVelocity   = 127
	DefaultNoteLength = 500 // ms
)

var ErrInvalid = errors.New("invalid config")

// Config is the main configuration structure
type Config struct {
	Port       string     `json:"port,omitempty"`  // output port id, empty for the last port
	Input      string     `json:"input,omitempty"` // keyboard input port id, empty for none
	Range      tone.Range `json:"range"`
	Channel    uint8      `json:"channel"`
	Velocity   uint8      `json:"velocity"`
	NoteLength int        `json:"noteLengthMs"`
	Palette    string     `json:"palette,omitempty"` // .gpl file, empty for the built-in one
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Range:      tone.DefaultRange,
		Velocity:   DefaultVelocity,
		NoteLength: DefaultNoteLength,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pitched"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
// Fields missing from the file keep their defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the values the MIDI layer would otherwise mask.
func (c *Config) Validate() error {
	if c.Channel > 15 {
		return fmt.Errorf("%w: channel %d, want 0-15", ErrInvalid, c.Channel)
	}
	if c.Velocity > tone.MaxNote {
		return fmt.Errorf("%w: velocity %d, want 0-127", ErrInvalid, c.Velocity)
	}
	if c.NoteLength <= 0 {
		return fmt.Errorf("%w: note length %dms, want > 0", ErrInvalid, c.NoteLength)
	}
	if c.Range.Start >= c.Range.End {
		return fmt.Errorf("%w: %v", ErrInvalid, tone.ErrEmptyRange)
	}
	return nil
}

// NoteDuration returns NoteLength as a duration.
func (c *Config) NoteDuration() time.Duration {
	return time.Duration(c.NoteLength) * time.Millisecond
}
