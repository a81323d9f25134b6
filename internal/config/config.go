// Package config loads editor settings from a TOML file and watches it
// for live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the full settings tree.
type Config struct {
	Editor     EditorConfig     `toml:"editor"`
	Gutter     GutterConfig     `toml:"gutter"`
	StatusLine StatusLineConfig `toml:"statusline"`
	Pipeline   PipelineConfig   `toml:"pipeline"`
	Logging    LoggingConfig    `toml:"logging"`

	// Keys maps mode name ("normal", "insert") to key-string →
	// command-name overrides layered over the default keymaps.
	Keys map[string]map[string]string `toml:"keys"`
}

// EditorConfig holds display settings.
type EditorConfig struct {
	// LineNumbers controls the gutter: "absolute", "relative", or
	// "off".
	LineNumbers string `toml:"line_numbers"`

	// Theme selects the color theme: "default" or "mono".
	Theme string `toml:"theme"`

	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`
}

// GutterConfig shapes the column group left of the text.
type GutterConfig struct {
	// Layout lists the gutter elements in display order. Valid
	// elements: "spacer", "line_numbers".
	Layout []string `toml:"layout"`

	// MinWidth is the least number of digit columns.
	MinWidth int `toml:"min_width"`
}

// StatusLineConfig lists the items each status-bar section shows, in
// order. Valid items: "mode", "file_name", "file_encoding", "language",
// "position", "line_count".
type StatusLineConfig struct {
	Left   []string `toml:"left"`
	Center []string `toml:"center"`
	Right  []string `toml:"right"`
}

// PipelineConfig tunes the command/event queues.
type PipelineConfig struct {
	// QueueSize bounds both the command and event queues.
	QueueSize int `toml:"queue_size"`
}

// LoggingConfig controls the session log.
type LoggingConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `toml:"level"`

	// File is the log path. Empty disables file logging.
	File string `toml:"file"`

	// MaxSizeMB rotates the log once it grows past this size.
	MaxSizeMB int `toml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `toml:"max_backups"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			LineNumbers: "absolute",
			Theme:       "default",
			TabWidth:    4,
		},
		Gutter: GutterConfig{
			Layout:   []string{"line_numbers", "spacer"},
			MinWidth: 3,
		},
		StatusLine: StatusLineConfig{
			Left:   []string{"mode"},
			Center: []string{"file_name"},
			Right:  []string{"file_encoding", "position", "line_count"},
		},
		Pipeline: PipelineConfig{
			QueueSize: 100,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "athena", "config.toml")
}

// Load reads the file at path over the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects values the editor cannot honor.
func (c Config) Validate() error {
	switch c.Editor.LineNumbers {
	case "absolute", "relative", "off":
	default:
		return fmt.Errorf("config: bad line_numbers %q", c.Editor.LineNumbers)
	}
	switch c.Editor.Theme {
	case "default", "mono":
	default:
		return fmt.Errorf("config: bad theme %q", c.Editor.Theme)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("config: tab_width must be in 1..16, got %d", c.Editor.TabWidth)
	}
	if c.Gutter.MinWidth < 1 {
		return fmt.Errorf("config: gutter min_width must be positive, got %d", c.Gutter.MinWidth)
	}
	for _, el := range c.Gutter.Layout {
		switch el {
		case "spacer", "line_numbers":
		default:
			return fmt.Errorf("config: bad gutter element %q", el)
		}
	}
	for _, section := range [][]string{c.StatusLine.Left, c.StatusLine.Center, c.StatusLine.Right} {
		for _, item := range section {
			switch item {
			case "mode", "file_name", "file_encoding", "language", "position", "line_count":
			default:
				return fmt.Errorf("config: bad statusline item %q", item)
			}
		}
	}
	for mode := range c.Keys {
		if mode != "normal" && mode != "insert" {
			return fmt.Errorf("config: bad keys mode %q", mode)
		}
	}
	if c.Pipeline.QueueSize < 1 {
		return fmt.Errorf("config: queue_size must be positive, got %d", c.Pipeline.QueueSize)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: bad log level %q", c.Logging.Level)
	}
	return nil
}
