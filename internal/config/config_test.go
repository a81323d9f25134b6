package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[editor]
line_numbers = "relative"
theme = "mono"
tab_width = 8

[gutter]
layout = ["spacer", "line_numbers"]
min_width = 4

[statusline]
left = ["mode", "language"]
right = ["position"]

[pipeline]
queue_size = 42

[logging]
level = "debug"
file = "/tmp/athena.log"

[keys.normal]
"ctrl+q" = "quit"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.LineNumbers != "relative" || cfg.Editor.Theme != "mono" || cfg.Editor.TabWidth != 8 {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Gutter.MinWidth != 4 || !reflect.DeepEqual(cfg.Gutter.Layout, []string{"spacer", "line_numbers"}) {
		t.Errorf("gutter = %+v", cfg.Gutter)
	}
	if !reflect.DeepEqual(cfg.StatusLine.Left, []string{"mode", "language"}) {
		t.Errorf("statusline left = %v", cfg.StatusLine.Left)
	}
	// Sections absent from the file keep their defaults.
	if !reflect.DeepEqual(cfg.StatusLine.Center, Default().StatusLine.Center) {
		t.Errorf("statusline center = %v, want default", cfg.StatusLine.Center)
	}
	if cfg.Keys["normal"]["ctrl+q"] != "quit" {
		t.Errorf("keys = %v", cfg.Keys)
	}
	if cfg.Pipeline.QueueSize != 42 {
		t.Errorf("queue_size = %d, want 42", cfg.Pipeline.QueueSize)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/athena.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// Unset keys keep defaults.
	if cfg.Logging.MaxSizeMB != Default().Logging.MaxSizeMB {
		t.Errorf("max_size_mb = %d, want default", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "editor = {{{")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"line numbers", func(c *Config) { c.Editor.LineNumbers = "roman" }},
		{"theme", func(c *Config) { c.Editor.Theme = "solarized" }},
		{"tab width", func(c *Config) { c.Editor.TabWidth = 0 }},
		{"gutter min width", func(c *Config) { c.Gutter.MinWidth = 0 }},
		{"gutter element", func(c *Config) { c.Gutter.Layout = []string{"margin"} }},
		{"statusline item", func(c *Config) { c.StatusLine.Right = []string{"weather"} }},
		{"keys mode", func(c *Config) { c.Keys = map[string]map[string]string{"visual": {}} }},
		{"queue size", func(c *Config) { c.Pipeline.QueueSize = 0 }},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate accepted %+v", tt.name, cfg)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil || !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, %v", cfg, err)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `[editor]
line_numbers = "absolute"
`)

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(c Config) {
		select {
		case reloaded <- c:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Give the watcher a beat to register before writing.
	time.Sleep(50 * time.Millisecond)
	writeConfig(t, dir, `[editor]
line_numbers = "relative"
`)

	select {
	case cfg := <-reloaded:
		if cfg.Editor.LineNumbers != "relative" {
			t.Errorf("reloaded line_numbers = %q, want relative", cfg.Editor.LineNumbers)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatcherReportsBadRevision(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `[editor]
theme = "default"
`)

	errs := make(chan error, 1)
	w, err := NewWatcher(path, func(Config) {}, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	writeConfig(t, dir, `theme = {{{`)

	select {
	case err := <-errs:
		if !strings.Contains(err.Error(), "config:") {
			t.Errorf("error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error observed")
	}
}
