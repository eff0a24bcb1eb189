package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", cfg.Editor.TabWidth)
	}
	if cfg.Editor.TextCapacity != 1<<20 {
		t.Errorf("TextCapacity = %d, want %d", cfg.Editor.TextCapacity, 1<<20)
	}
	if cfg.Render.BlinkPeriod != 30 {
		t.Errorf("BlinkPeriod = %d, want 30", cfg.Render.BlinkPeriod)
	}
	if cfg.Render.CellWidth != 6 || cfg.Render.CellHeight != 9 {
		t.Errorf("cell = %dx%d, want 6x9", cfg.Render.CellWidth, cfg.Render.CellHeight)
	}
	if cfg.Render.GutterMinWidth != 4 {
		t.Errorf("GutterMinWidth = %d, want 4", cfg.Render.GutterMinWidth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero capacity", func(c *Config) { c.Editor.TextCapacity = 0 }, ErrBadCapacity},
		{"negative tab", func(c *Config) { c.Editor.TabWidth = 0 }, ErrBadTabWidth},
		{"huge tab", func(c *Config) { c.Editor.TabWidth = 64 }, ErrBadTabWidth},
		{"zero drain cap", func(c *Config) { c.Editor.EventsPerTick = 0 }, ErrBadDrainCap},
		{"cell too narrow", func(c *Config) { c.Render.CellWidth = 4 }, ErrBadCellSize},
		{"cell too short", func(c *Config) { c.Render.CellHeight = 6 }, ErrBadCellSize},
		{"gutter too narrow", func(c *Config) { c.Render.GutterMinWidth = 1 }, ErrBadGutterWidth},
		{"zero blink", func(c *Config) { c.Render.BlinkPeriod = 0 }, ErrBadBlinkPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[editor]
tab_width = 8

[render]
blink_period = 15

[theme]
background = "#000000"
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.Render.BlinkPeriod != 15 {
		t.Errorf("BlinkPeriod = %d, want 15", cfg.Render.BlinkPeriod)
	}
	if cfg.Theme.Background != "#000000" {
		t.Errorf("Background = %q", cfg.Theme.Background)
	}

	// Unspecified fields keep their defaults.
	if cfg.Editor.TextCapacity != 1<<20 {
		t.Errorf("TextCapacity = %d, want default", cfg.Editor.TextCapacity)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("editor = {"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse error = %v, want *ParseError", err)
	}
}

func TestParseInvalidValues(t *testing.T) {
	_, err := Parse([]byte("[editor]\ntab_width = 99\n"))
	if !errors.Is(err, ErrBadTabWidth) {
		t.Errorf("Parse error = %v, want ErrBadTabWidth", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixedit.toml")
	content := "[render]\ncell_width = 8\ncell_height = 12\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.CellWidth != 8 || cfg.Render.CellHeight != 12 {
		t.Errorf("cell = %dx%d, want 8x12", cfg.Render.CellWidth, cfg.Render.CellHeight)
	}
}
