// Package config loads and validates the editor configuration.
//
// Configuration is a single TOML file covering the canonical constant set:
// editor limits, render cell geometry, and theme colors. Missing file means
// defaults. A watcher built on fsnotify supports live reload.
package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrBadCapacity    = errors.New("text capacity must be positive")
	ErrBadTabWidth    = errors.New("tab width must be between 1 and 16")
	ErrBadDrainCap    = errors.New("events per tick must be positive")
	ErrBadCellSize    = errors.New("cell size must fit the 5x7 glyph")
	ErrBadGutterWidth = errors.New("gutter width must be at least 2")
	ErrBadBlinkPeriod = errors.New("blink period must be positive")
)

// Config is the full editor configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Render RenderConfig `toml:"render"`
	Theme  ThemeConfig  `toml:"theme"`
}

// EditorConfig bounds the kernel's storage and per-tick work.
type EditorConfig struct {
	// TextCapacity is the maximum number of stored code points.
	TextCapacity int `toml:"text_capacity"`

	// TabWidth is the number of spaces a Tab key inserts.
	TabWidth int `toml:"tab_width"`

	// EventsPerTick caps how many queued events one tick drains.
	EventsPerTick int `toml:"events_per_tick"`
}

// RenderConfig fixes the render stage geometry.
type RenderConfig struct {
	// CellWidth and CellHeight are the character cell size in pixels.
	// The 5x7 glyph is drawn at the cell origin; remaining pixels are
	// spacing.
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`

	// GutterMinWidth is the minimum gutter width in cells, including the
	// separator column. The gutter widens for larger line counts.
	GutterMinWidth int `toml:"gutter_min_width"`

	// BlinkPeriod is the number of frames between cursor visibility
	// toggles.
	BlinkPeriod int `toml:"blink_period"`
}

// ThemeConfig holds the palette as hex strings.
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Cursor     string `toml:"cursor"`
}

// Default returns the canonical configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TextCapacity:  1 << 20,
			TabWidth:      4,
			EventsPerTick: 256,
		},
		Render: RenderConfig{
			CellWidth:      6,
			CellHeight:     9,
			GutterMinWidth: 4,
			BlinkPeriod:    30,
		},
		Theme: ThemeConfig{
			Background: "#101418",
			Foreground: "#d8dee9",
			Cursor:     "#88c0d0",
		},
	}
}

// Validate checks the configuration for values the kernel or render stage
// cannot operate with.
func (c Config) Validate() error {
	if c.Editor.TextCapacity <= 0 {
		return ErrBadCapacity
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return ErrBadTabWidth
	}
	if c.Editor.EventsPerTick <= 0 {
		return ErrBadDrainCap
	}
	if c.Render.CellWidth < 5 || c.Render.CellHeight < 7 {
		return fmt.Errorf("%w: got %dx%d", ErrBadCellSize,
			c.Render.CellWidth, c.Render.CellHeight)
	}
	if c.Render.GutterMinWidth < 2 {
		return ErrBadGutterWidth
	}
	if c.Render.BlinkPeriod <= 0 {
		return ErrBadBlinkPeriod
	}
	return nil
}
