// Package theme defines the render stage's color palette.
package theme

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is the fixed set of colors the render stage samples. Every pixel of
// a frame is one of these values.
type Theme struct {
	// Background fills empty cells and out-of-range coordinates.
	Background color.RGBA

	// Foreground is the glyph color in the text area.
	Foreground color.RGBA

	// Gutter is the line-number color.
	Gutter color.RGBA

	// Cursor fills the cursor cell during the visible blink phase.
	Cursor color.RGBA
}

// Default returns the built-in dark palette.
func Default() Theme {
	th, err := FromHex("#101418", "#d8dee9", "#88c0d0")
	if err != nil {
		panic(err) // built-in hex strings are valid
	}
	return th
}

// FromHex builds a theme from background, foreground, and cursor hex
// strings ("#rrggbb"). The gutter color is derived by blending the
// foreground halfway toward the background.
func FromHex(bg, fg, cursor string) (Theme, error) {
	cbg, err := colorful.Hex(bg)
	if err != nil {
		return Theme{}, fmt.Errorf("background: %w", err)
	}
	cfg, err := colorful.Hex(fg)
	if err != nil {
		return Theme{}, fmt.Errorf("foreground: %w", err)
	}
	ccur, err := colorful.Hex(cursor)
	if err != nil {
		return Theme{}, fmt.Errorf("cursor: %w", err)
	}

	gutter := cfg.BlendRgb(cbg, 0.5)

	return Theme{
		Background: toRGBA(cbg),
		Foreground: toRGBA(cfg),
		Gutter:     toRGBA(gutter),
		Cursor:     toRGBA(ccur),
	}, nil
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
