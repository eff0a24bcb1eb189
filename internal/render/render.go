// Package render implements the read-only render stage.
//
// The stage maps a pixel coordinate plus a published state snapshot and a
// text view to a single color. It never mutates shared state; the text
// buffer is reachable only through the read-only textbuf.View interface.
// Line lookups duplicate the kernel's linear-scan helpers by design — the
// two stages share no mutable intermediate structures.
//
// Screen layout: a line-number gutter on the left in the gutter color, then
// the text area. The cursor cell renders solid in the cursor color during
// the visible blink phase. Every out-of-range coordinate class degrades to
// the background color.
package render

import (
	"image/color"
	"strconv"

	"github.com/pxlos/pixedit/internal/render/font"
	"github.com/pxlos/pixedit/internal/state"
	"github.com/pxlos/pixedit/internal/textbuf"
	"github.com/pxlos/pixedit/internal/theme"
)

// Metrics fixes the render geometry. One canonical set of constants,
// normally taken from configuration.
type Metrics struct {
	// CellWidth and CellHeight are the character cell size in pixels.
	CellWidth  int
	CellHeight int

	// GutterMinWidth is the minimum gutter width in cells, including the
	// separator column.
	GutterMinWidth int

	// BlinkPeriod is the number of frames between cursor visibility
	// toggles.
	BlinkPeriod int
}

// DefaultMetrics returns the canonical geometry: 5x7 glyphs in 6x9 cells,
// a 4-cell minimum gutter, and a 30-frame blink period.
func DefaultMetrics() Metrics {
	return Metrics{
		CellWidth:      6,
		CellHeight:     9,
		GutterMinWidth: 4,
		BlinkPeriod:    30,
	}
}

// Renderer rasterizes editor state. It holds only immutable inputs and is
// safe to share.
type Renderer struct {
	atlas   *font.Atlas
	palette theme.Theme
	m       Metrics
}

// New creates a renderer. A nil atlas uses the built-in font.
func New(atlas *font.Atlas, palette theme.Theme, m Metrics) *Renderer {
	if atlas == nil {
		atlas = font.Builtin()
	}
	return &Renderer{atlas: atlas, palette: palette, m: m}
}

// Metrics returns the renderer's geometry.
func (r *Renderer) Metrics() Metrics {
	return r.m
}

// GutterWidth returns the gutter width in cells for the given line count:
// enough for the largest line number plus a separator column, never below
// the configured minimum.
func (r *Renderer) GutterWidth(lineCount int) int {
	digits := 1
	for n := lineCount; n >= 10; n /= 10 {
		digits++
	}
	if w := digits + 1; w > r.m.GutterMinWidth {
		return w
	}
	return r.m.GutterMinWidth
}

// TextArea returns the text area size in character cells for a target of
// the given pixel dimensions, after subtracting the gutter.
func (r *Renderer) TextArea(pixelWidth, pixelHeight, lineCount int) (rows, cols int) {
	rows = pixelHeight / r.m.CellHeight
	cols = pixelWidth/r.m.CellWidth - r.GutterWidth(lineCount)
	if cols < 0 {
		cols = 0
	}
	return rows, cols
}

// blinkVisible reports whether the cursor renders during this frame.
func (r *Renderer) blinkVisible(frameCount uint64) bool {
	return (frameCount/uint64(r.m.BlinkPeriod))%2 == 1
}

// cell is the resolved content of one character cell.
type cell struct {
	ch    rune       // glyph to sample, 0 for none
	fg    color.RGBA // glyph color
	solid bool       // fill the whole cell with fg (cursor)
}

// classify resolves the content of the character cell at (col, row) in
// screen cell coordinates.
func (r *Renderer) classify(snap state.Snapshot, text textbuf.View, col, row int) cell {
	gutter := r.GutterWidth(snap.LineCount)
	bufLine := row + snap.ScrollLine

	if col < gutter {
		return r.gutterCell(snap, col, gutter, bufLine)
	}

	textCol := col - gutter + snap.ScrollCol

	if bufLine == snap.CursorLine && textCol == snap.CursorCol &&
		r.blinkVisible(snap.FrameCount) {
		return cell{fg: r.palette.Cursor, solid: true}
	}

	if bufLine >= snap.LineCount || textCol < 0 {
		return cell{}
	}
	if textCol >= text.LineLen(bufLine) {
		return cell{}
	}
	ch, ok := text.At(text.LineStart(bufLine) + textCol)
	if !ok || ch == textbuf.Newline {
		return cell{}
	}
	return cell{ch: ch, fg: r.palette.Foreground}
}

// gutterCell renders a right-aligned decimal line number followed by a
// blank separator column.
func (r *Renderer) gutterCell(snap state.Snapshot, col, gutter, bufLine int) cell {
	if bufLine >= snap.LineCount {
		return cell{}
	}
	number := strconv.Itoa(bufLine + 1)
	field := gutter - 1 // last gutter column is the separator
	idx := col - (field - len(number))
	if idx < 0 || idx >= len(number) {
		return cell{}
	}
	return cell{ch: rune(number[idx]), fg: r.palette.Gutter}
}

// PixelAt returns the color of the pixel at (x, y). Pure: equal inputs
// always produce equal colors.
func (r *Renderer) PixelAt(snap state.Snapshot, text textbuf.View, x, y int) color.RGBA {
	if x < 0 || y < 0 {
		return r.palette.Background
	}

	c := r.classify(snap, text, x/r.m.CellWidth, y/r.m.CellHeight)
	if c.solid {
		return c.fg
	}
	if c.ch == 0 {
		return r.palette.Background
	}
	if r.atlas.Bit(c.ch, x%r.m.CellWidth, y%r.m.CellHeight) {
		return c.fg
	}
	return r.palette.Background
}

// Frame rasterizes the full target pixmap. Cell content is resolved once
// per cell rather than once per pixel; the output is identical to calling
// PixelAt for every coordinate.
func (r *Renderer) Frame(snap state.Snapshot, text textbuf.View, pm *Pixmap) {
	pm.Clear(r.palette.Background)

	rows := (pm.Height() + r.m.CellHeight - 1) / r.m.CellHeight
	cols := (pm.Width() + r.m.CellWidth - 1) / r.m.CellWidth

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := r.classify(snap, text, col, row)
			if c.ch == 0 && !c.solid {
				continue
			}
			r.blitCell(pm, col, row, c)
		}
	}
}

// blitCell draws one resolved cell into the pixmap.
func (r *Renderer) blitCell(pm *Pixmap, col, row int, c cell) {
	x0 := col * r.m.CellWidth
	y0 := row * r.m.CellHeight

	for dy := 0; dy < r.m.CellHeight; dy++ {
		for dx := 0; dx < r.m.CellWidth; dx++ {
			if c.solid || r.atlas.Bit(c.ch, dx, dy) {
				pm.SetPixel(x0+dx, y0+dy, c.fg)
			}
		}
	}
}
