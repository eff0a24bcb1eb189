// Package font provides the fixed bitmap font atlas consumed by the render
// stage.
//
// The atlas covers printable ASCII 32..126 with 5x7 one-bit glyphs stored
// row-major: seven rows per glyph, the low five bits of each row holding
// pixels left to right with the leftmost pixel in bit 4. The atlas is
// immutable after package initialization.
package font

// Glyph cell dimensions in pixels.
const (
	GlyphWidth  = 5
	GlyphHeight = 7
)

// Printable character range covered by the atlas.
const (
	First = 32
	Last  = 126
)

// Atlas maps printable characters to their glyph bitmaps.
type Atlas struct {
	rows [Last - First + 1][GlyphHeight]uint8
}

var builtin Atlas

// Builtin returns the compiled-in 5x7 atlas.
func Builtin() *Atlas {
	return &builtin
}

// Covers returns true if the atlas has a glyph for ch.
func (a *Atlas) Covers(ch rune) bool {
	return ch >= First && ch <= Last
}

// Rows returns the seven row bitmaps for ch.
// Returns false for characters outside the printable range.
func (a *Atlas) Rows(ch rune) ([GlyphHeight]uint8, bool) {
	if !a.Covers(ch) {
		return [GlyphHeight]uint8{}, false
	}
	return a.rows[ch-First], true
}

// Bit reports whether the glyph pixel at (x, y) is set for ch.
// Coordinates outside the glyph cell and characters outside the printable
// range report false.
func (a *Atlas) Bit(ch rune, x, y int) bool {
	if !a.Covers(ch) || x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	row := a.rows[ch-First][y]
	return row&(1<<(GlyphWidth-1-x)) != 0
}

func init() {
	if len(glyphArt) != Last-First+1 {
		panic("font: glyph table does not cover the printable range")
	}
	for i, art := range glyphArt {
		for y, line := range art {
			if len(line) != GlyphWidth {
				panic("font: malformed glyph row")
			}
			var bits uint8
			for x := 0; x < GlyphWidth; x++ {
				if line[x] == '#' {
					bits |= 1 << (GlyphWidth - 1 - x)
				}
			}
			builtin.rows[i][y] = bits
		}
	}
}
