package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap is a rectangular RGBA pixel buffer the frame rasterizer writes
// into.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewPixmap creates a pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-range coordinates
// report zero.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// WritePNG writes the pixmap to path, upscaled by the integer factor scale
// using nearest-neighbor so the glyph pixels stay sharp. A scale below 1 is
// treated as 1.
func (p *Pixmap) WritePNG(path string, scale int) error {
	if scale < 1 {
		scale = 1
	}

	img := p.ToImage()
	out := image.Image(img)
	if scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, p.width*scale, p.height*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
