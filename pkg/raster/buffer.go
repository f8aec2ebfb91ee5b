package raster

import (
	"image"
	"image/color"
)

// Buffer is a width x height grid of 8-bit RGB triples, row-major with the
// origin at the top left. It satisfies image.Image so standard encoders
// accept it directly.
type Buffer struct {
	Width, Height int
	Pix           []uint8 // len == 3*Width*Height
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

func (b *Buffer) offset(x, y int) int {
	return 3 * (y*b.Width + x)
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.Width * b.Height
}

// RGB returns the channel bytes at (x, y).
func (b *Buffer) RGB(x, y int) (r, g, bl uint8) {
	i := b.offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set stores the channel bytes at (x, y).
func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	i := b.offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

// Row returns the Pix slice backing row y.
func (b *Buffer) Row(y int) []uint8 {
	i := b.offset(0, y)
	return b.Pix[i : i+3*b.Width]
}

func (b *Buffer) ColorModel() color.Model { return color.RGBAModel }
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

func (b *Buffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	r, g, bl := b.RGB(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// Equal reports whether two buffers have identical size and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Width != other.Width || b.Height != other.Height || len(b.Pix) != len(other.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
