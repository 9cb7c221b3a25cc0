// Package image1bit provides a 1-bit-per-pixel image format in SSD1306 page
// layout.
//
// Pixels are packed vertically: each byte covers an 8-pixel-tall column
// slice, bit 0 on top, and the bytes of one 8-pixel strip ("page") are laid
// out left to right before the next page starts. This is the exact memory
// order the display controller consumes, so a full-frame write is a plain
// copy of Pix.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a 1-bit color, either On (lit pixel) or Off.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the bit to standard RGBA: On is white, Off is black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// String returns "On" or "Off".
func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit. Any color at or above 50% luminance
// maps to On.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bpp image in page layout: each byte is a vertical run
// of 8 pixels with the least significant bit on top.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, one byte per 1x8 column slice
	Stride int             // Bytes per page (= width in pixels)
	Rect   image.Rectangle // Image bounds; height must be a multiple of 8
}

// NewVerticalLSB creates a VerticalLSB image with the specified bounds. The
// height must be a multiple of 8.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y). It implements the
// image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, bit := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&(1<<bit) != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y). This is faster than Set() as it doesn't
// require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, bit := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= 1 << bit
	} else {
		p.Pix[offset] &^= 1 << bit
	}
}

// Page returns the byte slice backing one 8-pixel-tall strip, in the order
// the display consumes it. The slice aliases Pix.
func (p *VerticalLSB) Page(page int) []byte {
	off := page * p.Stride
	return p.Pix[off : off+p.Stride]
}

// Pages returns the number of 8-pixel-tall strips in the image.
func (p *VerticalLSB) Pages() int {
	return p.Rect.Dy() / 8
}

// pixOffset returns the byte offset and bit index for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (int, uint) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	return (y/8)*p.Stride + x, uint(y % 8)
}
