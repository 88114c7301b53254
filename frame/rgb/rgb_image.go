// Package rgb implements a packed 24-bit RGB image without an alpha
// channel, three bytes per pixel.
package rgb

import (
	"image"
	"image/color"
)

const (
	byteSize    = 8
	solid       = 65535
	bytesPerPix = 3
)

// Color represents a color in the RGB model.
type Color struct {
	R, G, B byte
}

// RGBA returns the alpha-premultiplied red, green, blue, and alpha values for the color.
func (rgb Color) RGBA() (uint32, uint32, uint32, uint32) {
	r := uint32(rgb.R)
	r |= r << byteSize
	g := uint32(rgb.G)
	g |= g << byteSize
	b := uint32(rgb.B)
	b |= b << byteSize
	return r, g, b, solid
}

// Model is a color.Model that converts any color.Color to a Color.
type Model struct{}

// Convert converts a color.Color to a Color.
func (Model) Convert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{byte(r >> byteSize), byte(g >> byteSize), byte(b >> byteSize)}
}

// RGB is an in-memory 24-bit RGB image. It implements both image.Image and
// the Set method of draw.Image, so x/image scalers can write into it.
type RGB struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// New creates a zeroed RGB image covering the rectangle r.
func New(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]byte, bytesPerPix*r.Dx()*r.Dy()),
		Stride: r.Dx() * bytesPerPix,
		Rect:   r,
	}
}

// NewFromPix wraps an existing packed-RGB pixel buffer. The buffer must
// hold exactly 3*Dx*Dy bytes; nil is returned otherwise.
func NewFromPix(pix []byte, r image.Rectangle) *RGB {
	if len(pix) != bytesPerPix*r.Dx()*r.Dy() {
		return nil
	}
	return &RGB{
		Pix:    pix,
		Stride: r.Dx() * bytesPerPix,
		Rect:   r,
	}
}

// ColorModel returns the RGB color model.
func (*RGB) ColorModel() color.Model {
	return Model{}
}

// Bounds returns the rectangle of the image.
func (rgb *RGB) Bounds() image.Rectangle {
	return rgb.Rect
}

// PixOffset returns the index into Pix of the first byte of the pixel at (x, y).
func (rgb *RGB) PixOffset(x, y int) int {
	return (y-rgb.Rect.Min.Y)*rgb.Stride + (x-rgb.Rect.Min.X)*bytesPerPix
}

// Opaque reports whether the image is fully opaque. It always is.
func (*RGB) Opaque() bool {
	return true
}

// At returns the color of the pixel at (x, y).
func (rgb *RGB) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(rgb.Rect)) {
		return Color{}
	}
	i := rgb.PixOffset(x, y)
	s := rgb.Pix[i : i+3 : i+3]
	return Color{s[0], s[1], s[2]}
}

// Set sets the color of the pixel at (x, y).
func (rgb *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(rgb.Rect)) {
		return
	}
	i := rgb.PixOffset(x, y)

	c1, _ := rgb.ColorModel().Convert(c).(Color)

	s := rgb.Pix[i : i+3 : i+3]
	s[0] = c1.R
	s[1] = c1.G
	s[2] = c1.B
}

// Clone returns a deep copy of the image.
func (rgb *RGB) Clone() *RGB {
	newSlice := make([]byte, len(rgb.Pix))
	copy(newSlice, rgb.Pix)
	return &RGB{
		Pix:    newSlice,
		Stride: rgb.Stride,
		Rect:   rgb.Rect,
	}
}
