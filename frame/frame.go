// Package frame provides a concrete video frame carrier backed by a Go
// image, satisfying the avcore frame capability.
package frame

import (
	"fmt"
	"image"

	"github.com/ugparu/avcore"
)

// Video is one decoded video frame: pixel data, its pixel format and the
// time base its timing is expressed in.
type Video struct {
	img      image.Image
	format   avcore.PixelFormat
	timeBase avcore.TimeBase
}

// NewVideo wraps img as a frame of the given format and time base.
func NewVideo(img image.Image, format avcore.PixelFormat, tb avcore.TimeBase) *Video {
	return &Video{
		img:      img,
		format:   format,
		timeBase: tb,
	}
}

// Width returns the frame width in pixels.
func (f *Video) Width() int {
	return f.img.Bounds().Dx()
}

// Height returns the frame height in pixels.
func (f *Video) Height() int {
	return f.img.Bounds().Dy()
}

// PixelFormat returns the frame pixel format.
func (f *Video) PixelFormat() avcore.PixelFormat {
	return f.format
}

// TimeBase returns the time base the frame timing is expressed in.
func (f *Video) TimeBase() avcore.TimeBase {
	return f.timeBase
}

// Image exposes the backing image for engines that read Go images.
func (f *Video) Image() image.Image {
	return f.img
}

// String returns a short description of the frame for logging.
func (f *Video) String() string {
	if f == nil {
		return "EMPTY_FRAME"
	}
	return fmt.Sprintf("FRAME %v %dx%d", f.format, f.Width(), f.Height())
}
