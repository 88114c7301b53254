// Package ximage implements the avcore conversion-engine capability in
// pure Go on top of golang.org/x/image/draw. It serves frames that expose
// their pixels as a Go image; mappings it cannot service are refused at
// allocation time by returning a nil converter.
package ximage

import (
	"image"

	"github.com/ugparu/avcore"
	"github.com/ugparu/avcore/frame"
	"github.com/ugparu/avcore/frame/rgb"
	"github.com/ugparu/avcore/utils/logger"
	"golang.org/x/image/draw"
)

// Engine allocates pure-Go frame converters.
type Engine struct {
}

// New creates a conversion engine.
func New() *Engine {
	return &Engine{}
}

// String returns the engine name for logging.
func (*Engine) String() string {
	return "XIMAGE_ENGINE"
}

// imageProvider is the extra capability a frame must expose for this
// engine to read its pixels.
type imageProvider interface {
	Image() image.Image
}

// NewConverter returns a converter for the requested mapping, or nil when
// the engine cannot service it.
func (e *Engine) NewConverter(src, dst avcore.FrameSpec, algorithm avcore.ScaleAlgorithm) avcore.FrameConverter {
	if src.Width < 1 || src.Height < 1 || dst.Width < 1 || dst.Height < 1 {
		return nil
	}
	if !sourceSupported(src.Format) || !targetSupported(dst.Format) {
		logger.Debugf(e, "refusing mapping %v -> %v", src.Format, dst.Format)
		return nil
	}

	return &converter{
		scaler: kernelFor(algorithm),
		dst:    dst,
	}
}

func sourceSupported(format avcore.PixelFormat) bool {
	switch format {
	case avcore.PixelFormatYUV420P,
		avcore.PixelFormatRGB24,
		avcore.PixelFormatRGBA,
		avcore.PixelFormatNRGBA,
		avcore.PixelFormatGray8:
		return true
	default:
		return false
	}
}

func targetSupported(format avcore.PixelFormat) bool {
	switch format {
	case avcore.PixelFormatRGB24,
		avcore.PixelFormatRGBA,
		avcore.PixelFormatNRGBA,
		avcore.PixelFormatGray8:
		return true
	default:
		return false
	}
}

// kernelFor maps the opaque algorithm tags onto the four x/image kernels.
// Tags without an exact counterpart use the closest kernel in quality.
func kernelFor(algorithm avcore.ScaleAlgorithm) draw.Scaler {
	switch algorithm {
	case avcore.ScalePoint:
		return draw.NearestNeighbor
	case avcore.ScaleFastBilinear:
		return draw.ApproxBiLinear
	case avcore.ScaleBilinear, avcore.ScaleArea:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

type converter struct {
	scaler draw.Scaler
	dst    avcore.FrameSpec
}

// Convert scales src into a newly allocated frame carrying the source
// frame's time base. Returns nil when the frame does not expose its
// pixels.
func (c *converter) Convert(src avcore.VideoFrame) avcore.VideoFrame {
	provider, ok := src.(imageProvider)
	if !ok {
		return nil
	}
	srcImg := provider.Image()
	if srcImg == nil {
		return nil
	}

	dstImg := newTarget(c.dst)
	if dstImg == nil {
		return nil
	}

	c.scaler.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)

	return frame.NewVideo(dstImg, c.dst.Format, src.TimeBase())
}

func newTarget(spec avcore.FrameSpec) draw.Image {
	r := image.Rect(0, 0, spec.Width, spec.Height)
	switch spec.Format {
	case avcore.PixelFormatRGB24:
		return rgb.New(r)
	case avcore.PixelFormatRGBA:
		return image.NewRGBA(r)
	case avcore.PixelFormatNRGBA:
		return image.NewNRGBA(r)
	case avcore.PixelFormatGray8:
		return image.NewGray(r)
	default:
		return nil
	}
}

// Free releases nothing: the converter holds no native resources. It
// exists to satisfy the single-owner release contract.
func (*converter) Free() {
}
