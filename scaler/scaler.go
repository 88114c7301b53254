// Package scaler converts decoded video frames between pixel formats and
// spatial resolutions. A VideoScaler is configured through a Builder,
// bound to one fixed source contract and delegates the pixel arithmetic to
// an external conversion engine.
package scaler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ugparu/avcore"
	"github.com/ugparu/avcore/utils"
	"github.com/ugparu/avcore/utils/logger"
)

// Construction errors, one per named cause. Builder.Build reports the
// first violated check and never touches the engine on a validation
// failure.
var (
	ErrInvalidSourceFormat = errors.New("invalid source format")
	ErrInvalidTargetFormat = errors.New("invalid target format")
	ErrInvalidSourceWidth  = errors.New("invalid source width")
	ErrInvalidSourceHeight = errors.New("invalid source height")
	ErrInvalidTargetWidth  = errors.New("invalid target width")
	ErrInvalidTargetHeight = errors.New("invalid target height")
	ErrCreateScaler        = errors.New("unable to create a frame scaler")
)

// Mismatch errors returned by Scale before the engine is invoked.
var (
	ErrFrameWidthMismatch  = errors.New("frame width does not match")
	ErrFrameHeightMismatch = errors.New("frame height does not match")
	ErrFrameFormatMismatch = errors.New("frame pixel format does not match")
)

// Builder stages the configuration of a VideoScaler. No engine resource is
// allocated before Build; a half-configured scaler cannot exist.
type Builder struct {
	engine avcore.ConversionEngine

	sformat avcore.PixelFormat
	swidth  int
	sheight int

	tformat avcore.PixelFormat
	twidth  int
	theight int

	algorithm avcore.ScaleAlgorithm
}

// New creates a builder bound to the given conversion engine. The
// algorithm defaults to bicubic and the target pixel format to the source
// format.
func New(engine avcore.ConversionEngine) *Builder {
	return &Builder{
		engine:    engine,
		algorithm: avcore.ScaleBicubic,
	}
}

// SourcePixelFormat sets the pixel format every input frame must have.
func (b *Builder) SourcePixelFormat(format avcore.PixelFormat) *Builder {
	b.sformat = format
	return b
}

// SourceWidth sets the width every input frame must have.
func (b *Builder) SourceWidth(width int) *Builder {
	b.swidth = width
	return b
}

// SourceHeight sets the height every input frame must have.
func (b *Builder) SourceHeight(height int) *Builder {
	b.sheight = height
	return b
}

// TargetPixelFormat sets the output pixel format. The default is equal to
// the source format.
func (b *Builder) TargetPixelFormat(format avcore.PixelFormat) *Builder {
	b.tformat = format
	return b
}

// TargetWidth sets the output frame width.
func (b *Builder) TargetWidth(width int) *Builder {
	b.twidth = width
	return b
}

// TargetHeight sets the output frame height.
func (b *Builder) TargetHeight(height int) *Builder {
	b.theight = height
	return b
}

// Algorithm sets the scaling algorithm. The default is bicubic.
func (b *Builder) Algorithm(algorithm avcore.ScaleAlgorithm) *Builder {
	b.algorithm = algorithm
	return b
}

// Build validates the staged configuration and allocates the engine
// converter. Each violated precondition is a distinct named error. A nil
// converter from the engine maps to ErrCreateScaler — recoverable, since
// construction is commonly retried in a loop over alternative output
// configurations.
func (b *Builder) Build() (*VideoScaler, error) {
	tformat := b.tformat
	if tformat == avcore.PixelFormatNone {
		tformat = b.sformat
	}

	switch {
	case b.sformat == avcore.PixelFormatNone:
		return nil, ErrInvalidSourceFormat
	case tformat == avcore.PixelFormatNone:
		return nil, ErrInvalidTargetFormat
	case b.swidth < 1:
		return nil, ErrInvalidSourceWidth
	case b.sheight < 1:
		return nil, ErrInvalidSourceHeight
	case b.twidth < 1:
		return nil, ErrInvalidTargetWidth
	case b.theight < 1:
		return nil, ErrInvalidTargetHeight
	}

	if b.engine == nil {
		return nil, ErrCreateScaler
	}

	conv := b.engine.NewConverter(
		avcore.FrameSpec{Format: b.sformat, Width: b.swidth, Height: b.sheight},
		avcore.FrameSpec{Format: tformat, Width: b.twidth, Height: b.theight},
		b.algorithm,
	)
	if conv == nil {
		return nil, ErrCreateScaler
	}

	scl := &VideoScaler{
		conv:    conv,
		sformat: b.sformat,
		swidth:  b.swidth,
		sheight: b.sheight,
	}
	logger.Debugf(scl, "created -> %v %dx%d alg=%v", tformat, b.twidth, b.theight, b.algorithm)

	return scl, nil
}

// VideoScaler converts frames matching one fixed (format, width, height)
// source contract. It exclusively owns its engine converter and releases
// it exactly once through Close.
//
// Scale may be called concurrently only when the underlying engine
// converter supports it; this package adds no locking of its own.
type VideoScaler struct {
	conv      avcore.FrameConverter
	closeOnce sync.Once

	sformat avcore.PixelFormat
	swidth  int
	sheight int
}

// String returns a short description of the scaler for logging.
func (s *VideoScaler) String() string {
	if s == nil {
		return "EMPTY_SCALER"
	}
	return fmt.Sprintf("SCALER %v %dx%d", s.sformat, s.swidth, s.sheight)
}

// Scale converts a frame. The frame must match the source contract
// exactly; any mismatch is reported as a named error before the engine is
// touched, so callers get a precise diagnosis without a native call. The
// returned frame carries the input frame's time base verbatim — the
// scaler performs no temporal reasoning.
//
// Panics when the engine fails after all preconditions passed: such a
// failure is not part of normal control flow.
func (s *VideoScaler) Scale(frame avcore.VideoFrame) (avcore.VideoFrame, error) {
	if frame == nil {
		return nil, utils.NilFrameError{}
	}

	switch {
	case frame.Width() != s.swidth:
		return nil, ErrFrameWidthMismatch
	case frame.Height() != s.sheight:
		return nil, ErrFrameHeightMismatch
	case frame.PixelFormat() != s.sformat:
		return nil, ErrFrameFormatMismatch
	}

	res := s.conv.Convert(frame)
	if res == nil {
		panic("unable to scale a frame")
	}
	return res, nil
}

// Close releases the engine converter. Only the first call frees the
// resource; later calls are no-ops.
func (s *VideoScaler) Close() {
	s.closeOnce.Do(func() {
		s.conv.Free()
		logger.Debug(s, "closed")
	})
}
