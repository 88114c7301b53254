package frame

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/avcore"
)

func TestNewVideo(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	tb := avcore.NewTimeBase(1, 90000)

	frm := NewVideo(img, avcore.PixelFormatRGBA, tb)
	require.Equal(t, 640, frm.Width())
	require.Equal(t, 480, frm.Height())
	require.Equal(t, avcore.PixelFormatRGBA, frm.PixelFormat())
	require.Equal(t, tb, frm.TimeBase())
	require.Same(t, img, frm.Image())
}

func TestVideo_OffsetBounds(t *testing.T) {
	t.Parallel()

	// Width and height come from the bounds size, not the max corner.
	img := image.NewGray(image.Rect(10, 20, 110, 70))

	frm := NewVideo(img, avcore.PixelFormatGray8, avcore.NewTimeBase(1, 25))
	require.Equal(t, 100, frm.Width())
	require.Equal(t, 50, frm.Height())
}

func TestVideo_String(t *testing.T) {
	t.Parallel()

	frm := NewVideo(image.NewRGBA(image.Rect(0, 0, 4, 2)), avcore.PixelFormatRGBA, avcore.NewTimeBase(1, 1))
	require.Equal(t, "FRAME RGBA 4x2", frm.String())
}
