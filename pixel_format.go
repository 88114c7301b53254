package avcore

// PixelFormat identifies the memory layout of a decoded video frame. The
// zero value means "no format selected".
type PixelFormat int32

// Supported pixel formats.
const (
	PixelFormatNone    = PixelFormat(iota) // No format selected.
	PixelFormatYUV420P                     // Planar YUV 4:2:0.
	PixelFormatNV12                        // Semi-planar YUV 4:2:0.
	PixelFormatRGB24                       // Packed 8-bit RGB.
	PixelFormatBGR24                       // Packed 8-bit BGR.
	PixelFormatRGBA                        // Packed 8-bit RGBA, premultiplied alpha.
	PixelFormatNRGBA                       // Packed 8-bit RGBA, straight alpha.
	PixelFormatGray8                       // 8-bit grayscale.
)

// String returns the human-readable name of the pixel format.
func (pf PixelFormat) String() string {
	switch pf {
	case PixelFormatYUV420P:
		return "YUV420P"
	case PixelFormatNV12:
		return "NV12"
	case PixelFormatRGB24:
		return "RGB24"
	case PixelFormatBGR24:
		return "BGR24"
	case PixelFormatRGBA:
		return "RGBA"
	case PixelFormatNRGBA:
		return "NRGBA"
	case PixelFormatGray8:
		return "GRAY8"
	case PixelFormatNone:
		return "NONE"
	}
	return "UNKNOWN"
}
