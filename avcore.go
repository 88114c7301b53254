// Package avcore models elementary-stream metadata and validated video frame
// rescaling on top of opaque native handles. Decoding, muxing and the pixel
// conversion arithmetic itself stay with external collaborators; this package
// defines the capability surface those collaborators must expose.
package avcore

// MetadataFlags controls how native metadata entries are matched during
// sequential enumeration.
type MetadataFlags int

// Metadata enumeration modes.
const (
	MetadataMatchCase    MetadataFlags = 0x1 // Match keys case-sensitively.
	MetadataIgnoreSuffix MetadataFlags = 0x2 // Merge keys differing only by a trailing suffix (e.g. "title-eng").
)

// MetadataEntry is a single key/value pair held by a native metadata
// dictionary. Key and value arrive from the collaborator verbatim and are
// not guaranteed to be valid UTF-8.
type MetadataEntry struct {
	Key   string
	Value string
}

// CodecParameters is an opaque codec configuration allocated by a native
// collaborator. The core passes it through without interpreting it.
type CodecParameters interface{}

// NativeStream is the capability surface a container-reading collaborator
// exposes for one elementary stream. The collaborator retains ownership of
// the underlying resource; a stream descriptor is only a view of it.
//
// Read-only calls may be issued concurrently if the collaborator allows it;
// mutations must be serialized by the caller.
type NativeStream interface {
	TimeBase() (num, den uint32) // Returns the stream time base as a rational.
	SetTimeBase(num, den uint32) // Hints the desired time base to the collaborator.
	StartTime() int64            // Returns the raw start pts in time-base ticks.
	Duration() int64             // Returns the raw duration in time-base ticks.
	FrameCount() int64           // Returns the raw frame count; non-positive means unknown.
	RealFrameRate() float64      // Returns the real frame rate; non-positive means unknown.

	CodecParameters() CodecParameters // Allocates codec parameters; nil signals allocation failure.

	ID() int32    // Returns the container-specific stream id.
	SetID(int32)  // Sets the container-specific stream id.

	SetMetadata(key, value string) int                                                // Stores an entry; a negative status signals allocation failure.
	MetadataEntry(key string, prev *MetadataEntry, flags MetadataFlags) *MetadataEntry // Sequential dictionary walk; nil ends the enumeration.

	SideDataCount() int                          // Returns the number of side-data records.
	SideData(index int) (SideDataType, []byte)   // Returns the record at index; the bytes are borrowed from native memory.
	AddSideData(SideDataType, []byte) int        // Copies and appends a record; a negative status is a native error code.
}

// VideoFrame is the capability surface a decoding collaborator exposes for
// one decoded frame handle.
type VideoFrame interface {
	Width() int               // Returns the frame width in pixels.
	Height() int              // Returns the frame height in pixels.
	PixelFormat() PixelFormat // Returns the frame pixel format.
	TimeBase() TimeBase       // Returns the time base the frame timing is expressed in.
}

// FrameSpec fixes one side of a frame conversion: a pixel format and a
// spatial resolution.
type FrameSpec struct {
	Format PixelFormat
	Width  int
	Height int
}

// ConversionEngine allocates reusable frame converters. It is the external
// collaborator that owns all pixel-format and scaling arithmetic.
type ConversionEngine interface {
	// NewConverter allocates a converter for the given mapping, or returns
	// nil when the engine cannot service it.
	NewConverter(src, dst FrameSpec, algorithm ScaleAlgorithm) FrameConverter
}

// FrameConverter is one allocated conversion resource. It must be freed
// exactly once by its owner.
type FrameConverter interface {
	Convert(src VideoFrame) VideoFrame // Produces a new frame carrying the source time base, or nil on failure.
	Free()                             // Releases the native conversion resource.
}
