// Package stream models the metadata of one elementary stream inside a
// container: timing facts, codec parameters, key/value tags and binary
// side-data records. A Stream is a view over a native handle owned by the
// container collaborator; it never destroys the handle.
package stream

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ugparu/avcore"
	"github.com/ugparu/avcore/utils"
	"github.com/ugparu/avcore/utils/logger"
)

// Stream describes one elementary stream. It caches the stream time base;
// the cache always equals the last value read from or written to the
// native handle.
//
// Read-only methods may be called concurrently when the wrapped native
// handle supports it. Mutations are not synchronized internally; callers
// exposing a Stream across goroutines must serialize them.
type Stream struct {
	native   avcore.NativeStream
	timeBase avcore.TimeBase
}

// New wraps a native stream handle, reading its time base once.
func New(native avcore.NativeStream) *Stream {
	num, den := native.TimeBase()

	str := &Stream{
		native:   native,
		timeBase: avcore.NewTimeBase(num, den),
	}
	logger.Tracef(str, "wrapped native stream tb=%v", str.timeBase)

	return str
}

// String returns a short description of the stream for logging.
func (s *Stream) String() string {
	if s == nil {
		return "EMPTY_STREAM"
	}
	return fmt.Sprintf("STREAM id=%d", s.native.ID())
}

// TimeBase returns the cached stream time base without touching the native
// handle.
func (s *Stream) TimeBase() avcore.TimeBase {
	return s.timeBase
}

// SetTimeBase hints the desired time base to the muxer/demuxer behind the
// native handle. The collaborator may or may not honor the hint; the
// cached value is updated unconditionally.
func (s *Stream) SetTimeBase(tb avcore.TimeBase) {
	s.timeBase = tb
	s.native.SetTimeBase(tb.Num(), tb.Den())
	logger.Debugf(s, "time base hint %v", tb)
}

// StartTime returns the pts of the first frame of the stream in
// presentation order. Non-positive raw values map to the null timestamp.
func (s *Stream) StartTime() avcore.Timestamp {
	return s.timestampFromRaw(s.native.StartTime())
}

// Duration returns the duration of the stream. Non-positive raw values map
// to the null timestamp.
func (s *Stream) Duration() avcore.Timestamp {
	return s.timestampFromRaw(s.native.Duration())
}

func (s *Stream) timestampFromRaw(raw int64) avcore.Timestamp {
	if raw <= 0 {
		return avcore.NullTimestamp(s.timeBase)
	}
	return avcore.NewTimestamp(raw, s.timeBase)
}

// FrameCount returns the number of frames in the stream. Depending on the
// stream type and the demuxer the count may cover only keyframes; that
// ambiguity comes from the container layer and is preserved here. False
// means the count is unknown — a non-positive raw signal cannot tell "zero
// frames" apart from "not reported".
func (s *Stream) FrameCount() (uint64, bool) {
	count := s.native.FrameCount()
	if count <= 0 {
		return 0, false
	}
	return uint64(count), true
}

// RealFrameRate returns the real base frame rate of the stream, or false
// when the demuxer cannot report one.
func (s *Stream) RealFrameRate() (float64, bool) {
	fps := s.native.RealFrameRate()
	if fps <= 0.0 {
		return 0, false
	}
	return fps, true
}

// CodecParameters fetches the opaque codec parameters of the stream. Each
// call triggers a native allocation.
//
// Panics when the allocation fails: failures on this path signal resource
// exhaustion, not a condition callers can branch on.
func (s *Stream) CodecParameters() avcore.CodecParameters {
	par := s.native.CodecParameters()
	if par == nil {
		panic("unable to allocate codec parameters")
	}
	return par
}

// ID returns the container-specific stream id.
func (s *Stream) ID() int32 {
	return s.native.ID()
}

// SetID sets the container-specific stream id.
func (s *Stream) SetID(id int32) {
	s.native.SetID(id)
}

// SetMetadata stores a metadata entry on the stream. The value is rendered
// with fmt.Sprint. Neither key nor rendered value may contain a NUL byte;
// violations are reported as typed validation errors before any native
// call.
//
// Panics when the native side fails to allocate the entry.
func (s *Stream) SetMetadata(key string, value any) error {
	if strings.ContainsRune(key, 0) {
		return utils.InvalidMetadataKeyError{}
	}
	text := fmt.Sprint(value)
	if strings.ContainsRune(text, 0) {
		return utils.InvalidMetadataValueError{}
	}

	if ret := s.native.SetMetadata(key, text); ret < 0 {
		panic("unable to allocate metadata")
	}
	return nil
}

// Metadata returns the value of the first metadata entry matching key.
// Found is false when no entry matches; duplicate keys beyond the first
// are not visited. Non-UTF-8 native text fails the read instead of being
// substituted. The value is copied out of the native dictionary, so it
// stays valid after the descriptor is gone.
func (s *Stream) Metadata(key string) (value string, found bool, err error) {
	if strings.ContainsRune(key, 0) {
		return "", false, utils.InvalidMetadataKeyError{}
	}

	entry := s.native.MetadataEntry(key, nil, 0)
	if entry == nil {
		return "", false, nil
	}
	if !utf8.ValidString(entry.Value) {
		return "", false, utils.MetadataEncodingError{Key: entry.Key}
	}
	return strings.Clone(entry.Value), true, nil
}

// MetadataDict collects every metadata entry using the suffix-ignoring
// enumeration mode, so entries whose native key carries a "-xx" language
// suffix merge under the base key. Later entries silently overwrite
// earlier ones; the order is the native iteration order, which the
// collaborator defines.
func (s *Stream) MetadataDict() (map[string]string, error) {
	res := make(map[string]string)

	var prev *avcore.MetadataEntry
	for {
		prev = s.native.MetadataEntry("", prev, avcore.MetadataIgnoreSuffix)
		if prev == nil {
			return res, nil
		}
		if !utf8.ValidString(prev.Key) || !utf8.ValidString(prev.Value) {
			return nil, utils.MetadataEncodingError{Key: prev.Key}
		}
		res[strings.Clone(prev.Key)] = strings.Clone(prev.Value)
	}
}
