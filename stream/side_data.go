package stream

import (
	"github.com/ugparu/avcore"
	"github.com/ugparu/avcore/utils"
)

// SideData is one (type, payload) record attached to a stream. The payload
// is a read-only view into native-owned memory, valid only while the
// owning descriptor's native handle is alive.
type SideData struct {
	dataType avcore.SideDataType
	data     []byte
}

// Type returns the record type tag.
func (sd SideData) Type() avcore.SideDataType {
	return sd.dataType
}

// Data returns the borrowed payload. Callers must not modify it or retain
// it past the life of the native stream handle.
func (sd SideData) Data() []byte {
	return sd.data
}

// Copy materializes the payload into an owned buffer.
func (sd SideData) Copy() []byte {
	out := make([]byte, len(sd.data))
	copy(out, sd.data)
	return out
}

// SideDataIter walks a fixed-length snapshot of the stream side data.
// Records appended after creation are only visible to a new iterator; an
// exhausted iterator cannot be rewound.
type SideDataIter struct {
	native avcore.NativeStream
	index  int
	len    int
}

// Len returns the number of records remaining before exhaustion.
func (it *SideDataIter) Len() int {
	return it.len - it.index
}

// Next returns the next record, or ok=false once the iterator is
// exhausted.
func (it *SideDataIter) Next() (sd SideData, ok bool) {
	if it.index == it.len {
		return SideData{}, false
	}

	dataType, data := it.native.SideData(it.index)
	it.index++

	return SideData{dataType: dataType, data: data}, true
}

// SideData returns an iterator over the side-data records of the stream.
// The reported length is a snapshot of the native count at creation time.
func (s *Stream) SideData() *SideDataIter {
	return &SideDataIter{
		native: s.native,
		len:    s.native.SideDataCount(),
	}
}

// AddSideData copies data into a new native-owned record appended to the
// stream. A negative native status comes back as a NativeError carrying
// the code: appending is the one stream mutation callers are expected to
// retry or report per call rather than treat as fatal.
func (s *Stream) AddSideData(dataType avcore.SideDataType, data []byte) error {
	if ret := s.native.AddSideData(dataType, data); ret < 0 {
		return utils.NewNativeError("unable to add side data", ret)
	}
	return nil
}
