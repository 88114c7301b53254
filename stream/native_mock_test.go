package stream

import (
	"strings"

	"github.com/ugparu/avcore"
)

// nativeMock emulates a container collaborator in memory, mirroring the
// status-code contract of the real capability surface.
type nativeMock struct {
	num, den  uint32
	startTime int64
	duration  int64
	nbFrames  int64
	frameRate float64
	id        int32

	codecPar     avcore.CodecParameters
	failCodecPar bool

	entries   []avcore.MetadataEntry
	setStatus int

	records      []sideRecord
	appendStatus int
}

type sideRecord struct {
	dataType avcore.SideDataType
	data     []byte
}

func newNativeMock() *nativeMock {
	return &nativeMock{
		num:      1,
		den:      1000,
		codecPar: "opaque-codec-parameters",
	}
}

func (m *nativeMock) TimeBase() (uint32, uint32) {
	return m.num, m.den
}

func (m *nativeMock) SetTimeBase(num, den uint32) {
	m.num, m.den = num, den
}

func (m *nativeMock) StartTime() int64 {
	return m.startTime
}

func (m *nativeMock) Duration() int64 {
	return m.duration
}

func (m *nativeMock) FrameCount() int64 {
	return m.nbFrames
}

func (m *nativeMock) RealFrameRate() float64 {
	return m.frameRate
}

func (m *nativeMock) CodecParameters() avcore.CodecParameters {
	if m.failCodecPar {
		return nil
	}
	return m.codecPar
}

func (m *nativeMock) ID() int32 {
	return m.id
}

func (m *nativeMock) SetID(id int32) {
	m.id = id
}

func (m *nativeMock) SetMetadata(key, value string) int {
	if m.setStatus < 0 {
		return m.setStatus
	}
	for i := range m.entries {
		if m.entries[i].Key == key {
			m.entries[i].Value = value
			return 0
		}
	}
	m.entries = append(m.entries, avcore.MetadataEntry{Key: key, Value: value})
	return 0
}

func (m *nativeMock) MetadataEntry(key string, prev *avcore.MetadataEntry, flags avcore.MetadataFlags) *avcore.MetadataEntry {
	start := 0
	if prev != nil {
		for i := range m.entries {
			if &m.entries[i] == prev {
				start = i + 1
				break
			}
		}
	}
	for i := start; i < len(m.entries); i++ {
		if matchKey(m.entries[i].Key, key, flags) {
			return &m.entries[i]
		}
	}
	return nil
}

func matchKey(entryKey, key string, flags avcore.MetadataFlags) bool {
	if flags&avcore.MetadataIgnoreSuffix != 0 {
		return strings.HasPrefix(entryKey, key)
	}
	return entryKey == key
}

func (m *nativeMock) SideDataCount() int {
	return len(m.records)
}

func (m *nativeMock) SideData(index int) (avcore.SideDataType, []byte) {
	rec := m.records[index]
	return rec.dataType, rec.data
}

func (m *nativeMock) AddSideData(dataType avcore.SideDataType, data []byte) int {
	if m.appendStatus < 0 {
		return m.appendStatus
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	m.records = append(m.records, sideRecord{dataType: dataType, data: owned})
	return 0
}
