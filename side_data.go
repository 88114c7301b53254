package avcore

// SideDataType tags the content of an auxiliary binary record attached to a
// stream, distinct from the primary encoded payload. The tags are opaque to
// this package and interpreted only by native collaborators.
type SideDataType int32

// Common side-data record types.
const (
	SideDataDisplayMatrix = SideDataType(iota + 1) // 3x3 transformation matrix (rotation/flip).
	SideDataStereo3D                               // Stereoscopic packing information.
	SideDataSphericalMapping                       // Spherical video projection.
	SideDataMasteringDisplayMetadata               // HDR mastering display primaries.
	SideDataContentLightLevel                      // HDR content light levels.
	SideDataReplayGain                             // Replay gain volume normalization.
	SideDataAudioServiceType                       // Broadcast audio service type.
	SideDataSkipSamples                            // Leading/trailing sample skip counts.
)

// String returns the human-readable name of the side-data type.
func (sdt SideDataType) String() string {
	switch sdt {
	case SideDataDisplayMatrix:
		return "DISPLAY_MATRIX"
	case SideDataStereo3D:
		return "STEREO_3D"
	case SideDataSphericalMapping:
		return "SPHERICAL_MAPPING"
	case SideDataMasteringDisplayMetadata:
		return "MASTERING_DISPLAY_METADATA"
	case SideDataContentLightLevel:
		return "CONTENT_LIGHT_LEVEL"
	case SideDataReplayGain:
		return "REPLAY_GAIN"
	case SideDataAudioServiceType:
		return "AUDIO_SERVICE_TYPE"
	case SideDataSkipSamples:
		return "SKIP_SAMPLES"
	}
	return "UNKNOWN"
}
