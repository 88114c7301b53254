package avcore

// ScaleAlgorithm selects the resampling strategy a conversion engine uses.
// The values are opaque strategy tags passed through to the engine; this
// package assigns them no numeric semantics beyond selecting one.
type ScaleAlgorithm int32

// Available scaling algorithms.
const (
	ScaleFastBilinear  = ScaleAlgorithm(0x1)
	ScaleBilinear      = ScaleAlgorithm(0x2)
	ScaleBicubic       = ScaleAlgorithm(0x4)
	ScaleExperimental  = ScaleAlgorithm(0x8)
	ScalePoint         = ScaleAlgorithm(0x10)
	ScaleArea          = ScaleAlgorithm(0x20)
	ScaleBicubicLinear = ScaleAlgorithm(0x40)
	ScaleGauss         = ScaleAlgorithm(0x80)
	ScaleSinc          = ScaleAlgorithm(0x100)
	ScaleLanczos       = ScaleAlgorithm(0x200)
	ScaleSpline        = ScaleAlgorithm(0x400)
)

// String returns the human-readable name of the algorithm.
func (alg ScaleAlgorithm) String() string {
	switch alg {
	case ScaleFastBilinear:
		return "FAST_BILINEAR"
	case ScaleBilinear:
		return "BILINEAR"
	case ScaleBicubic:
		return "BICUBIC"
	case ScaleExperimental:
		return "EXPERIMENTAL"
	case ScalePoint:
		return "POINT"
	case ScaleArea:
		return "AREA"
	case ScaleBicubicLinear:
		return "BICUBIC_LINEAR"
	case ScaleGauss:
		return "GAUSS"
	case ScaleSinc:
		return "SINC"
	case ScaleLanczos:
		return "LANCZOS"
	case ScaleSpline:
		return "SPLINE"
	}
	return "UNKNOWN"
}
