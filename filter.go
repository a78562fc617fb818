package minirender

import "fmt"

// FilterOpKind identifies one post-processing color transform.
type FilterOpKind uint8

// Filter op kinds. The zero value is deliberately invalid so a
// zero-initialized FilterOp cannot slip into a chain unnoticed.
const (
	// OpInvert computes 1 - c per component.
	OpInvert FilterOpKind = iota + 1

	// OpGrayscale replaces the color with its channel average.
	OpGrayscale

	// OpSepia applies the classic sepia 3x3 color matrix.
	OpSepia

	// OpBrightness adds a constant offset to every component.
	OpBrightness

	// OpContrast scales components around the 0.5 pivot.
	OpContrast

	// OpSaturation blends between the grayscale average and the
	// original color.
	OpSaturation

	// OpTonemap applies the ACES curve (see TonemapACES).
	OpTonemap

	// OpGamma applies the 1/2.2 display encode (see LinearToGamma).
	OpGamma

	opKindEnd // sentinel for validation
)

// String returns a human-readable name for the op kind.
func (k FilterOpKind) String() string {
	switch k {
	case OpInvert:
		return "Invert"
	case OpGrayscale:
		return "Grayscale"
	case OpSepia:
		return "Sepia"
	case OpBrightness:
		return "Brightness"
	case OpContrast:
		return "Contrast"
	case OpSaturation:
		return "Saturation"
	case OpTonemap:
		return "Tonemap"
	case OpGamma:
		return "Gamma"
	default:
		return "Unknown"
	}
}

// FilterOp is one element of a filter chain: an op kind plus its scalar
// parameter where the kind takes one. Build ops with the constructor
// functions; a hand-rolled FilterOp with an unknown kind is rejected at
// chain construction.
type FilterOp struct {
	kind  FilterOpKind
	value float32
}

// Kind returns the op kind.
func (op FilterOp) Kind() FilterOpKind { return op.kind }

// Value returns the scalar parameter for parameterized ops
// (brightness, contrast, saturation); zero otherwise.
func (op FilterOp) Value() float32 { return op.value }

// Invert returns an op computing 1 - c per component.
func Invert() FilterOp { return FilterOp{kind: OpInvert} }

// Grayscale returns an op replacing the color with the average
// (r+g+b)/3 in every component.
func Grayscale() FilterOp { return FilterOp{kind: OpGrayscale} }

// Sepia returns an op applying the fixed sepia color matrix.
func Sepia() FilterOp { return FilterOp{kind: OpSepia} }

// Brightness returns an op adding v to every component.
func Brightness(v float32) FilterOp { return FilterOp{kind: OpBrightness, value: v} }

// Contrast returns an op computing (c - 0.5)*v + 0.5 per component.
func Contrast(v float32) FilterOp { return FilterOp{kind: OpContrast, value: v} }

// Saturation returns an op computing avg + (c - avg)*v where avg is the
// grayscale average. Saturation(0) equals Grayscale(); Saturation(1) is
// the identity.
func Saturation(v float32) FilterOp { return FilterOp{kind: OpSaturation, value: v} }

// Tonemap returns an op applying the ACES curve.
func Tonemap() FilterOp { return FilterOp{kind: OpTonemap} }

// Gamma returns an op applying the 1/2.2 display encode.
func Gamma() FilterOp { return FilterOp{kind: OpGamma} }

// Sepia matrix rows. Each output channel is a fixed linear combination of
// the input channels.
var (
	sepiaR = [3]float32{0.393, 0.769, 0.189}
	sepiaG = [3]float32{0.349, 0.686, 0.168}
	sepiaB = [3]float32{0.272, 0.534, 0.131}
)

// apply evaluates one op. Out-of-range intermediates are allowed; only
// the tone-mapping op compresses into [0,1], and ops after it may push
// values back out. That is the documented behavior of an explicit,
// order-preserving chain.
func (op FilterOp) apply(c Vec3) Vec3 {
	switch op.kind {
	case OpInvert:
		return V3(1-c.X, 1-c.Y, 1-c.Z)
	case OpGrayscale:
		avg := grayAverage(c)
		return V3(avg, avg, avg)
	case OpSepia:
		return V3(
			sepiaR[0]*c.X+sepiaR[1]*c.Y+sepiaR[2]*c.Z,
			sepiaG[0]*c.X+sepiaG[1]*c.Y+sepiaG[2]*c.Z,
			sepiaB[0]*c.X+sepiaB[1]*c.Y+sepiaB[2]*c.Z,
		)
	case OpBrightness:
		return c.AddScalar(op.value)
	case OpContrast:
		return V3(
			(c.X-0.5)*op.value+0.5,
			(c.Y-0.5)*op.value+0.5,
			(c.Z-0.5)*op.value+0.5,
		)
	case OpSaturation:
		avg := grayAverage(c)
		return V3(
			avg+(c.X-avg)*op.value,
			avg+(c.Y-avg)*op.value,
			avg+(c.Z-avg)*op.value,
		)
	case OpTonemap:
		return TonemapACES(c)
	case OpGamma:
		return LinearToGamma(c)
	default:
		// Unreachable: chain construction validates kinds.
		return c
	}
}

// grayAverage is the plain channel average used by the grayscale and
// saturation ops. Equal weighting, not Rec.709 luminance; the GPU
// shader computes the same average, and the two must agree.
func grayAverage(c Vec3) float32 {
	return (c.X + c.Y + c.Z) / 3
}

// FilterChain is an ordered sequence of filter ops applied first to
// last. Order is significant: Sepia then Invert is not Invert then
// Sepia. A chain is immutable after construction, so one chain value may
// be shared by concurrent draws.
type FilterChain struct {
	ops []FilterOp
}

// NewFilterChain validates the ops and builds a chain. An op with an
// unknown kind (including the zero FilterOp) is a construction-time
// error; per-pixel evaluation never fails.
func NewFilterChain(ops ...FilterOp) (*FilterChain, error) {
	for i, op := range ops {
		if op.kind == 0 || op.kind >= opKindEnd {
			return nil, fmt.Errorf("minirender: filter op %d: unknown kind %d", i, op.kind)
		}
	}
	chain := &FilterChain{ops: make([]FilterOp, len(ops))}
	copy(chain.ops, ops)
	return chain, nil
}

// Len returns the number of ops in the chain.
func (fc *FilterChain) Len() int {
	if fc == nil {
		return 0
	}
	return len(fc.ops)
}

// Ops returns a copy of the chain's ops in application order.
func (fc *FilterChain) Ops() []FilterOp {
	if fc == nil {
		return nil
	}
	out := make([]FilterOp, len(fc.ops))
	copy(out, fc.ops)
	return out
}

// Apply runs the chain over one color, in declared order. A nil chain is
// the identity. Apply is pure and safe to call concurrently.
func (fc *FilterChain) Apply(c Vec3) Vec3 {
	if fc == nil {
		return c
	}
	for _, op := range fc.ops {
		c = op.apply(c)
	}
	return c
}
