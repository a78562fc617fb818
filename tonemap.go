package minirender

import "github.com/chewxy/math32"

// ACES curve constants. The exact values matter: the curve is tuned as a
// rational approximation and downstream output parity depends on them.
const (
	acesA = 2.51
	acesB = 0.03
	acesC = 2.43
	acesD = 0.59
	acesE = 0.14
)

// TonemapACES compresses HDR linear color into [0,1] using the ACES
// filmic approximation, componentwise:
//
//	f(x) = (x*(2.51x + 0.03)) / (x*(2.43x + 0.59) + 0.14)
//
// The denominator constant keeps the division defined for all
// non-negative inputs. Negative, NaN or Inf components are a caller bug
// (nothing upstream produces them from finite inputs); they are clamped
// to 0 here rather than allowed to poison the framebuffer.
func TonemapACES(c Vec3) Vec3 {
	return Vec3{
		X: acesChannel(c.X),
		Y: acesChannel(c.Y),
		Z: acesChannel(c.Z),
	}
}

func acesChannel(x float32) float32 {
	x = sanitizeChannel(x)
	return (x * (acesA*x + acesB)) / (x*(acesC*x+acesD) + acesE)
}

// LinearToGamma applies the approximate display encode pow(c, 1/2.2),
// componentwise. It is an opt-in member of the filter chain, never an
// implicit final step; callers that want exact sRGB instead use the
// transfer functions in internal/color.
func LinearToGamma(c Vec3) Vec3 {
	return Vec3{
		X: gammaChannel(c.X),
		Y: gammaChannel(c.Y),
		Z: gammaChannel(c.Z),
	}
}

func gammaChannel(x float32) float32 {
	x = sanitizeChannel(x)
	return math32.Pow(x, 1.0/2.2)
}

// sanitizeChannel clamps NaN, Inf and negative values to 0 before they
// enter a stage whose math assumes finite non-negative input.
func sanitizeChannel(x float32) float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}
