package minirender

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestTonemapACESFixedPointAtZero(t *testing.T) {
	if got := TonemapACES(Vec3{}); got != (Vec3{}) {
		t.Errorf("TonemapACES(0) = %+v, want zero", got)
	}
}

func TestTonemapACESKnownValues(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0.18, 0.26690}, // middle gray lifts toward display range
		{0.5, 0.61631},
		{1.0, 0.80380},
		{1.1, 0.82324},
		{2.0, 0.91486},
	}
	for _, tt := range tests {
		got := acesChannel(tt.in)
		if !approxEq(got, tt.want, 1e-4) {
			t.Errorf("aces(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTonemapACESMonotone(t *testing.T) {
	prev := float32(-1)
	for x := float32(0); x <= 8; x += 0.05 {
		got := acesChannel(x)
		if got < prev {
			t.Fatalf("aces not monotone at %v: %v < %v", x, got, prev)
		}
		prev = got
	}
}

func TestTonemapACESSanitizes(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)
	got := TonemapACES(V3(nan, inf, -0.5))
	if got != (Vec3{}) {
		t.Errorf("TonemapACES(NaN, +Inf, -0.5) = %+v, want zero", got)
	}
}

func TestLinearToGamma(t *testing.T) {
	// Endpoints are fixed points; mid-range brightens.
	if got := LinearToGamma(V3(0, 1, 0.5)); !vec3ApproxEq(got, V3(0, 1, 0.72974), 1e-4) {
		t.Errorf("LinearToGamma = %+v", got)
	}
}

func TestLinearToGammaSanitizes(t *testing.T) {
	got := LinearToGamma(V3(math32.NaN(), -1, math32.Inf(-1)))
	if got != (Vec3{}) {
		t.Errorf("LinearToGamma(bad input) = %+v, want zero", got)
	}
}
