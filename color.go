package minirender

import "github.com/gogpu/minirender/internal/color"

// RGBA is a float32 color with explicit alpha. RGB components sit in the
// space indicated by context (linear inside the pipeline, display space
// after the filter chain) and may exceed [0,1] mid-pipeline. Alpha is
// always linear.
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	// White is opaque white.
	White = RGBA{1, 1, 1, 1}
	// Black is opaque black.
	Black = RGBA{0, 0, 0, 1}
	// Transparent is fully transparent black.
	Transparent = RGBA{0, 0, 0, 0}
)

// RGB returns the color components as a Vec3, dropping alpha.
func (c RGBA) RGB() Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}

func (c RGBA) toF32() color.ColorF32 {
	return color.ColorF32{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromF32(c color.ColorF32) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
