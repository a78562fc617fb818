// Package color provides color space types and conversions for minirender.
package color

// ColorSpace represents a color space.
type ColorSpace uint8

const (
	// ColorSpaceSRGB represents the standard sRGB color space.
	// Texture assets are typically authored in sRGB.
	ColorSpaceSRGB ColorSpace = iota
	// ColorSpaceLinear represents the linear RGB color space.
	// All shading math happens in linear space.
	ColorSpaceLinear
)

// ColorF32 represents a color with float32 components.
// RGB components are in the color space indicated by context and may
// exceed [0,1] in the HDR portion of the pipeline (before tone mapping).
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
// This is the framebuffer and texture storage format.
type ColorU8 struct {
	R, G, B, A uint8
}
