package minirender

import "github.com/chewxy/math32"

// Shade is the lighting stage: ambient plus Lambertian diffuse for a
// single directional light, evaluated in linear space.
//
// The diffuse intensity is max(dot(n, l), 0) over the normalized surface
// normal and light direction, so backlit fragments contribute nothing
// rather than negative light. The result is ambient + intensity * color,
// componentwise and deliberately unclamped: values above 1 carry HDR
// range into the tone-mapping stage.
//
// Shade is a pure function and safe to call concurrently across
// fragments.
func Shade(normal, lightDir, lightColor, ambient Vec3) Vec3 {
	intensity := math32.Max(normal.Normalize().Dot(lightDir.Normalize()), 0)
	return ambient.Add(lightColor.Mul(intensity))
}

// Modulate is the texturing stage combiner: the lit color scaled
// componentwise by the texture sample's RGB. Alpha is carried separately
// by the caller and never multiplied into the lit path; blending against
// the destination is the output merger's concern, not this pipeline's.
func Modulate(lit Vec3, texel RGBA) Vec3 {
	return lit.MulEach(V3(texel.R, texel.G, texel.B))
}
