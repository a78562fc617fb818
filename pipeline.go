package minirender

// ShadeFragment runs the per-fragment half of the pipeline: lighting,
// texture modulation and the filter chain, in that order. vary holds the
// rasterizer-interpolated varyings for the fragment; tex may be nil for
// untextured draws (equivalent to a white texture).
//
// Output alpha is fixed at 1 unless alphaFromTexture is set, in which
// case the texture sample's alpha passes through untouched by the color
// path.
//
// ShadeFragment is a pure function over its inputs and safe to call
// concurrently across fragments; the uniform state and texture are only
// read.
func ShadeFragment(vary Varyings, u DrawUniforms, tex *Texture, s Sampler, alphaFromTexture bool) RGBA {
	lit := Shade(vary.WorldNormal, u.Light.Direction, u.Light.Color, u.Ambient)

	texel := White
	if tex != nil {
		texel = tex.Sample(s, vary.TexCoord.X, vary.TexCoord.Y, 0)
	}

	c := u.Chain.Apply(Modulate(lit, texel))

	alpha := float32(1)
	if alphaFromTexture {
		alpha = texel.A
	}
	return RGBA{R: c.X, G: c.Y, B: c.Z, A: alpha}
}
