package minirender

import "testing"

// checker2x2 is red, green / blue, white.
func checker2x2(t *testing.T, opts ...TextureOption) *Texture {
	t.Helper()
	tex, err := NewTextureFromRGBA(2, 2, []uint8{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}, opts...)
	if err != nil {
		t.Fatalf("NewTextureFromRGBA: %v", err)
	}
	return tex
}

func TestNewTextureValidation(t *testing.T) {
	if _, err := NewTextureFromRGBA(0, 2, nil); err != ErrEmptyTexture {
		t.Errorf("zero width: err = %v, want ErrEmptyTexture", err)
	}
	if _, err := NewTextureFromRGBA(2, 2, make([]uint8, 15)); err != ErrBadTextureData {
		t.Errorf("short data: err = %v, want ErrBadTextureData", err)
	}
}

func TestTextureMipChain(t *testing.T) {
	tex, err := NewTextureFromRGBA(4, 4, make([]uint8, 4*4*4))
	if err != nil {
		t.Fatalf("NewTextureFromRGBA: %v", err)
	}
	if got := tex.MipLevels(); got != 3 {
		t.Errorf("MipLevels = %d, want 3 (4x4, 2x2, 1x1)", got)
	}

	flat, err := NewTextureFromRGBA(4, 4, make([]uint8, 4*4*4), WithMipmaps(false))
	if err != nil {
		t.Fatalf("NewTextureFromRGBA: %v", err)
	}
	if got := flat.MipLevels(); got != 1 {
		t.Errorf("MipLevels without mipmaps = %d, want 1", got)
	}
}

func TestSampleNearest(t *testing.T) {
	tex := checker2x2(t)
	s := Sampler{Filter: FilterNearest}

	tests := []struct {
		u, v float32
		want RGBA
	}{
		{0.25, 0.25, RGBA{R: 1, A: 1}},             // top-left red
		{0.75, 0.25, RGBA{G: 1, A: 1}},             // top-right green
		{0.25, 0.75, RGBA{B: 1, A: 1}},             // bottom-left blue
		{0.75, 0.75, RGBA{R: 1, G: 1, B: 1, A: 1}}, // bottom-right white
	}
	for _, tt := range tests {
		got := tex.Sample(s, tt.u, tt.v, 0)
		if got != tt.want {
			t.Errorf("Sample(%v, %v) = %+v, want %+v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestSampleBilinearCenter(t *testing.T) {
	tex := checker2x2(t)
	s := Sampler{Filter: FilterBilinear, Wrap: WrapClampToEdge}

	// At a texel center bilinear degenerates to that texel.
	got := tex.Sample(s, 0.25, 0.25, 0)
	if got != (RGBA{R: 1, A: 1}) {
		t.Errorf("bilinear at texel center = %+v, want pure red", got)
	}

	// The texture midpoint blends all four texels equally.
	mid := tex.Sample(s, 0.5, 0.5, 0)
	if !approxEq(mid.R, 0.5, 1e-6) || !approxEq(mid.G, 0.5, 1e-6) || !approxEq(mid.B, 0.5, 1e-6) {
		t.Errorf("bilinear at midpoint = %+v, want 0.5 per channel", mid)
	}
}

func TestSampleWrapModes(t *testing.T) {
	tex := checker2x2(t)

	// Repeat: u just past 1 lands back in the first column.
	repeat := tex.Sample(Sampler{Wrap: WrapRepeat}, 1.25, 0.25, 0)
	if repeat != (RGBA{R: 1, A: 1}) {
		t.Errorf("repeat sample = %+v, want red", repeat)
	}

	// Clamp: far out of range sticks to the edge texel.
	clamp := tex.Sample(Sampler{Wrap: WrapClampToEdge}, 5, 0.25, 0)
	if clamp != (RGBA{G: 1, A: 1}) {
		t.Errorf("clamp sample = %+v, want green", clamp)
	}

	// Mirror: the first repeat runs backwards.
	mirror := tex.Sample(Sampler{Wrap: WrapMirrorRepeat}, 1.25, 0.25, 0)
	if mirror != (RGBA{G: 1, A: 1}) {
		t.Errorf("mirror sample = %+v, want green", mirror)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		i, n int
		mode WrapMode
		want int
	}{
		{-1, 4, WrapRepeat, 3},
		{4, 4, WrapRepeat, 0},
		{-1, 4, WrapClampToEdge, 0},
		{9, 4, WrapClampToEdge, 3},
		{4, 4, WrapMirrorRepeat, 3},
		{-1, 4, WrapMirrorRepeat, 0},
		{7, 4, WrapMirrorRepeat, 0},
	}
	for _, tt := range tests {
		if got := wrapIndex(tt.i, tt.n, tt.mode); got != tt.want {
			t.Errorf("wrapIndex(%d, %d, %d) = %d, want %d", tt.i, tt.n, tt.mode, got, tt.want)
		}
	}
}

func TestSampleSRGBDecodes(t *testing.T) {
	mk := func(opts ...TextureOption) *Texture {
		tex, err := NewTextureFromRGBA(1, 1, []uint8{128, 128, 128, 255}, opts...)
		if err != nil {
			t.Fatalf("NewTextureFromRGBA: %v", err)
		}
		return tex
	}
	s := Sampler{}

	raw := mk().Sample(s, 0.5, 0.5, 0)
	if !approxEq(raw.R, float32(128)/255, 1e-6) {
		t.Errorf("linear texture sample = %v, want 128/255", raw.R)
	}

	// sRGB 128/255 decodes to ~0.2158 linear.
	dec := mk(WithSRGB()).Sample(s, 0.5, 0.5, 0)
	if !approxEq(dec.R, 0.21586, 1e-4) {
		t.Errorf("sRGB texture sample = %v, want ~0.21586", dec.R)
	}
	// Alpha is coverage, never color-managed.
	if dec.A != 1 {
		t.Errorf("sRGB sample alpha = %v, want 1", dec.A)
	}
}

func TestSampleLodClamped(t *testing.T) {
	tex := checker2x2(t)
	// Far past the chain end: clamps to the 1x1 tail, the average of the
	// four base texels.
	got := tex.Sample(Sampler{}, 0.5, 0.5, 10)
	if !approxEq(got.R, 0.5, 0.01) || !approxEq(got.G, 0.5, 0.01) || !approxEq(got.B, 0.5, 0.01) {
		t.Errorf("tail mip sample = %+v, want ~0.5 per channel", got)
	}
}
