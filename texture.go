package minirender

import (
	"errors"
	"image"
	"image/draw"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/minirender/internal/color"
)

// Texture construction errors.
var (
	// ErrEmptyTexture is returned for zero-sized texture data.
	ErrEmptyTexture = errors.New("minirender: empty texture")

	// ErrBadTextureData is returned when the pixel slice length does not
	// match width*height*4.
	ErrBadTextureData = errors.New("minirender: texture data size mismatch")
)

// FilterMode selects how the sampler interpolates between texels.
type FilterMode uint8

const (
	// FilterNearest picks the single closest texel.
	FilterNearest FilterMode = iota
	// FilterBilinear blends the four closest texels.
	FilterBilinear
)

// WrapMode selects how texture coordinates outside [0,1] are handled.
type WrapMode uint8

const (
	// WrapRepeat tiles the texture.
	WrapRepeat WrapMode = iota
	// WrapClampToEdge extends the border texels.
	WrapClampToEdge
	// WrapMirrorRepeat tiles the texture, mirroring every other repeat.
	WrapMirrorRepeat
)

// Sampler configures texture fetches for one draw. The zero value is
// nearest filtering with repeat wrapping.
type Sampler struct {
	Filter FilterMode
	Wrap   WrapMode
}

// mipLevel is one level of the mip chain, stored as tightly packed RGBA8.
type mipLevel struct {
	width  int
	height int
	pix    []uint8
}

// Texture is an immutable 2D RGBA image with a precomputed mip chain.
// The pipeline treats it as a read-only resource for the duration of a
// draw; decoding image files into one is the asset collaborator's job.
type Texture struct {
	mips []mipLevel
	srgb bool
}

// TextureOption configures texture creation.
type TextureOption func(*textureOptions)

type textureOptions struct {
	srgb    bool
	mipmaps bool
}

// WithSRGB marks the texture data as sRGB-encoded. Samples are converted
// to linear space at fetch time so shading math stays in linear space.
func WithSRGB() TextureOption {
	return func(o *textureOptions) { o.srgb = true }
}

// WithMipmaps controls mip chain generation (default true). Disable for
// textures only ever sampled at level 0.
func WithMipmaps(enabled bool) TextureOption {
	return func(o *textureOptions) { o.mipmaps = enabled }
}

// NewTexture builds a texture from any image.Image.
func NewTexture(img image.Image, opts ...TextureOption) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyTexture
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return newTexture(rgba, opts...)
}

// NewTextureFromRGBA builds a texture from raw RGBA8 pixel data, 4 bytes
// per pixel in row-major order. The data is copied.
func NewTextureFromRGBA(width, height int, pix []uint8, opts ...TextureOption) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyTexture
	}
	if len(pix) != width*height*4 {
		return nil, ErrBadTextureData
	}
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(rgba.Pix, pix)
	return newTexture(rgba, opts...)
}

func newTexture(base *image.RGBA, opts ...TextureOption) (*Texture, error) {
	o := textureOptions{mipmaps: true}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Texture{srgb: o.srgb}
	t.mips = append(t.mips, mipFromImage(base))

	if o.mipmaps {
		src := base
		for src.Bounds().Dx() > 1 || src.Bounds().Dy() > 1 {
			nw := max(src.Bounds().Dx()/2, 1)
			nh := max(src.Bounds().Dy()/2, 1)
			dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
			xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
			t.mips = append(t.mips, mipFromImage(dst))
			src = dst
		}
	}
	return t, nil
}

func mipFromImage(img *image.RGBA) mipLevel {
	m := mipLevel{
		width:  img.Bounds().Dx(),
		height: img.Bounds().Dy(),
		pix:    make([]uint8, img.Bounds().Dx()*img.Bounds().Dy()*4),
	}
	// image.RGBA rows may carry stride padding; repack tightly.
	for y := 0; y < m.height; y++ {
		srcRow := img.Pix[y*img.Stride : y*img.Stride+m.width*4]
		copy(m.pix[y*m.width*4:], srcRow)
	}
	return m
}

// Width returns the level-0 width in pixels.
func (t *Texture) Width() int { return t.mips[0].width }

// Height returns the level-0 height in pixels.
func (t *Texture) Height() int { return t.mips[0].height }

// MipLevels returns the number of levels in the mip chain.
func (t *Texture) MipLevels() int { return len(t.mips) }

// Sample fetches a filtered texel at texture coordinate (u, v), selecting
// the mip level closest to lod (0 is the base level). The result is in
// linear space when the texture was created with WithSRGB, otherwise in
// the texture's stored space.
//
// Sample never fails: out-of-range coordinates wrap per the sampler and
// lod is clamped to the available chain. It is safe to call concurrently.
func (t *Texture) Sample(s Sampler, u, v, lod float32) RGBA {
	level := 0
	if lod > 0 {
		level = min(int(lod+0.5), len(t.mips)-1)
	}
	m := &t.mips[level]

	if s.Filter == FilterNearest {
		x := wrapIndex(int(math32.Floor(u*float32(m.width))), m.width, s.Wrap)
		y := wrapIndex(int(math32.Floor(v*float32(m.height))), m.height, s.Wrap)
		return t.texel(m, x, y)
	}

	// Bilinear: sample the four texels around the continuous position.
	fx := u*float32(m.width) - 0.5
	fy := v*float32(m.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.texel(m, wrapIndex(x0, m.width, s.Wrap), wrapIndex(y0, m.height, s.Wrap))
	c10 := t.texel(m, wrapIndex(x0+1, m.width, s.Wrap), wrapIndex(y0, m.height, s.Wrap))
	c01 := t.texel(m, wrapIndex(x0, m.width, s.Wrap), wrapIndex(y0+1, m.height, s.Wrap))
	c11 := t.texel(m, wrapIndex(x0+1, m.width, s.Wrap), wrapIndex(y0+1, m.height, s.Wrap))

	top := lerpRGBA(c00, c10, tx)
	bottom := lerpRGBA(c01, c11, tx)
	return lerpRGBA(top, bottom, ty)
}

// texel fetches one texel and converts it to float, decoding sRGB when
// the texture is flagged as such.
func (t *Texture) texel(m *mipLevel, x, y int) RGBA {
	i := (y*m.width + x) * 4
	c := color.U8ToF32(color.ColorU8{R: m.pix[i], G: m.pix[i+1], B: m.pix[i+2], A: m.pix[i+3]})
	if t.srgb {
		c = color.SRGBToLinearColor(c)
	}
	return fromF32(c)
}

// wrapIndex maps a possibly out-of-range texel index into [0, n).
func wrapIndex(i, n int, mode WrapMode) int {
	switch mode {
	case WrapClampToEdge:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	case WrapMirrorRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			return period - 1 - i
		}
		return i
	default: // WrapRepeat
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}

func lerpRGBA(a, b RGBA, t float32) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
