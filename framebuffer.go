package minirender

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/minirender/internal/color"
)

// ErrInvalidDimensions is returned for non-positive framebuffer sizes.
var ErrInvalidDimensions = errors.New("minirender: invalid framebuffer dimensions")

// Framebuffer is the render target: a rectangular RGBA8 color buffer
// plus a float32 depth buffer. The presentation collaborator reads the
// color data; the depth buffer exists only for the duration of draws.
type Framebuffer struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
	depth  []float32
}

// NewFramebuffer creates a framebuffer with the given dimensions.
// Color starts transparent black, depth starts at the far plane.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	fb := &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		depth:  make([]float32, width*height),
	}
	fb.ClearDepth()
	return fb, nil
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Data returns the raw color data (RGBA format, row-major). The slice is
// live; it reflects subsequent draws.
func (fb *Framebuffer) Data() []uint8 { return fb.data }

// Clear fills the color buffer with c and resets the depth buffer.
func (fb *Framebuffer) Clear(c RGBA) {
	u := color.F32ToU8(c.toF32())
	for i := 0; i < len(fb.data); i += 4 {
		fb.data[i+0] = u.R
		fb.data[i+1] = u.G
		fb.data[i+2] = u.B
		fb.data[i+3] = u.A
	}
	fb.ClearDepth()
}

// ClearDepth resets every depth sample to the far plane (+Inf), so any
// fragment with a finite depth passes the first test.
func (fb *Framebuffer) ClearDepth() {
	far := float32(math.Inf(1))
	for i := range fb.depth {
		fb.depth[i] = far
	}
}

// SetPixel writes one pixel, clamping components to [0,1].
// Out-of-bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	u := color.F32ToU8(c.toF32())
	i := (y*fb.width + x) * 4
	fb.data[i+0] = u.R
	fb.data[i+1] = u.G
	fb.data[i+2] = u.B
	fb.data[i+3] = u.A
}

// At returns the color of one pixel, or Transparent out of bounds.
func (fb *Framebuffer) At(x, y int) RGBA {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Transparent
	}
	i := (y*fb.width + x) * 4
	return fromF32(color.U8ToF32(color.ColorU8{
		R: fb.data[i+0],
		G: fb.data[i+1],
		B: fb.data[i+2],
		A: fb.data[i+3],
	}))
}

// DepthAt returns the depth of one pixel, or +Inf out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return float32(math.Inf(1))
	}
	return fb.depth[y*fb.width+x]
}

// depthTest is an unsynchronized depth compare-and-write for one pixel.
// Callers must guarantee no two goroutines touch the same pixel; the
// software renderer partitions work by row to uphold that.
func (fb *Framebuffer) depthTest(x, y int, z float32) bool {
	i := y*fb.width + x
	if z >= fb.depth[i] {
		return false
	}
	fb.depth[i] = z
	return true
}

// Image copies the color buffer into a standard *image.RGBA.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+fb.width*4], fb.data[y*fb.width*4:])
	}
	return img
}
