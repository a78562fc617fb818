// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/minirender"
)

// RenderTarget defines where pipeline output goes.
//
// Targets may support CPU access (Pixels), GPU access (descriptor-based
// allocation on the host device), or both. The renderer implementation
// chooses the appropriate access method.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, or nil for GPU-only
	// targets. For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte
}

// FramebufferTarget is a CPU-backed render target wrapping a pipeline
// framebuffer. It is the default target for the software backend and
// the readback destination for GPU draws.
type FramebufferTarget struct {
	fb *minirender.Framebuffer
}

// NewFramebufferTarget creates a CPU-backed target of the given size.
func NewFramebufferTarget(width, height int) (*FramebufferTarget, error) {
	fb, err := minirender.NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	return &FramebufferTarget{fb: fb}, nil
}

// WrapFramebuffer creates a target backed by an existing framebuffer.
func WrapFramebuffer(fb *minirender.Framebuffer) *FramebufferTarget {
	return &FramebufferTarget{fb: fb}
}

// Framebuffer returns the underlying framebuffer for drawing.
func (t *FramebufferTarget) Framebuffer() *minirender.Framebuffer {
	return t.fb
}

// Width returns the target width in pixels.
func (t *FramebufferTarget) Width() int { return t.fb.Width() }

// Height returns the target height in pixels.
func (t *FramebufferTarget) Height() int { return t.fb.Height() }

// Format returns the pixel format of the target.
func (t *FramebufferTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns the live RGBA pixel data.
func (t *FramebufferTarget) Pixels() []byte {
	return t.fb.Data()
}

// Image copies the current contents into a standard *image.RGBA.
func (t *FramebufferTarget) Image() *image.RGBA {
	return t.fb.Image()
}
