// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/minirender"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between minirender and GPU
// frameworks like gogpu. The host implements DeviceHandle and passes it
// to renderers, allowing minirender to use the shared GPU device instead
// of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// minirender-specific name while maintaining full compatibility with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes parameters for creating a GPU texture.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// MipLevelCount is the number of mipmap levels.
	// Use 1 for no mipmaps.
	MipLevelCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be used in a texture binding.
	TextureUsageTextureBinding

	// TextureUsageRenderAttachment allows the texture to be used as a render attachment.
	TextureUsageRenderAttachment
)

// DescriptorFor builds the upload descriptor for a pipeline texture:
// RGBA8 with the texture's full mip chain, bindable for sampling and
// writable as a copy destination. sRGB-authored textures use the sRGB
// format variant so the GPU samples in linear space, matching the CPU
// sampler's decode.
func DescriptorFor(tex *minirender.Texture, label string, srgb bool) TextureDescriptor {
	format := gputypes.TextureFormatRGBA8Unorm
	if srgb {
		format = gputypes.TextureFormatRGBA8UnormSrgb
	}
	return TextureDescriptor{
		Label:         label,
		Width:         uint32(tex.Width()),
		Height:        uint32(tex.Height()),
		MipLevelCount: uint32(tex.MipLevels()),
		Format:        format,
		Usage:         TextureUsageTextureBinding | TextureUsageCopyDst,
	}
}

// FramebufferDescriptor builds the descriptor for the pipeline's render
// target at the given size.
func FramebufferDescriptor(width, height int, label string) TextureDescriptor {
	return TextureDescriptor{
		Label:  label,
		Width:  uint32(width),
		Height: uint32(height),

		MipLevelCount: 1,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         TextureUsageRenderAttachment | TextureUsageCopySrc,
	}
}
