// Package wgpu provides a GPU rendering backend using gogpu/wgpu.
//
// The backend emits a WGSL shader whose vertex and fragment math mirrors
// the pure stage functions of the root package token for token: the same
// MVP transform, the same Lambert term, the same ACES constants and the
// same filter op semantics, driven by a packed uniform buffer. The
// shader is validated by compiling it to SPIR-V with gogpu/naga at
// initialization time, so a shader/CPU divergence fails fast instead of
// rendering wrong.
//
// Key components:
//
//   - WGPUBackend: entry point implementing backend.RenderBackend;
//     opens a HAL device via the Vulkan backend when one is available
//   - GPUMeshRenderer: packs vertex and uniform buffers and owns the
//     shader module and bind group layout
//
// The hal render-pass surface is still settling; until it is complete,
// GPUMeshRenderer prepares all GPU-side data and then evaluates the draw
// through the CPU reference path, logging the fallback once. The
// observable pipeline output is identical either way, which is the point
// of keeping the stage math pure.
package wgpu
