package wgpu

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/minirender"
)

// Renderer errors.
var (
	// ErrRendererClosed is returned when operating on a closed renderer.
	ErrRendererClosed = errors.New("wgpu: renderer closed")

	// ErrChainTooLong is returned when a filter chain exceeds the
	// uniform array capacity of the shader.
	ErrChainTooLong = errors.New("wgpu: filter chain exceeds shader capacity")
)

// maxFilterOps is the shader-side capacity of the filter op array. It
// must match the ops array length in meshShaderWGSL.
const maxFilterOps = 16

// uniformFloatCount is the float32 size of the packed Uniforms struct:
// two mat4x4, three vec4 and the op array.
const uniformFloatCount = 16 + 16 + 4 + 4 + 4 + maxFilterOps*4

// GPUMeshRenderer executes mesh draws on a wgpu device. It compiles the
// mesh shader at construction and keeps the uniform buffer resident,
// rewriting it only when the snapshot changes.
//
// The hal render-pass surface is not complete yet; Draw packs all GPU
// buffers and then evaluates fragments through the CPU reference
// renderer so output stays correct (see the package documentation).
type GPUMeshRenderer struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	shaderModule hal.ShaderModule
	bindLayout   hal.BindGroupLayout
	pipeLayout   hal.PipelineLayout

	uniformBuf  hal.Buffer
	lastUniform [uniformFloatCount]float32
	haveUniform bool

	vertexBuf     hal.Buffer
	vertexBufSize uint64

	// CPU fallback path, shared options.
	fallback     *minirender.SoftwareRenderer
	warnFallback sync.Once

	closed bool
}

// newGPUMeshRenderer compiles the shader and creates the pipeline
// skeleton on the given device.
func newGPUMeshRenderer(device hal.Device, queue hal.Queue, opts ...minirender.Option) (*GPUMeshRenderer, error) {
	r := &GPUMeshRenderer{
		device:   device,
		queue:    queue,
		fallback: minirender.NewSoftwareRenderer(opts...),
	}
	if err := r.init(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *GPUMeshRenderer) init() error {
	// Compile WGSL to SPIR-V. Beyond producing the module source this
	// validates that the shader and the CPU stages cannot drift apart
	// silently: a malformed edit fails here, at construction.
	spirvBytes, err := naga.Compile(meshShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile mesh shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	module, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "mesh_shader",
		Source: hal.ShaderSource{SPIRV: spirvCode},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	r.shaderModule = module

	// Bind group layout:
	//   Binding 0: Uniforms (uniform buffer, vertex+fragment)
	//   Binding 1: diffuse texture (texture_2d, fragment)
	//   Binding 2: sampler (fragment)
	bindLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "mesh_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create bind group layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "mesh_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	uniformBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "mesh_uniforms",
		Size:  uniformFloatCount * 4,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create uniform buffer: %w", err)
	}
	r.uniformBuf = uniformBuf

	return nil
}

// Draw renders the mesh. The uniform buffer is rewritten only when the
// packed snapshot differs from the previous draw.
func (r *GPUMeshRenderer) Draw(fb *minirender.Framebuffer, mesh *minirender.Mesh, tex *minirender.Texture, sampler minirender.Sampler, uniforms minirender.DrawUniforms) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRendererClosed
	}
	if fb == nil {
		return minirender.ErrNilFramebuffer
	}
	if mesh == nil {
		return minirender.ErrNilMesh
	}
	if uniforms.Chain.Len() > maxFilterOps {
		return ErrChainTooLong
	}

	packed := packDrawUniforms(uniforms)
	if !r.haveUniform || packed != r.lastUniform {
		r.queue.WriteBuffer(r.uniformBuf, 0, floatsToBytes(packed[:]))
		r.lastUniform = packed
		r.haveUniform = true
		minirender.Logger().Debug("wgpu uniforms uploaded", "bytes", len(packed)*4)
	}

	vertexBytes := floatsToBytes(packVertices(mesh))
	if err := r.ensureVertexBuffer(uint64(len(vertexBytes))); err != nil {
		return err
	}
	r.queue.WriteBuffer(r.vertexBuf, 0, vertexBytes)

	// TODO(render-pass): once hal exposes render pipelines, record a
	// render pass against a target texture and read the result back
	// into fb.
	r.warnFallback.Do(func() {
		minirender.Logger().Warn("wgpu render pass not available, evaluating draw on CPU")
	})
	return r.fallback.Draw(fb, mesh, tex, sampler, uniforms)
}

// ensureVertexBuffer reallocates the vertex buffer when the mesh needs
// more space than the current allocation.
func (r *GPUMeshRenderer) ensureVertexBuffer(size uint64) error {
	if r.vertexBuf != nil && r.vertexBufSize >= size {
		return nil
	}
	if r.vertexBuf != nil {
		r.device.DestroyBuffer(r.vertexBuf)
		r.vertexBuf = nil
	}
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "mesh_vertices",
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create vertex buffer: %w", err)
	}
	r.vertexBuf = buf
	r.vertexBufSize = size
	return nil
}

// Close releases GPU resources. Close is idempotent.
func (r *GPUMeshRenderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	if r.vertexBuf != nil {
		r.device.DestroyBuffer(r.vertexBuf)
		r.vertexBuf = nil
	}
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.bindLayout != nil {
		r.device.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.shaderModule != nil {
		r.device.DestroyShaderModule(r.shaderModule)
		r.shaderModule = nil
	}
	r.fallback.Close()
}

// packDrawUniforms lays the snapshot out to match the WGSL Uniforms
// struct: model, view_proj, light_dir, light_color, ambient (w carries
// the op count), then the op array as (kind, value, 0, 0) vectors.
func packDrawUniforms(u minirender.DrawUniforms) [uniformFloatCount]float32 {
	var out [uniformFloatCount]float32

	copy(out[0:16], u.Model[:])
	copy(out[16:32], u.ViewProj[:])

	out[32], out[33], out[34] = u.Light.Direction.X, u.Light.Direction.Y, u.Light.Direction.Z
	out[36], out[37], out[38] = u.Light.Color.X, u.Light.Color.Y, u.Light.Color.Z
	out[40], out[41], out[42] = u.Ambient.X, u.Ambient.Y, u.Ambient.Z

	ops := u.Chain.Ops()
	out[43] = float32(len(ops))
	for i, op := range ops {
		base := 44 + i*4
		out[base] = float32(op.Kind())
		out[base+1] = op.Value()
	}
	return out
}

// packVertices flattens the vertex buffer into the shader's input
// layout: position, normal, tex_coord as 8 contiguous floats.
func packVertices(mesh *minirender.Mesh) []float32 {
	verts := mesh.Vertices()
	out := make([]float32, 0, len(verts)*8)
	for _, v := range verts {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.TexCoord.X, v.TexCoord.Y,
		)
	}
	return out
}

// floatsToBytes reinterprets a float32 slice as raw bytes for buffer
// uploads. The result shares memory with the input.
func floatsToBytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
