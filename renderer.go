package minirender

import "errors"

// Draw-time errors.
var (
	// ErrNilFramebuffer is returned when drawing into a nil framebuffer.
	ErrNilFramebuffer = errors.New("minirender: nil framebuffer")

	// ErrNilMesh is returned when drawing a nil mesh.
	ErrNilMesh = errors.New("minirender: nil mesh")
)

// MeshRenderer executes one draw: mesh, texture binding and uniform
// snapshot in, shaded fragments in a framebuffer out.
//
// Implementations must treat every argument as read-only and must not
// retain references past the call. uniforms is a value, so the caller's
// frame loop is free to mutate its own uniform state the moment Draw
// returns.
type MeshRenderer interface {
	// Draw renders the mesh into fb. tex may be nil for untextured
	// draws.
	Draw(fb *Framebuffer, mesh *Mesh, tex *Texture, sampler Sampler, uniforms DrawUniforms) error

	// Close releases renderer resources. The renderer must not be used
	// after Close.
	Close()
}
