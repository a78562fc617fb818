package backend

import (
	"errors"

	"github.com/gogpu/minirender"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU reference backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the GPU backend (gogpu/wgpu).
	BackendWGPU = "wgpu"
)

// RenderBackend is the interface for rendering backends. It abstracts
// the execution model behind the pipeline, allowing the same draws to
// run on the CPU reference implementation or on a GPU.
//
// Backends must be registered via Register() and are selected via Get()
// or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before creating renderers.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewMeshRenderer creates a renderer executing mesh draws through
	// this backend. The options carry the same meaning for every
	// backend.
	NewMeshRenderer(opts ...minirender.Option) (minirender.MeshRenderer, error)
}
