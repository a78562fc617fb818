package backend

import (
	"github.com/gogpu/minirender"
)

// SoftwareBackend executes draws on the CPU reference implementation.
// It is always available and serves as the fallback when no GPU backend
// can initialize.
type SoftwareBackend struct {
	initialized bool
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend. The software backend has no external
// resources; Init only flips the state flag.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewMeshRenderer creates a CPU mesh renderer.
func (b *SoftwareBackend) NewMeshRenderer(opts ...minirender.Option) (minirender.MeshRenderer, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	return minirender.NewSoftwareRenderer(opts...), nil
}
