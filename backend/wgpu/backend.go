package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import the Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/minirender"
	"github.com/gogpu/minirender/backend"
)

// Backend errors.
var (
	// ErrNoGPU is returned when no usable GPU adapter is found.
	ErrNoGPU = errors.New("wgpu: no GPU adapter available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("wgpu: not initialized")
)

// init registers the wgpu backend on package import. Registration is
// unconditional; availability is decided by Init, so hosts can probe
// with Init and fall back to the software backend on error.
func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return &WGPUBackend{}
	})
}

// WGPUBackend executes draws through gogpu/wgpu. It opens the first
// discrete or integrated GPU adapter exposed by the Vulkan HAL backend.
type WGPUBackend struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	initialized bool
}

// Name returns the backend identifier.
func (b *WGPUBackend) Name() string {
	return backend.BackendWGPU
}

// IsInitialized reports whether Init has completed successfully.
func (b *WGPUBackend) IsInitialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

// Init opens a GPU device. It returns ErrNoGPU (possibly wrapped) when
// no Vulkan backend or adapter is available; callers should treat that
// as a signal to use the software backend instead.
func (b *WGPUBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("%w: vulkan backend not registered", ErrNoGPU)
	}

	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("%w: create instance: %v", ErrNoGPU, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return fmt.Errorf("%w: no adapters", ErrNoGPU)
	}

	// Prefer a real GPU over software adapters.
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("%w: open device: %v", ErrNoGPU, err)
	}

	b.instance = instance
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.initialized = true

	minirender.Logger().Info("wgpu backend initialized", "adapter", selected.Info.Name)
	return nil
}

// Close releases the GPU device and instance.
func (b *WGPUBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device != nil {
		b.device.Destroy()
		b.device = nil
		b.queue = nil
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	b.initialized = false
}

// NewMeshRenderer creates a GPU mesh renderer bound to this backend's
// device.
func (b *WGPUBackend) NewMeshRenderer(opts ...minirender.Option) (minirender.MeshRenderer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return nil, ErrNotInitialized
	}
	return newGPUMeshRenderer(b.device, b.queue, opts...)
}
