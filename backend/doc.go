// Package backend provides a pluggable rendering backend abstraction.
//
// A backend turns the pipeline's pure stage math into executed draws:
// the software backend evaluates it on the CPU, the wgpu backend
// dispatches the equivalent WGSL on a GPU. Backends are registered via
// init() functions and selected at runtime.
//
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/minirender/backend"
//
// Use Default() to get the best available backend, or Get() to request a
// specific backend by name:
//
//	b := backend.Default()
//	if err := b.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	r, err := b.NewMeshRenderer()
package backend
