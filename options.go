package minirender

// Option configures a renderer during creation.
//
// Example:
//
//	// Default configuration
//	r := minirender.NewSoftwareRenderer()
//
//	// Two-sided rendering with texture alpha carried through
//	r := minirender.NewSoftwareRenderer(
//	    minirender.WithBackfaceCulling(false),
//	    minirender.WithAlphaPassthrough(),
//	)
type Option func(*rendererOptions)

type rendererOptions struct {
	cullBackfaces    bool
	alphaFromTexture bool
	workers          int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		cullBackfaces: true,
	}
}

// WithBackfaceCulling controls whether triangles facing away from the
// camera are skipped (default true).
func WithBackfaceCulling(enabled bool) Option {
	return func(o *rendererOptions) {
		o.cullBackfaces = enabled
	}
}

// WithAlphaPassthrough carries the texture sample's alpha into the
// framebuffer instead of the default fixed alpha of 1. The color path is
// unaffected either way.
func WithAlphaPassthrough() Option {
	return func(o *rendererOptions) {
		o.alphaFromTexture = true
	}
}

// WithWorkers sets the number of goroutines used for fragment work.
// Zero or negative selects GOMAXPROCS. One forces serial evaluation,
// useful for debugging.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}
