package minirender

// cameraKind discriminates the two camera representations.
type cameraKind uint8

const (
	cameraSeparate cameraKind = iota
	cameraCombined
)

// Camera holds the view-projection transform for a draw. Two
// representations exist in the wild: separate view and projection
// matrices, and a precombined projection-view matrix. Camera models both
// behind one accessor so the geometry stage is written once.
type Camera struct {
	kind       cameraKind
	view       Mat4
	projection Mat4
	projView   Mat4
}

// NewCamera creates a camera from separate view and projection matrices.
func NewCamera(view, projection Mat4) Camera {
	return Camera{
		kind:       cameraSeparate,
		view:       view,
		projection: projection,
	}
}

// NewCombinedCamera creates a camera from a precombined
// projection x view matrix.
func NewCombinedCamera(projView Mat4) Camera {
	return Camera{
		kind:     cameraCombined,
		projView: projView,
	}
}

// ViewProjection returns the effective view-projection matrix. For the
// separate representation this is projection * view, in that order; the
// product is not symmetric and swapping the factors is a correctness bug,
// not a convention choice.
func (c Camera) ViewProjection() Mat4 {
	if c.kind == cameraCombined {
		return c.projView
	}
	return c.projection.Mul(c.view)
}
