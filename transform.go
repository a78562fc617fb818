package minirender

// Transform places one drawable instance in the world: translation,
// rotation and per-axis scale. The frame loop mutates it between draws;
// the pipeline only ever reads the matrix it produces.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns the identity placement: origin position, identity
// rotation, unit scale.
func NewTransform() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    V3(1, 1, 1),
	}
}

// Matrix returns the model matrix. The composition order is
// translation x rotation x scale: scale applies in object space first,
// translation last. Reordering these changes the result.
func (t Transform) Matrix() Mat4 {
	return Translation(t.Position).Mul(t.Rotation.Mat4()).Mul(Scaling(t.Scale))
}
