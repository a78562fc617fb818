package minirender

// DirectionalLight is a single infinitely-distant light: a direction the
// light travels from (pointing from the surface toward the light) and a
// linear-space RGB color. Direction need not be pre-normalized; the
// lighting stage normalizes before use.
type DirectionalLight struct {
	Direction Vec3
	Color     Vec3
}

// NewDirectionalLight creates a light with the given direction and color.
func NewDirectionalLight(direction, color Vec3) DirectionalLight {
	return DirectionalLight{Direction: direction, Color: color}
}
