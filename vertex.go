package minirender

// Vertex is one element of a mesh vertex buffer: an object-space position,
// an object-space normal and a texture coordinate. Vertices are immutable
// once a mesh is built.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	TexCoord Vec2
}

// Varyings is the geometry stage output for one vertex: the clip-space
// position plus the attributes the rasterizer interpolates across the
// triangle before fragment shading.
type Varyings struct {
	// ClipPosition is the homogeneous position after the full
	// projection x view x model transform, before perspective divide.
	ClipPosition Vec4

	// WorldNormal is the unit-length world-space normal, or the zero
	// vector if the input normal was degenerate.
	WorldNormal Vec3

	// TexCoord passes through from the vertex unchanged.
	TexCoord Vec2
}
