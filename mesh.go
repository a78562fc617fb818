package minirender

import "errors"

// Mesh construction errors.
var (
	// ErrEmptyMesh is returned when building a mesh with no vertices.
	ErrEmptyMesh = errors.New("minirender: empty mesh")

	// ErrBadIndexCount is returned when the index count is not a
	// multiple of three.
	ErrBadIndexCount = errors.New("minirender: index count not a multiple of 3")

	// ErrIndexOutOfRange is returned when an index refers past the
	// vertex buffer.
	ErrIndexOutOfRange = errors.New("minirender: index out of range")
)

// Mesh is an indexed triangle list. The vertex and index buffers are
// owned by the mesh and immutable after construction; loading model data
// into these buffers is the asset collaborator's job.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
}

// NewMesh builds a mesh from a vertex buffer and a triangle index buffer.
// The slices are copied so later caller mutation cannot reach in-flight
// draws.
func NewMesh(vertices []Vertex, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	if len(indices)%3 != 0 {
		return nil, ErrBadIndexCount
	}
	for _, i := range indices {
		if int(i) >= len(vertices) {
			return nil, ErrIndexOutOfRange
		}
	}

	m := &Mesh{
		vertices: make([]Vertex, len(vertices)),
		indices:  make([]uint32, len(indices)),
	}
	copy(m.vertices, vertices)
	copy(m.indices, indices)
	return m, nil
}

// Vertices returns the vertex buffer. The slice must be treated as
// read-only.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Indices returns the triangle index buffer. The slice must be treated as
// read-only.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// NewCubeMesh returns a unit cube centered at the origin with per-face
// normals and a full [0,1] UV mapping on each face. It exists so the
// pipeline can be exercised without any asset loader.
func NewCubeMesh() *Mesh {
	faces := []struct {
		normal Vec3
		corner [4]Vec3
	}{
		{V3(0, 0, 1), [4]Vec3{V3(-0.5, -0.5, 0.5), V3(0.5, -0.5, 0.5), V3(0.5, 0.5, 0.5), V3(-0.5, 0.5, 0.5)}},
		{V3(0, 0, -1), [4]Vec3{V3(0.5, -0.5, -0.5), V3(-0.5, -0.5, -0.5), V3(-0.5, 0.5, -0.5), V3(0.5, 0.5, -0.5)}},
		{V3(1, 0, 0), [4]Vec3{V3(0.5, -0.5, 0.5), V3(0.5, -0.5, -0.5), V3(0.5, 0.5, -0.5), V3(0.5, 0.5, 0.5)}},
		{V3(-1, 0, 0), [4]Vec3{V3(-0.5, -0.5, -0.5), V3(-0.5, -0.5, 0.5), V3(-0.5, 0.5, 0.5), V3(-0.5, 0.5, -0.5)}},
		{V3(0, 1, 0), [4]Vec3{V3(-0.5, 0.5, 0.5), V3(0.5, 0.5, 0.5), V3(0.5, 0.5, -0.5), V3(-0.5, 0.5, -0.5)}},
		{V3(0, -1, 0), [4]Vec3{V3(-0.5, -0.5, -0.5), V3(0.5, -0.5, -0.5), V3(0.5, -0.5, 0.5), V3(-0.5, -0.5, 0.5)}},
	}
	uvs := [4]Vec2{V2(0, 1), V2(1, 1), V2(1, 0), V2(0, 0)}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, p := range f.corner {
			vertices = append(vertices, Vertex{Position: p, Normal: f.normal, TexCoord: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	m, err := NewMesh(vertices, indices)
	if err != nil {
		// Unreachable for the fixed geometry above.
		panic(err)
	}
	return m
}
