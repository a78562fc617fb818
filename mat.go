package minirender

import "github.com/chewxy/math32"

// Mat4 is a 4x4 float32 matrix stored in column-major order, the
// WebGPU/OpenGL convention: element (row, col) lives at index col*4+row.
//
// Matrix multiplication is non-commutative; the pipeline depends on the
// projection x view x model order, so compositions are always written out
// explicitly rather than hidden behind helpers.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 returns the matrix-vector product m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Translation returns a matrix that translates by t.
func Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// Scaling returns a matrix that scales each axis independently.
func Scaling(s Vec3) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = s.X, s.Y, s.Z, 1
	return m
}

// Perspective returns a perspective projection matrix mapping view space
// onto the WebGPU [0, 1] clip-space depth range.
//
// fovY is the vertical field of view in radians, aspect is width/height,
// near and far are the clipping plane distances (0 < near < far).
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1.0 / math32.Tan(fovY/2)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = (near * far) / (near - far)
	return m
}

// LookAt returns a right-handed view matrix with the camera at eye,
// looking toward target, oriented by up.
func LookAt(eye, target, up Vec3) Mat4 {
	fwd := target.Sub(eye).Normalize()
	right := fwd.Cross(up).Normalize()
	trueUp := right.Cross(fwd)

	var m Mat4
	m[0], m[4], m[8] = right.X, right.Y, right.Z
	m[1], m[5], m[9] = trueUp.X, trueUp.Y, trueUp.Z
	m[2], m[6], m[10] = -fwd.X, -fwd.Y, -fwd.Z
	m[12] = -right.Dot(eye)
	m[13] = -trueUp.Dot(eye)
	m[14] = fwd.Dot(eye)
	m[15] = 1
	return m
}
