package minirender

import "github.com/chewxy/math32"

// Quat is a rotation quaternion. The zero value is not a valid rotation;
// use QuatIdentity or QuatFromEuler.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromEuler builds a rotation from Euler angles in radians, applied in
// yaw (Y), pitch (X), roll (Z) order.
func QuatFromEuler(yaw, pitch, roll float32) Quat {
	cy, sy := math32.Cos(yaw/2), math32.Sin(yaw/2)
	cp, sp := math32.Cos(pitch/2), math32.Sin(pitch/2)
	cr, sr := math32.Cos(roll/2), math32.Sin(roll/2)

	// qYaw * qPitch * qRoll
	return Quat{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// Mul returns the composed rotation q * r (r applied first).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Normalize returns the unit quaternion in the same orientation.
// Returns the identity rotation for a zero quaternion.
func (q Quat) Normalize() Quat {
	length := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length == 0 {
		return QuatIdentity()
	}
	return Quat{X: q.X / length, Y: q.Y / length, Z: q.Z / length, W: q.W / length}
}

// Mat4 returns the rotation as a 4x4 matrix. The quaternion is normalized
// first so accumulated drift does not skew the basis vectors.
func (q Quat) Mat4() Mat4 {
	n := q.Normalize()
	x, y, z, w := n.X, n.Y, n.Z, n.W

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	var m Mat4
	m[0] = 1 - 2*(yy+zz)
	m[1] = 2 * (xy + wz)
	m[2] = 2 * (xz - wy)

	m[4] = 2 * (xy - wz)
	m[5] = 1 - 2*(xx+zz)
	m[6] = 2 * (yz + wx)

	m[8] = 2 * (xz + wy)
	m[9] = 2 * (yz - wx)
	m[10] = 1 - 2*(xx+yy)

	m[15] = 1
	return m
}
