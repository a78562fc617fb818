package minirender

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestQuatIdentityMat4(t *testing.T) {
	if got := QuatIdentity().Mat4(); !mat4ApproxEq(got, Mat4Identity(), 1e-6) {
		t.Errorf("identity quaternion matrix = %v, want identity", got)
	}
}

func TestQuatYaw90(t *testing.T) {
	// A 90 degree yaw rotates +x onto -z.
	q := QuatFromEuler(math32.Pi/2, 0, 0)
	got := q.Mat4().MulVec4(V4(1, 0, 0, 0)).XYZ()
	if !vec3ApproxEq(got, V3(0, 0, -1), 1e-6) {
		t.Errorf("yaw(90)(+x) = %+v, want (0,0,-1)", got)
	}
}

func TestQuatNormalizeZero(t *testing.T) {
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("Normalize(zero quat) = %+v, want identity", got)
	}
}

func TestQuatMulCompose(t *testing.T) {
	// Two 45 degree yaws compose to one 90 degree yaw.
	half := QuatFromEuler(math32.Pi/4, 0, 0)
	full := QuatFromEuler(math32.Pi/2, 0, 0)
	got := half.Mul(half).Mat4()
	if !mat4ApproxEq(got, full.Mat4(), 1e-6) {
		t.Errorf("yaw(45)*yaw(45) = %v, want yaw(90)", got)
	}
}

func TestTransformIdentity(t *testing.T) {
	if got := NewTransform().Matrix(); !mat4ApproxEq(got, Mat4Identity(), 1e-6) {
		t.Errorf("identity transform matrix = %v, want identity", got)
	}
}

func TestTransformTRSOrder(t *testing.T) {
	// Scale applies first, then rotation, then translation. A point at +x
	// under scale 2 and a 90 degree yaw ends up at translation + (0,0,-2).
	tr := Transform{
		Position: V3(10, 0, 0),
		Rotation: QuatFromEuler(math32.Pi/2, 0, 0),
		Scale:    V3(2, 2, 2),
	}
	got := tr.Matrix().MulVec4(V4(1, 0, 0, 1)).XYZ()
	if !vec3ApproxEq(got, V3(10, 0, -2), 1e-5) {
		t.Errorf("TRS(+x) = %+v, want (10,0,-2)", got)
	}
}

func TestCameraVariantsAgree(t *testing.T) {
	view := LookAt(V3(0, 1, 3), V3(0, 0, 0), V3(0, 1, 0))
	proj := Perspective(math32.Pi/3, 16.0/9.0, 0.1, 50)

	sep := NewCamera(view, proj).ViewProjection()
	comb := NewCombinedCamera(proj.Mul(view)).ViewProjection()
	if !mat4ApproxEq(sep, comb, 0) {
		t.Errorf("separate camera = %v, combined camera = %v", sep, comb)
	}
}
