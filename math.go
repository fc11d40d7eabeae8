package signal

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3, Quat and Mat4 are the engine's math kernel (C1). They are thin
// aliases over mathgl so every system in this package shares one
// vector/quaternion/matrix representation instead of rolling its own.
type (
	Vec3 = mgl32.Vec3
	Quat = mgl32.Quat
	Mat4 = mgl32.Mat4
	Mat3 = mgl32.Mat3
)

// IdentityQuat is the no-rotation quaternion.
func IdentityQuat() Quat {
	return mgl32.QuatIdent()
}

// ZeroVec3 is the additive-identity vector.
func ZeroVec3() Vec3 {
	return Vec3{0, 0, 0}
}

// NormalizeVec3 returns v/|v|, or the zero vector itself when |v| is zero.
// mgl32.Vec3.Normalize divides by zero and produces NaN for the zero
// vector; the engine's numerical contract (§4.1) forbids that, so this
// wrapper is used everywhere a vector of unknown magnitude is normalized.
func NormalizeVec3(v Vec3) Vec3 {
	if v.LenSqr() == 0 {
		return ZeroVec3()
	}
	return v.Normalize()
}

// RotateVec3 applies q to v. quaternion_rotate_vector(identity, v) == v
// holds exactly because mgl32's identity quaternion rotation is the
// identity transform; no tolerance is needed for that case.
func RotateVec3(q Quat, v Vec3) Vec3 {
	return q.Rotate(v)
}

// QuatFromAxisAngle builds a rotation of angle radians about axis. axis is
// normalized internally via NormalizeVec3 so a zero axis (zero angular
// velocity) yields the identity rotation rather than NaN.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	axis = NormalizeVec3(axis)
	if axis.LenSqr() == 0 {
		return IdentityQuat()
	}
	return mgl32.QuatRotate(angle, axis)
}

// QuatToMat3 extracts the pure-rotation 3x3 block from q's Mat4 form.
func QuatToMat3(q Quat) Mat3 {
	m4 := q.Mat4()
	return Mat3{
		m4[0], m4[1], m4[2],
		m4[4], m4[5], m4[6],
		m4[8], m4[9], m4[10],
	}
}

// QuatToMat4 expands q to a full 4x4 homogeneous rotation matrix.
func QuatToMat4(q Quat) Mat4 {
	return q.Mat4()
}

// Mat4ToQuat is the inverse of QuatToMat4 on rotation-only matrices,
// used by the transform↔matrix round-trip test (§8).
func Mat4ToQuat(m Mat4) Quat {
	return mgl32.Mat4ToQuat(m)
}

// ComposeTRS builds the local_matrix = T(position) * R(rotation) * S(scale)
// composition described in §4.3.
func ComposeTRS(position Vec3, rotation Quat, scale Vec3) Mat4 {
	t := mgl32.Translate3D(position[0], position[1], position[2])
	r := rotation.Mat4()
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r).Mul4(s)
}

// PerspectiveMatrix builds a right-handed perspective projection. Provided
// for the camera component (§4.12); the core never submits it to a GPU.
func PerspectiveMatrix(fovyRadians, aspect, near, far float32) Mat4 {
	return mgl32.Perspective(fovyRadians, aspect, near, far)
}

// LookAtMatrix builds a right-handed view matrix.
func LookAtMatrix(eye, center, up Vec3) Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// ClampVec3 clamps each component of v independently to [min, max].
func ClampVec3(v Vec3, min, max float32) Vec3 {
	return Vec3{
		clampFloat32(v[0], min, max),
		clampFloat32(v[1], min, max),
		clampFloat32(v[2], min, max),
	}
}

func clampFloat32(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// finiteVec3 reports whether every component of v is finite (no NaN/Inf).
// Used by the NumericInstability check in the physics integrator (§4.7);
// input materialisation checks single values with isFinite32.
func finiteVec3(v Vec3) bool {
	return isFinite32(v[0]) && isFinite32(v[1]) && isFinite32(v[2])
}

func isFinite32(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}
