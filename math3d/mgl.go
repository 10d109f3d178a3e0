package math3d

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions for collaborators built on mathgl. Matrix layouts match, both
// are column major.

func (v Vector3) Mgl() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func Vector3FromMgl(v mgl64.Vec3) Vector3 { return Vector3{v[0], v[1], v[2]} }

func (v Vector3) Mgl32() mgl32.Vec3 { return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }

func (v Vector4) Mgl() mgl64.Vec4 { return mgl64.Vec4{v.X, v.Y, v.Z, v.W} }

func (q Quaternion) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func QuaternionFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{q.V[0], q.V[1], q.V[2], q.W}
}

func (m Matrix3) Mgl() mgl64.Mat3 { return mgl64.Mat3(m) }

func (m Matrix4) Mgl() mgl64.Mat4 { return mgl64.Mat4(m) }

func Matrix4FromMgl(m mgl64.Mat4) Matrix4 { return Matrix4(m) }

// Float32 converts to the single precision matrix uploaded by renderers
func (m Matrix4) Float32() mgl32.Mat4 {
	var r mgl32.Mat4
	for i, v := range m {
		r[i] = float32(v)
	}
	return r
}
