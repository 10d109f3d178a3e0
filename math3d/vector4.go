package math3d

import "math"

type Vector4 struct {
	X, Y, Z, W float64
}

func Vec4(x, y, z, w float64) Vector4 { return Vector4{x, y, z, w} }

func (v Vector4) Add(u Vector4) Vector4 { return Vector4{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W} }
func (v Vector4) Sub(u Vector4) Vector4 { return Vector4{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W} }

func (v Vector4) MulScalar(s float64) Vector4 { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

func (v Vector4) DivScalar(s float64) Vector4 {
	if s == 0 {
		return Vector4{}
	}
	return v.MulScalar(1 / s)
}

func (v Vector4) Dot(u Vector4) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W }

func (v Vector4) LengthSq() float64 { return v.Dot(v) }
func (v Vector4) Length() float64   { return math.Sqrt(v.LengthSq()) }

func (v Vector4) Normalize() Vector4 { return v.DivScalar(v.Length()) }

func (v Vector4) Lerp(u Vector4, t float64) Vector4 {
	return Vector4{Lerp(v.X, u.X, t), Lerp(v.Y, u.Y, t), Lerp(v.Z, u.Z, t), Lerp(v.W, u.W, t)}
}

func (v Vector4) ApplyMatrix4(m Matrix4) Vector4 {
	return Vector4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

func (v Vector4) XYZ() Vector3 { return Vector3{v.X, v.Y, v.Z} }

func (v Vector4) ApproxEqual(u Vector4, eps float64) bool {
	return ApproxEqual(v.X, u.X, eps) && ApproxEqual(v.Y, u.Y, eps) &&
		ApproxEqual(v.Z, u.Z, eps) && ApproxEqual(v.W, u.W, eps)
}

func (v Vector4) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, indexError(i, 4)
}

func (v *Vector4) SetComponent(i int, value float64) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		return indexError(i, 4)
	}
	return nil
}
