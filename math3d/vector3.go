package math3d

import "math"

type Vector3 struct {
	X, Y, Z float64
}

func Vec3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

func (v Vector3) Add(u Vector3) Vector3 { return Vector3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }
func (v Vector3) Sub(u Vector3) Vector3 { return Vector3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }
func (v Vector3) Mul(u Vector3) Vector3 { return Vector3{v.X * u.X, v.Y * u.Y, v.Z * u.Z} }

// Div divides componentwise, zero components of u give zero
func (v Vector3) Div(u Vector3) Vector3 {
	div := func(a, b float64) float64 {
		if b == 0 {
			return 0
		}
		return a / b
	}
	return Vector3{div(v.X, u.X), div(v.Y, u.Y), div(v.Z, u.Z)}
}

func (v Vector3) MulScalar(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

func (v Vector3) DivScalar(s float64) Vector3 {
	if s == 0 {
		return Vector3{}
	}
	return v.MulScalar(1 / s)
}

// AddScaled returns v + u*s
func (v Vector3) AddScaled(u Vector3, s float64) Vector3 {
	return Vector3{v.X + u.X*s, v.Y + u.Y*s, v.Z + u.Z*s}
}

func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

func (v Vector3) Dot(u Vector3) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

func (v Vector3) Cross(u Vector3) Vector3 {
	return Vector3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

func (v Vector3) LengthSq() float64        { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }
func (v Vector3) Length() float64          { return math.Sqrt(v.LengthSq()) }
func (v Vector3) ManhattanLength() float64 { return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z) }

func (v Vector3) Normalize() Vector3 { return v.DivScalar(v.Length()) }

func (v Vector3) SetLength(l float64) Vector3 { return v.Normalize().MulScalar(l) }

func (v Vector3) Distance(u Vector3) float64   { return v.Sub(u).Length() }
func (v Vector3) DistanceSq(u Vector3) float64 { return v.Sub(u).LengthSq() }

func (v Vector3) Lerp(u Vector3, t float64) Vector3 {
	return Vector3{Lerp(v.X, u.X, t), Lerp(v.Y, u.Y, t), Lerp(v.Z, u.Z, t)}
}

func (v Vector3) Min(u Vector3) Vector3 {
	return Vector3{math.Min(v.X, u.X), math.Min(v.Y, u.Y), math.Min(v.Z, u.Z)}
}

func (v Vector3) Max(u Vector3) Vector3 {
	return Vector3{math.Max(v.X, u.X), math.Max(v.Y, u.Y), math.Max(v.Z, u.Z)}
}

func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return Vector3{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y), Clamp(v.Z, min.Z, max.Z)}
}

func (v Vector3) ApplyMatrix3(m Matrix3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

func (v Vector3) ApplyNormalMatrix(m Matrix3) Vector3 {
	return v.ApplyMatrix3(m).Normalize()
}

// ApplyMatrix4 transforms v as a point and divides by the resulting w.
// A zero w skips the perspective divide.
func (v Vector3) ApplyMatrix4(m Matrix4) Vector3 {
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w == 0 {
		w = 1
	}
	iw := 1 / w
	return Vector3{
		(m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]) * iw,
		(m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]) * iw,
		(m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]) * iw,
	}
}

// TransformDirection applies the upper 3x3 of m and normalizes
func (v Vector3) TransformDirection(m Matrix4) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}.Normalize()
}

func (v Vector3) ApplyQuaternion(q Quaternion) Vector3 {
	// q * v * q^-1 expanded
	ix := q.W*v.X + q.Y*v.Z - q.Z*v.Y
	iy := q.W*v.Y + q.Z*v.X - q.X*v.Z
	iz := q.W*v.Z + q.X*v.Y - q.Y*v.X
	iw := -q.X*v.X - q.Y*v.Y - q.Z*v.Z

	return Vector3{
		ix*q.W + iw*-q.X + iy*-q.Z - iz*-q.Y,
		iy*q.W + iw*-q.Y + iz*-q.X - ix*-q.Z,
		iz*q.W + iw*-q.Z + ix*-q.Y - iy*-q.X,
	}
}

func (v Vector3) ApplyAxisAngle(axis Vector3, angle float64) Vector3 {
	return v.ApplyQuaternion(QuaternionFromAxisAngle(axis, angle))
}

func (v Vector3) ApplyEuler(e Euler) Vector3 {
	return v.ApplyQuaternion(QuaternionFromEuler(e))
}

func (v Vector3) ProjectOnVector(u Vector3) Vector3 {
	d := u.LengthSq()
	if d == 0 {
		return Vector3{}
	}
	return u.MulScalar(u.Dot(v) / d)
}

func (v Vector3) ProjectOnPlane(normal Vector3) Vector3 {
	return v.Sub(v.ProjectOnVector(normal))
}

// Reflect mirrors v against the plane orthogonal to normal, normal must be unit length
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

func (v Vector3) AngleTo(u Vector3) float64 {
	d := math.Sqrt(v.LengthSq() * u.LengthSq())
	if d == 0 {
		return math.Pi / 2
	}
	return acos(v.Dot(u) / d)
}

func (v Vector3) ApproxEqual(u Vector3, eps float64) bool {
	return ApproxEqual(v.X, u.X, eps) && ApproxEqual(v.Y, u.Y, eps) && ApproxEqual(v.Z, u.Z, eps)
}

func (v Vector3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, indexError(i, 3)
}

func (v *Vector3) SetComponent(i int, value float64) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return indexError(i, 3)
	}
	return nil
}

func Vector3FromMatrixPosition(m Matrix4) Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

func Vector3FromMatrixScale(m Matrix4) Vector3 {
	return Vector3{
		Vector3{m[0], m[1], m[2]}.Length(),
		Vector3{m[4], m[5], m[6]}.Length(),
		Vector3{m[8], m[9], m[10]}.Length(),
	}
}

// Vector3FromMatrixColumn returns xyz of column i of m
func Vector3FromMatrixColumn(m Matrix4, i int) (Vector3, error) {
	if i < 0 || i > 3 {
		return Vector3{}, indexError(i, 4)
	}
	return Vector3{m[i*4], m[i*4+1], m[i*4+2]}, nil
}
