package math3d

import "math"

type Vector2 struct {
	X, Y float64
}

func Vec2(x, y float64) Vector2 { return Vector2{x, y} }

func (v Vector2) Add(u Vector2) Vector2 { return Vector2{v.X + u.X, v.Y + u.Y} }
func (v Vector2) Sub(u Vector2) Vector2 { return Vector2{v.X - u.X, v.Y - u.Y} }
func (v Vector2) Mul(u Vector2) Vector2 { return Vector2{v.X * u.X, v.Y * u.Y} }

func (v Vector2) MulScalar(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// DivScalar returns zero vector when s is zero
func (v Vector2) DivScalar(s float64) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / s)
}

func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

func (v Vector2) Dot(u Vector2) float64 { return v.X*u.X + v.Y*u.Y }

// Cross returns z component of the 3d cross product
func (v Vector2) Cross(u Vector2) float64 { return v.X*u.Y - v.Y*u.X }

func (v Vector2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vector2) Length() float64   { return math.Sqrt(v.LengthSq()) }

func (v Vector2) Normalize() Vector2 { return v.DivScalar(v.Length()) }

func (v Vector2) Distance(u Vector2) float64 { return v.Sub(u).Length() }

func (v Vector2) Lerp(u Vector2, t float64) Vector2 {
	return Vector2{Lerp(v.X, u.X, t), Lerp(v.Y, u.Y, t)}
}

func (v Vector2) Min(u Vector2) Vector2 { return Vector2{math.Min(v.X, u.X), math.Min(v.Y, u.Y)} }
func (v Vector2) Max(u Vector2) Vector2 { return Vector2{math.Max(v.X, u.X), math.Max(v.Y, u.Y)} }

func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y)}
}

// Angle of the vector relative to the positive x axis, in range [0, 2pi)
func (v Vector2) Angle() float64 {
	return math.Atan2(-v.Y, -v.X) + math.Pi
}

func (v Vector2) RotateAround(center Vector2, angle float64) Vector2 {
	s, c := math.Sincos(angle)
	d := v.Sub(center)
	return Vector2{
		d.X*c - d.Y*s + center.X,
		d.X*s + d.Y*c + center.Y,
	}
}

// ApplyMatrix3 treats v as a homogeneous point (x, y, 1)
func (v Vector2) ApplyMatrix3(m Matrix3) Vector2 {
	return Vector2{
		m[0]*v.X + m[3]*v.Y + m[6],
		m[1]*v.X + m[4]*v.Y + m[7],
	}
}

func (v Vector2) ApproxEqual(u Vector2, eps float64) bool {
	return ApproxEqual(v.X, u.X, eps) && ApproxEqual(v.Y, u.Y, eps)
}

func (v Vector2) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, indexError(i, 2)
}

func (v *Vector2) SetComponent(i int, value float64) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		return indexError(i, 2)
	}
	return nil
}
