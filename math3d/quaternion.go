package math3d

import "math"

// Quaternion is a rotation (X, Y, Z) * sin(angle/2), W = cos(angle/2).
// Results of rotation operations are unit length only when inputs are.
type Quaternion struct {
	X, Y, Z, W float64
}

func IdentityQuaternion() Quaternion { return Quaternion{W: 1} }

// QuaternionFromAxisAngle expects a normalized axis
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

func QuaternionFromEuler(e Euler) Quaternion {
	s1, c1 := math.Sincos(e.X / 2)
	s2, c2 := math.Sincos(e.Y / 2)
	s3, c3 := math.Sincos(e.Z / 2)

	switch e.Order {
	case XYZ:
		return Quaternion{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case YXZ:
		return Quaternion{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case ZXY:
		return Quaternion{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case ZYX:
		return Quaternion{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case YZX:
		return Quaternion{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case XZY:
		return Quaternion{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	}
	Logger().Warn("QuaternionFromEuler: unknown rotation order", "order", int(e.Order))
	return IdentityQuaternion()
}

// QuaternionFromRotationMatrix reads the upper 3x3 of m, which must be a
// pure (unscaled) rotation. The pivot is the largest of the trace and the
// diagonal so the divisor never gets close to zero.
func QuaternionFromRotationMatrix(m Matrix4) Quaternion {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]

	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return Quaternion{
			(m32 - m23) * s,
			(m13 - m31) * s,
			(m21 - m12) * s,
			0.25 / s,
		}
	case m11 > m22 && m11 > m33:
		s := 2 * math.Sqrt(1+m11-m22-m33)
		return Quaternion{
			0.25 * s,
			(m12 + m21) / s,
			(m13 + m31) / s,
			(m32 - m23) / s,
		}
	case m22 > m33:
		s := 2 * math.Sqrt(1+m22-m11-m33)
		return Quaternion{
			(m12 + m21) / s,
			0.25 * s,
			(m23 + m32) / s,
			(m13 - m31) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m33-m11-m22)
		return Quaternion{
			(m13 + m31) / s,
			(m23 + m32) / s,
			0.25 * s,
			(m21 - m12) / s,
		}
	}
}

// QuaternionFromUnitVectors returns the rotation of unit vector from onto unit vector to
func QuaternionFromUnitVectors(from, to Vector3) Quaternion {
	r := from.Dot(to) + 1

	var q Quaternion
	if r < Epsilon {
		// opposite vectors, pick any orthogonal axis
		r = 0
		if math.Abs(from.X) > math.Abs(from.Z) {
			q = Quaternion{-from.Y, from.X, 0, r}
		} else {
			q = Quaternion{0, -from.Z, from.Y, r}
		}
	} else {
		q = Quaternion{
			from.Y*to.Z - from.Z*to.Y,
			from.Z*to.X - from.X*to.Z,
			from.X*to.Y - from.Y*to.X,
			r,
		}
	}
	return q.Normalize()
}

// Mul returns q * b, applying b first when rotating a vector
func (q Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{
		q.X*b.W + q.W*b.X + q.Y*b.Z - q.Z*b.Y,
		q.Y*b.W + q.W*b.Y + q.Z*b.X - q.X*b.Z,
		q.Z*b.W + q.W*b.Z + q.X*b.Y - q.Y*b.X,
		q.W*b.W - q.X*b.X - q.Y*b.Y - q.Z*b.Z,
	}
}

// Premul returns b * q
func (q Quaternion) Premul(b Quaternion) Quaternion { return b.Mul(q) }

func (q Quaternion) Dot(b Quaternion) float64 {
	return q.X*b.X + q.Y*b.Y + q.Z*b.Z + q.W*b.W
}

func (q Quaternion) LengthSq() float64 { return q.Dot(q) }
func (q Quaternion) Length() float64   { return math.Sqrt(q.LengthSq()) }

// Normalize returns the identity for a zero quaternion
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return IdentityQuaternion()
	}
	l = 1 / l
	return Quaternion{q.X * l, q.Y * l, q.Z * l, q.W * l}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Invert equals Conjugate for unit quaternions
func (q Quaternion) Invert() Quaternion {
	l := q.LengthSq()
	if l == 0 {
		return IdentityQuaternion()
	}
	c := q.Conjugate()
	return Quaternion{c.X / l, c.Y / l, c.Z / l, c.W / l}
}

func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// AngleTo returns the rotation angle between two unit quaternions
func (q Quaternion) AngleTo(b Quaternion) float64 {
	return 2 * math.Acos(math.Abs(Clamp(q.Dot(b), -1, 1)))
}

// RotateTowards rotates q to b by at most step radians
func (q Quaternion) RotateTowards(b Quaternion, step float64) Quaternion {
	angle := q.AngleTo(b)
	if angle == 0 {
		return q
	}
	return q.Slerp(b, math.Min(1, step/angle))
}

// Slerp interpolates along the shortest great circle arc between q and b.
func (q Quaternion) Slerp(b Quaternion, t float64) Quaternion {
	if t == 0 {
		return q
	}
	if t == 1 {
		return b
	}

	cosHalfTheta := q.Dot(b)
	if cosHalfTheta < 0 {
		b = b.Negate()
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta >= 1 {
		return q
	}

	sqrSinHalfTheta := 1 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta <= Epsilon {
		// nearly parallel, sin term is too small to divide by
		s := 1 - t
		return Quaternion{
			s*q.X + t*b.X,
			s*q.Y + t*b.Y,
			s*q.Z + t*b.Z,
			s*q.W + t*b.W,
		}.Normalize()
	}

	sinHalfTheta := math.Sqrt(sqrSinHalfTheta)
	halfTheta := math.Atan2(sinHalfTheta, cosHalfTheta)
	ratioA := math.Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := math.Sin(t*halfTheta) / sinHalfTheta

	return Quaternion{
		q.X*ratioA + b.X*ratioB,
		q.Y*ratioA + b.Y*ratioB,
		q.Z*ratioA + b.Z*ratioB,
		q.W*ratioA + b.W*ratioB,
	}
}

func SlerpQuaternions(a, b Quaternion, t float64) Quaternion { return a.Slerp(b, t) }

// AxisAngle returns the rotation axis and angle of a unit quaternion.
// Near zero rotation the axis is arbitrary and reported as +x.
func (q Quaternion) AxisAngle() (axis Vector3, angle float64) {
	angle = 2 * acos(q.W)
	s := math.Sqrt(1 - Clamp(q.W*q.W, 0, 1))
	if s < 0.0001 {
		return Vector3{1, 0, 0}, angle
	}
	return Vector3{q.X / s, q.Y / s, q.Z / s}, angle
}

func (q Quaternion) ApproxEqual(b Quaternion, eps float64) bool {
	return ApproxEqual(q.X, b.X, eps) && ApproxEqual(q.Y, b.Y, eps) &&
		ApproxEqual(q.Z, b.Z, eps) && ApproxEqual(q.W, b.W, eps)
}

// OrientationEqual treats q and -q as the same rotation
func (q Quaternion) OrientationEqual(b Quaternion, eps float64) bool {
	return q.ApproxEqual(b, eps) || q.ApproxEqual(b.Negate(), eps)
}

func (q Quaternion) Component(i int) (float64, error) {
	switch i {
	case 0:
		return q.X, nil
	case 1:
		return q.Y, nil
	case 2:
		return q.Z, nil
	case 3:
		return q.W, nil
	}
	return 0, indexError(i, 4)
}

func (q *Quaternion) SetComponent(i int, value float64) error {
	switch i {
	case 0:
		q.X = value
	case 1:
		q.Y = value
	case 2:
		q.Z = value
	case 3:
		q.W = value
	default:
		return indexError(i, 4)
	}
	return nil
}
