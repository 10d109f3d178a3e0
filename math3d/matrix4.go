package math3d

import "math"

// Matrix4 is a 4x4 matrix stored column by column: element (row r, col c) is m[c*4+r].
// Translation lives in m[12], m[13], m[14].
type Matrix4 [16]float64

func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4 takes elements in row-major reading order
func NewMatrix4(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float64) Matrix4 {
	return Matrix4{
		n11, n21, n31, n41,
		n12, n22, n32, n42,
		n13, n23, n33, n43,
		n14, n24, n34, n44,
	}
}

func (m Matrix4) Entry(row, col int) float64 { return m[col*4+row] }

// Mul returns m * b
func (m Matrix4) Mul(b Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*b[c*4] + m[4+row]*b[c*4+1] + m[8+row]*b[c*4+2] + m[12+row]*b[c*4+3]
		}
	}
	return r
}

// Premul returns b * m
func (m Matrix4) Premul(b Matrix4) Matrix4 { return b.Mul(m) }

func (m Matrix4) MulScalar(s float64) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

func (m Matrix4) Determinant() float64 {
	n11, n12, n13, n14 := m[0], m[4], m[8], m[12]
	n21, n22, n23, n24 := m[1], m[5], m[9], m[13]
	n31, n32, n33, n34 := m[2], m[6], m[10], m[14]
	n41, n42, n43, n44 := m[3], m[7], m[11], m[15]

	return n41*(n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// GetInverse returns the inverse of m computed by cofactor expansion.
// A singular m gives the identity and either ErrSingularMatrix
// (throwOnDegenerate) or a logged warning with a nil error.
func (m Matrix4) GetInverse(throwOnDegenerate bool) (Matrix4, error) {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if !invertibleDeterminant(det) {
		if throwOnDegenerate {
			return Identity4(), ErrSingularMatrix
		}
		Logger().Warn("Matrix4.GetInverse: "+ErrSingularMatrix.Error(), "det", det)
		return Identity4(), nil
	}

	d := 1 / det
	return Matrix4{
		t11 * d,
		(n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * d,
		(n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * d,
		(n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * d,

		t12 * d,
		(n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * d,
		(n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * d,
		(n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * d,

		t13 * d,
		(n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * d,
		(n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * d,
		(n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * d,

		t14 * d,
		(n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * d,
		(n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * d,
		(n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * d,
	}, nil
}

// Inverse is GetInverse(false) without the error
func (m Matrix4) Inverse() Matrix4 {
	inv, _ := m.GetInverse(false)
	return inv
}

// Compose builds translation * rotation * scale
func Compose(position Vector3, q Quaternion, scale Vector3) Matrix4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	sx, sy, sz := scale.X, scale.Y, scale.Z

	return Matrix4{
		(1 - (yy + zz)) * sx, (xy + wz) * sx, (xz - wy) * sx, 0,
		(xy - wz) * sy, (1 - (xx + zz)) * sy, (yz + wx) * sy, 0,
		(xz + wy) * sz, (yz - wx) * sz, (1 - (xx + yy)) * sz, 0,
		position.X, position.Y, position.Z, 1,
	}
}

// Decompose splits an affine matrix into translation, rotation and scale.
// For a negative determinant the x scale is negated so the remaining
// rotation stays proper, so an all negative scale (-s, -s, -s) comes back
// as (-s, s, s) with a rotation turned by pi. Axes with zero scale get a
// basis vector orthogonal to the others.
func (m Matrix4) Decompose() (position Vector3, q Quaternion, scale Vector3) {
	cols := [3]Vector3{
		{m[0], m[1], m[2]},
		{m[4], m[5], m[6]},
		{m[8], m[9], m[10]},
	}
	scale = Vector3{cols[0].Length(), cols[1].Length(), cols[2].Length()}
	if m.Determinant() < 0 {
		scale.X = -scale.X
	}
	position = Vector3{m[12], m[13], m[14]}

	var zero [3]bool
	for i := range cols {
		s, _ := scale.Component(i)
		if s == 0 {
			zero[i] = true
		} else {
			cols[i] = cols[i].DivScalar(s)
		}
	}
	cols = completeBasis(cols, zero)

	r := MakeBasis(cols[0], cols[1], cols[2])
	q = QuaternionFromRotationMatrix(r).Normalize()
	return
}

// completeBasis replaces zero columns of an orthonormal set so the three
// columns form a right handed basis
func completeBasis(cols [3]Vector3, zero [3]bool) [3]Vector3 {
	var nonZero []int
	for i, z := range zero {
		if !z {
			nonZero = append(nonZero, i)
		}
	}

	switch len(nonZero) {
	case 0:
		return [3]Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	case 1:
		k := nonZero[0]
		c := cols[k]
		axis := Vector3{1, 0, 0}
		if math.Abs(c.X) > 0.9 {
			axis = Vector3{0, 1, 0}
		}
		u := c.Cross(axis).Normalize()
		cols[(k+1)%3] = u
		cols[(k+2)%3] = c.Cross(u)
	case 2:
		for i, z := range zero {
			if z {
				cols[i] = cols[(i+1)%3].Cross(cols[(i+2)%3]).Normalize()
			}
		}
	}
	return cols
}

func MakeTranslation(x, y, z float64) Matrix4 {
	return NewMatrix4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

func MakeScale(x, y, z float64) Matrix4 {
	return NewMatrix4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

func MakeShear(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return NewMatrix4(
		1, yx, zx, 0,
		xy, 1, zy, 0,
		xz, yz, 1, 0,
		0, 0, 0, 1,
	)
}

func MakeRotationX(theta float64) Matrix4 {
	s, c := math.Sincos(theta)
	return NewMatrix4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

func MakeRotationY(theta float64) Matrix4 {
	s, c := math.Sincos(theta)
	return NewMatrix4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

func MakeRotationZ(theta float64) Matrix4 {
	s, c := math.Sincos(theta)
	return NewMatrix4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// MakeRotationAxis rotates by angle radians around the normalized axis
func MakeRotationAxis(axis Vector3, angle float64) Matrix4 {
	s, c := math.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	tx, ty := t*x, t*y

	return NewMatrix4(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

func MakeRotationFromQuaternion(q Quaternion) Matrix4 {
	return Compose(Vector3{}, q, Vector3{1, 1, 1})
}

// MakeRotationFromEuler uses the closed form of each rotation order
func MakeRotationFromEuler(e Euler) Matrix4 {
	a, b := math.Cos(e.X), math.Sin(e.X)
	c, d := math.Cos(e.Y), math.Sin(e.Y)
	ec, f := math.Cos(e.Z), math.Sin(e.Z)

	m := Identity4()

	switch e.Order {
	case XYZ:
		ae, af, be, bf := a*ec, a*f, b*ec, b*f

		m[0], m[4], m[8] = c*ec, -c*f, d
		m[1], m[5], m[9] = af+be*d, ae-bf*d, -b*c
		m[2], m[6], m[10] = bf-ae*d, be+af*d, a*c
	case YXZ:
		ce, cf, de, df := c*ec, c*f, d*ec, d*f

		m[0], m[4], m[8] = ce+df*b, de*b-cf, a*d
		m[1], m[5], m[9] = a*f, a*ec, -b
		m[2], m[6], m[10] = cf*b-de, df+ce*b, a*c
	case ZXY:
		ce, cf, de, df := c*ec, c*f, d*ec, d*f

		m[0], m[4], m[8] = ce-df*b, -a*f, de+cf*b
		m[1], m[5], m[9] = cf+de*b, a*ec, df-ce*b
		m[2], m[6], m[10] = -a*d, b, a*c
	case ZYX:
		ae, af, be, bf := a*ec, a*f, b*ec, b*f

		m[0], m[4], m[8] = c*ec, be*d-af, ae*d+bf
		m[1], m[5], m[9] = c*f, bf*d+ae, af*d-be
		m[2], m[6], m[10] = -d, b*c, a*c
	case YZX:
		ac, ad, bc, bd := a*c, a*d, b*c, b*d

		m[0], m[4], m[8] = c*ec, bd-ac*f, bc*f+ad
		m[1], m[5], m[9] = f, a*ec, -b*ec
		m[2], m[6], m[10] = -d*ec, ad*f+bc, ac-bd*f
	case XZY:
		ac, ad, bc, bd := a*c, a*d, b*c, b*d

		m[0], m[4], m[8] = c*ec, -f, d*ec
		m[1], m[5], m[9] = ac*f+bd, a*ec, ad*f-bc
		m[2], m[6], m[10] = bc*f-ad, b*ec, bd*f+ac
	default:
		Logger().Warn("MakeRotationFromEuler: unknown rotation order", "order", int(e.Order))
	}

	return m
}

// ExtractRotation returns the rotation part of m with per column scale removed
func (m Matrix4) ExtractRotation() Matrix4 {
	r := Identity4()
	for c := 0; c < 3; c++ {
		col := Vector3{m[c*4], m[c*4+1], m[c*4+2]}.Normalize()
		r[c*4], r[c*4+1], r[c*4+2] = col.X, col.Y, col.Z
	}
	return r
}

func (m Matrix4) ExtractBasis() (x, y, z Vector3) {
	x = Vector3{m[0], m[1], m[2]}
	y = Vector3{m[4], m[5], m[6]}
	z = Vector3{m[8], m[9], m[10]}
	return
}

func MakeBasis(x, y, z Vector3) Matrix4 {
	return NewMatrix4(
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		0, 0, 0, 1,
	)
}

// LookAt replaces the rotation part of m with a basis whose +z axis points
// from target to eye. Translation and the last row are kept.
func (m Matrix4) LookAt(eye, target, up Vector3) Matrix4 {
	z := eye.Sub(target)
	if z.LengthSq() == 0 {
		// eye and target are in the same position
		z.Z = 1
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.LengthSq() == 0 {
		// up and z are parallel
		if math.Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	m[0], m[4], m[8] = x.X, y.X, z.X
	m[1], m[5], m[9] = x.Y, y.Y, z.Y
	m[2], m[6], m[10] = x.Z, y.Z, z.Z
	return m
}

func MakePerspective(left, right, top, bottom, near, far float64) Matrix4 {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)

	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	return NewMatrix4(
		x, 0, a, 0,
		0, y, b, 0,
		0, 0, c, d,
		0, 0, -1, 0,
	)
}

func MakeOrthographic(left, right, top, bottom, near, far float64) Matrix4 {
	w := 1 / (right - left)
	h := 1 / (top - bottom)
	p := 1 / (far - near)

	x := (right + left) * w
	y := (top + bottom) * h
	z := (far + near) * p

	return NewMatrix4(
		2*w, 0, 0, -x,
		0, 2*h, 0, -y,
		0, 0, -2*p, -z,
		0, 0, 0, 1,
	)
}

// Scale multiplies the first three columns by v
func (m Matrix4) Scale(v Vector3) Matrix4 {
	for r := 0; r < 4; r++ {
		m[r] *= v.X
		m[4+r] *= v.Y
		m[8+r] *= v.Z
	}
	return m
}

func (m Matrix4) MaxScaleOnAxis() float64 {
	sx := Vector3{m[0], m[1], m[2]}.LengthSq()
	sy := Vector3{m[4], m[5], m[6]}.LengthSq()
	sz := Vector3{m[8], m[9], m[10]}.LengthSq()
	return math.Sqrt(math.Max(sx, math.Max(sy, sz)))
}

func (m Matrix4) SetPosition(v Vector3) Matrix4 {
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

func (m Matrix4) Position() Vector3 { return Vector3{m[12], m[13], m[14]} }

func (m Matrix4) ApproxEqual(b Matrix4, eps float64) bool {
	for i := range m {
		if !ApproxEqual(m[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}
