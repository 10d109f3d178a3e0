package math3d

// Matrix3 is a 3x3 matrix stored column by column: element (row r, col c) is m[c*3+r].
type Matrix3 [9]float64

func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMatrix3 takes elements in row-major reading order
func NewMatrix3(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) Matrix3 {
	return Matrix3{
		n11, n21, n31,
		n12, n22, n32,
		n13, n23, n33,
	}
}

// Matrix3FromMatrix4 returns the upper left 3x3 of m
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Matrix3) Entry(row, col int) float64 { return m[col*3+row] }

// Mul returns m * b
func (m Matrix3) Mul(b Matrix3) Matrix3 {
	var r Matrix3
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			r[c*3+row] = m[row]*b[c*3] + m[3+row]*b[c*3+1] + m[6+row]*b[c*3+2]
		}
	}
	return r
}

// Premul returns b * m
func (m Matrix3) Premul(b Matrix3) Matrix3 { return b.Mul(m) }

func (m Matrix3) MulScalar(s float64) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m Matrix3) Determinant() float64 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]
	return a*e*i - a*f*h - b*d*i + b*f*g + c*d*h - c*e*g
}

// GetInverse returns the inverse of m. A singular m gives the identity and
// either ErrSingularMatrix (throwOnDegenerate) or a logged warning.
func (m Matrix3) GetInverse(throwOnDegenerate bool) (Matrix3, error) {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13
	if !invertibleDeterminant(det) {
		if throwOnDegenerate {
			return Identity3(), ErrSingularMatrix
		}
		Logger().Warn("Matrix3.GetInverse: "+ErrSingularMatrix.Error(), "det", det)
		return Identity3(), nil
	}

	detInv := 1 / det
	return Matrix3{
		t11 * detInv,
		(n31*n23 - n33*n21) * detInv,
		(n32*n21 - n31*n22) * detInv,

		t12 * detInv,
		(n33*n11 - n31*n13) * detInv,
		(n31*n12 - n32*n11) * detInv,

		t13 * detInv,
		(n21*n13 - n23*n11) * detInv,
		(n22*n11 - n21*n12) * detInv,
	}, nil
}

func (m Matrix3) Inverse() Matrix3 {
	inv, _ := m.GetInverse(false)
	return inv
}

func (m Matrix3) Transpose() Matrix3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// NormalMatrix returns inverse transpose of the upper 3x3 of m,
// used to transform normals by a non uniformly scaled matrix
func NormalMatrix(m Matrix4) Matrix3 {
	return Matrix3FromMatrix4(m).Inverse().Transpose()
}

func (m Matrix3) ApproxEqual(b Matrix3, eps float64) bool {
	for i := range m {
		if !ApproxEqual(m[i], b[i], eps) {
			return false
		}
	}
	return true
}
