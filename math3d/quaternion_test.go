package math3d

import (
	"math"
	"math/rand"
	"testing"
)

func TestQuaternionNormalize(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		q := Quaternion{r.NormFloat64() * 10, r.NormFloat64(), r.NormFloat64() * 0.01, r.NormFloat64()}
		if l := q.Normalize().Length(); !ApproxEqual(l, 1, 1e-12) {
			t.Errorf("%v.Normalize().Length()=%v; expected 1", q, l)
		}
	}
	if q := (Quaternion{}).Normalize(); q != IdentityQuaternion() {
		t.Errorf("zero Normalize()=%v; expected identity", q)
	}
}

func TestQuaternionSlerp(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		a, b := randUnitQuaternion(r), randUnitQuaternion(r)

		if res := a.Slerp(b, 0); res != a {
			t.Errorf("Slerp(a, b, 0)=%v; expected %v", res, a)
		}
		if res := a.Slerp(b, 1); res != b {
			t.Errorf("Slerp(a, b, 1)=%v; expected %v", res, b)
		}
		for _, tt := range []float64{0.1, 0.25, 0.5, 0.9} {
			if res := a.Slerp(a, tt); !res.ApproxEqual(a, 1e-9) {
				t.Errorf("Slerp(q, q, %v)=%v; expected %v", tt, res, a)
			}
			if l := a.Slerp(b, tt).Length(); !ApproxEqual(l, 1, 1e-9) {
				t.Errorf("Slerp length=%v; expected 1", l)
			}
		}
	}
}

func TestQuaternionSlerpShortestArc(t *testing.T) {
	a := IdentityQuaternion()
	b := QuaternionFromAxisAngle(Vec3(0, 0, 1), math.Pi/2)

	half := a.Slerp(b, 0.5)
	halfNeg := a.Slerp(b.Negate(), 0.5)
	expected := QuaternionFromAxisAngle(Vec3(0, 0, 1), math.Pi/4)

	if !half.OrientationEqual(expected, 1e-12) {
		t.Errorf("Slerp midway=%v; expected %v", half, expected)
	}
	if !halfNeg.OrientationEqual(expected, 1e-12) {
		t.Errorf("Slerp to negated target=%v; expected %v", halfNeg, expected)
	}

	// nearly parallel inputs take the linear path and must not produce NaN
	c := QuaternionFromAxisAngle(Vec3(0, 1, 0), 1e-7)
	res := a.Slerp(c, 0.5)
	if math.IsNaN(res.W) || !ApproxEqual(res.Length(), 1, 1e-12) {
		t.Errorf("Slerp of near parallel quaternions=%v", res)
	}
}

func TestQuaternionAxisAngle(t *testing.T) {
	var tests = []struct {
		axis  Vector3
		angle float64
	}{
		{Vec3(1, 0, 0), 0.5},
		{Vec3(0, 1, 0), 2},
		{Vec3(0, 0, -1), 3},
		{Vec3(1, 1, 1).Normalize(), 1},
	}
	for _, test := range tests {
		q := QuaternionFromAxisAngle(test.axis, test.angle)
		axis, angle := q.AxisAngle()
		if !axis.ApproxEqual(test.axis, 1e-9) || !ApproxEqual(angle, test.angle, 1e-9) {
			t.Errorf("AxisAngle()=%v,%v; expected %v,%v", axis, angle, test.axis, test.angle)
		}
	}
	if axis, angle := IdentityQuaternion().AxisAngle(); axis != Vec3(1, 0, 0) || angle != 0 {
		t.Errorf("identity AxisAngle()=%v,%v", axis, angle)
	}
}

func TestQuaternionFromRotationMatrixBranches(t *testing.T) {
	// the 180 degree rotations have a negative trace and each picks a
	// different diagonal pivot
	var tests = []struct {
		in  Matrix4
		out Quaternion
	}{
		{Identity4(), IdentityQuaternion()},
		{MakeRotationX(math.Pi), QuaternionFromAxisAngle(Vec3(1, 0, 0), math.Pi)},
		{MakeRotationY(math.Pi), QuaternionFromAxisAngle(Vec3(0, 1, 0), math.Pi)},
		{MakeRotationZ(math.Pi), QuaternionFromAxisAngle(Vec3(0, 0, 1), math.Pi)},
		{MakeRotationAxis(Vec3(1, 1, 0).Normalize(), 3), QuaternionFromAxisAngle(Vec3(1, 1, 0).Normalize(), 3)},
	}
	for _, test := range tests {
		if q := QuaternionFromRotationMatrix(test.in); !q.OrientationEqual(test.out, 1e-9) {
			t.Errorf("QuaternionFromRotationMatrix(%v)=%v; expected %v", test.in, q, test.out)
		}
	}

	r := rand.New(rand.NewSource(8))
	for i := 0; i < 100; i++ {
		q := randUnitQuaternion(r)
		if back := QuaternionFromRotationMatrix(MakeRotationFromQuaternion(q)); !back.OrientationEqual(q, 1e-9) {
			t.Errorf("QuaternionFromRotationMatrix(MakeRotationFromQuaternion(%v))=%v", q, back)
		}
	}
}

func TestQuaternionFromUnitVectors(t *testing.T) {
	var tests = []struct {
		from, to Vector3
	}{
		{Vec3(1, 0, 0), Vec3(0, 1, 0)},
		{Vec3(0, 0, 1), Vec3(0, 0, 1)},
		{Vec3(1, 0, 0), Vec3(-1, 0, 0)},
		{Vec3(0, 0, 1), Vec3(0, 0, -1)},
		{Vec3(1, 2, 3).Normalize(), Vec3(-3, 0, 1).Normalize()},
	}
	for _, test := range tests {
		q := QuaternionFromUnitVectors(test.from, test.to)
		if res := test.from.ApplyQuaternion(q); !res.ApproxEqual(test.to, 1e-9) {
			t.Errorf("QuaternionFromUnitVectors(%v, %v) rotates to %v", test.from, test.to, res)
		}
	}
}

func TestQuaternionMulAndInvert(t *testing.T) {
	a := QuaternionFromAxisAngle(Vec3(0, 1, 0), 0.4)
	b := QuaternionFromAxisAngle(Vec3(1, 0, 0), 1.1)
	v := Vec3(0.3, -2, 5)

	// a*b applies b first
	expected := v.ApplyQuaternion(b).ApplyQuaternion(a)
	if res := v.ApplyQuaternion(a.Mul(b)); !res.ApproxEqual(expected, 1e-9) {
		t.Errorf("ApplyQuaternion(a*b)=%v; expected %v", res, expected)
	}
	if a.Mul(b) != b.Premul(a) {
		t.Errorf("Premul mismatch")
	}
	if res := a.Mul(a.Invert()); !res.ApproxEqual(IdentityQuaternion(), 1e-12) {
		t.Errorf("q*q^-1=%v", res)
	}
	if res := a.Conjugate(); !res.ApproxEqual(a.Invert(), 1e-12) {
		t.Errorf("unit Conjugate=%v != Invert=%v", res, a.Invert())
	}
}

func TestQuaternionRotateTowards(t *testing.T) {
	a := IdentityQuaternion()
	b := QuaternionFromAxisAngle(Vec3(0, 0, 1), 1)

	step := a.RotateTowards(b, 0.25)
	if angle := a.AngleTo(step); !ApproxEqual(angle, 0.25, 1e-9) {
		t.Errorf("rotated by %v; expected 0.25", angle)
	}
	if res := a.RotateTowards(b, 5); !res.OrientationEqual(b, 1e-12) {
		t.Errorf("RotateTowards overshoot=%v; expected %v", res, b)
	}
	if res := b.RotateTowards(b, 1); res != b {
		t.Errorf("RotateTowards self=%v", res)
	}
}
