package math3d

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// EulerOrder names the axes in the order their rotations are multiplied:
// XYZ is Rx * Ry * Rz, so z rotation is applied to a vector first.
type EulerOrder int

const (
	XYZ EulerOrder = iota
	YZX
	ZXY
	XZY
	YXZ
	ZYX
)

var eulerOrderNames = [...]string{
	XYZ: "XYZ",
	YZX: "YZX",
	ZXY: "ZXY",
	XZY: "XZY",
	YXZ: "YXZ",
	ZYX: "ZYX",
}

var EulerOrders = []EulerOrder{XYZ, YZX, ZXY, XZY, YXZ, ZYX}

func (o EulerOrder) Valid() bool { return o >= XYZ && o <= ZYX }

func (o EulerOrder) String() string {
	if o.Valid() {
		return eulerOrderNames[o]
	}
	return "EulerOrder(?)"
}

func ParseEulerOrder(s string) (EulerOrder, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for o, name := range eulerOrderNames {
		if name == s {
			return EulerOrder(o), nil
		}
	}
	return XYZ, errors.Errorf("unknown euler order %q", s)
}

func (o EulerOrder) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, errors.Errorf("invalid euler order %d", int(o))
	}
	return []byte(o.String()), nil
}

func (o *EulerOrder) UnmarshalText(text []byte) error {
	v, err := ParseEulerOrder(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Euler angles in radians
type Euler struct {
	X, Y, Z float64
	Order   EulerOrder
}

func NewEuler(x, y, z float64, order EulerOrder) Euler {
	return Euler{x, y, z, order}
}

// EulerFromRotationMatrix reads the upper 3x3 of m, which must be unscaled.
// When the middle axis is at +-90 degrees (gimbal lock) the first axis of
// the order takes the whole remaining rotation and the last one is zero.
func EulerFromRotationMatrix(m Matrix4, order EulerOrder) Euler {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]

	e := Euler{Order: order}

	switch order {
	case XYZ:
		e.Y = asin(m13)
		if math.Abs(m13) < gimbalThreshold {
			e.X = math.Atan2(-m23, m33)
			e.Z = math.Atan2(-m12, m11)
		} else {
			e.X = math.Atan2(m32, m22)
		}
	case YXZ:
		e.X = asin(-m23)
		if math.Abs(m23) < gimbalThreshold {
			e.Y = math.Atan2(m13, m33)
			e.Z = math.Atan2(m21, m22)
		} else {
			e.Y = math.Atan2(-m31, m11)
		}
	case ZXY:
		e.X = asin(m32)
		if math.Abs(m32) < gimbalThreshold {
			e.Y = math.Atan2(-m31, m33)
			e.Z = math.Atan2(-m12, m22)
		} else {
			e.Z = math.Atan2(m21, m11)
		}
	case ZYX:
		e.Y = asin(-m31)
		if math.Abs(m31) < gimbalThreshold {
			e.X = math.Atan2(m32, m33)
			e.Z = math.Atan2(m21, m11)
		} else {
			e.Z = math.Atan2(-m12, m22)
		}
	case YZX:
		e.Z = asin(m21)
		if math.Abs(m21) < gimbalThreshold {
			e.X = math.Atan2(-m23, m22)
			e.Y = math.Atan2(-m31, m11)
		} else {
			e.Y = math.Atan2(m13, m33)
		}
	case XZY:
		e.Z = asin(-m12)
		if math.Abs(m12) < gimbalThreshold {
			e.X = math.Atan2(m32, m22)
			e.Y = math.Atan2(m13, m11)
		} else {
			e.X = math.Atan2(-m23, m33)
		}
	default:
		Logger().Warn("EulerFromRotationMatrix: unknown rotation order", "order", int(order))
		e.Order = XYZ
	}

	return e
}

func EulerFromQuaternion(q Quaternion, order EulerOrder) Euler {
	return EulerFromRotationMatrix(MakeRotationFromQuaternion(q), order)
}

func EulerFromVector3(v Vector3, order EulerOrder) Euler {
	return Euler{v.X, v.Y, v.Z, order}
}

// Reorder returns the same rotation expressed in another order.
// Information may be lost near gimbal lock.
func (e Euler) Reorder(order EulerOrder) Euler {
	return EulerFromQuaternion(QuaternionFromEuler(e), order)
}

func (e Euler) Vector3() Vector3 { return Vector3{e.X, e.Y, e.Z} }

func (e Euler) ApproxEqual(b Euler, eps float64) bool {
	return e.Order == b.Order &&
		ApproxEqual(e.X, b.X, eps) && ApproxEqual(e.Y, b.Y, eps) && ApproxEqual(e.Z, b.Z, eps)
}
