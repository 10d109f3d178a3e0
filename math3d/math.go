// Package math3d is the affine and rotation algebra used by the scene graph:
// vectors, 3x3 and 4x4 matrices, quaternions and euler angles.
//
// All types are plain values. Methods never mutate their receiver unless the
// method name starts with Set, so values can be shared freely between call
// sites without scratch storage.
package math3d

import (
	"math"

	"github.com/pkg/errors"
)

const Epsilon = 1e-10

// gimbal lock threshold for the asin argument in euler extraction
const gimbalThreshold = 0.9999999

var (
	ErrIndexOutOfRange = errors.New("index is out of range")
	ErrSingularMatrix  = errors.New("can't invert matrix, determinant is 0")
)

func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EuclideanModulo returns n mod m in range [0, m)
func EuclideanModulo(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}

func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// clamped asin and acos, float rounding can push |x| a bit over 1
func asin(x float64) float64 { return math.Asin(Clamp(x, -1, 1)) }
func acos(x float64) float64 { return math.Acos(Clamp(x, -1, 1)) }

// invertibleDeterminant rejects zero, NaN and values so small that 1/det overflows
func invertibleDeterminant(det float64) bool {
	if det == 0 || math.IsNaN(det) {
		return false
	}
	return !math.IsInf(1/det, 0)
}

func indexError(i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, valid range is [0,%d)", i, n)
}
