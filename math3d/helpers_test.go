package math3d

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"
)

const testEps = 1e-9

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func randUnitQuaternion(r *rand.Rand) Quaternion {
	for {
		q := Quaternion{r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1}
		if q.LengthSq() > 0.01 {
			return q.Normalize()
		}
	}
}

func randVector3(r *rand.Rand, scale float64) Vector3 {
	return Vector3{
		(r.Float64()*2 - 1) * scale,
		(r.Float64()*2 - 1) * scale,
		(r.Float64()*2 - 1) * scale,
	}
}

func hasNaN(m Matrix4) bool {
	for _, v := range m {
		if v != v {
			return true
		}
	}
	return false
}
