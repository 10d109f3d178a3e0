package scene

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/mogaika/scene3d/math3d"
)

const testEps = 1e-9

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	math3d.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { math3d.SetLogger(nil) })
	return &buf
}

func ids(nodes []*Object3D) []uint64 {
	result := make([]uint64, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, n.ID())
	}
	return result
}

func equalIDs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// newTree builds
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
//	    └── b1
func newTree() (*Graph, map[string]*Object3D) {
	g := NewGraph()
	n := map[string]*Object3D{"root": g.Root}
	for _, name := range []string{"a", "a1", "a2", "b", "b1"} {
		n[name] = g.NewObject(name)
	}
	g.Root.Add(n["a"], n["b"])
	n["a"].Add(n["a1"], n["a2"])
	n["b"].Add(n["b1"])
	return g, n
}
