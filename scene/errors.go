package scene

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/mogaika/scene3d/math3d"
)

var (
	ErrNotObject    = errors.New("object is not an Object3D")
	ErrSelfAttach   = errors.New("object can't be added as a child of itself")
	ErrCycle        = errors.New("object can't be added as a child of its own descendant")
	ErrForeignGraph = errors.New("object belongs to another graph")
)

// scene shares the diagnostics logger of math3d, see math3d.SetLogger
func logger() *slog.Logger {
	return math3d.Logger()
}
