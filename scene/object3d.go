// Package scene is the transform graph. Every node owns its local transform
// and caches its world matrix, which is refreshed top-down by
// UpdateMatrixWorld once per frame.
//
// The graph is not safe for concurrent use: all mutations have to be done
// before the traversal that reads world matrices. Hand TakeSnapshot results
// to other goroutines instead of nodes.
package scene

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/mogaika/scene3d/math3d"
)

var DefaultUp = math3d.Vec3(0, 1, 0)

type Object3D struct {
	id    uint64
	uuid  uuid.UUID
	kind  Kind
	graph *Graph

	Name string

	parent   *Object3D // weak, parent owns us through children
	children []*Object3D

	Up         math3d.Vector3
	Position   math3d.Vector3
	Quaternion math3d.Quaternion
	Scale      math3d.Vector3

	// euler view of Quaternion, valid while rotationSource == Quaternion
	rotation       math3d.Euler
	rotationSource math3d.Quaternion

	// local transform, rebuilt from Position/Quaternion/Scale when MatrixAutoUpdate is set
	Matrix      math3d.Matrix4
	matrixWorld math3d.Matrix4

	MatrixAutoUpdate       bool
	MatrixWorldNeedsUpdate bool

	Layers   Layers
	Visible  bool
	UserData map[string]interface{}
}

func newObject3D(g *Graph, id uint64, kind Kind, name string) *Object3D {
	return &Object3D{
		id:                     id,
		uuid:                   uuid.New(),
		kind:                   kind,
		graph:                  g,
		Name:                   name,
		Up:                     DefaultUp,
		Quaternion:             math3d.IdentityQuaternion(),
		Scale:                  math3d.Vec3(1, 1, 1),
		rotation:               math3d.Euler{Order: math3d.XYZ},
		rotationSource:         math3d.IdentityQuaternion(),
		Matrix:                 math3d.Identity4(),
		matrixWorld:            math3d.Identity4(),
		MatrixAutoUpdate:       true,
		MatrixWorldNeedsUpdate: false,
		Layers:                 NewLayers(),
		Visible:                true,
		UserData:               make(map[string]interface{}),
	}
}

func (o *Object3D) ID() uint64            { return o.id }
func (o *Object3D) UUID() uuid.UUID       { return o.uuid }
func (o *Object3D) Kind() Kind            { return o.kind }
func (o *Object3D) Graph() *Graph         { return o.graph }
func (o *Object3D) Parent() *Object3D     { return o.parent }
func (o *Object3D) ChildCount() int       { return len(o.children) }
func (o *Object3D) Child(i int) *Object3D { return o.children[i] }

// Children returns a copy of the ordered child list
func (o *Object3D) Children() []*Object3D {
	return append([]*Object3D(nil), o.children...)
}

// Rotation returns the euler angles of Quaternion in the current rotation
// order. The angles are recomputed only when Quaternion changed since the
// last read or SetRotation.
func (o *Object3D) Rotation() math3d.Euler {
	if o.Quaternion != o.rotationSource {
		o.rotation = math3d.EulerFromQuaternion(o.Quaternion, o.rotation.Order)
		o.rotationSource = o.Quaternion
	}
	return o.rotation
}

// SetRotation sets Quaternion from e, reading Rotation back returns e as is
func (o *Object3D) SetRotation(e math3d.Euler) {
	o.Quaternion = math3d.QuaternionFromEuler(e)
	o.rotation = e
	o.rotationSource = o.Quaternion
}

// SetRotationOrder keeps the rotation and re-expresses the euler view in order
func (o *Object3D) SetRotationOrder(order math3d.EulerOrder) {
	o.rotation = math3d.EulerFromQuaternion(o.Quaternion, order)
	o.rotationSource = o.Quaternion
}

// ApplyMatrix4 premultiplies the local transform by m and splits the result
// back into Position, Quaternion and Scale
func (o *Object3D) ApplyMatrix4(m math3d.Matrix4) {
	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}
	o.Matrix = o.Matrix.Premul(m)
	o.Position, o.Quaternion, o.Scale = o.Matrix.Decompose()
}

func (o *Object3D) ApplyQuaternion(q math3d.Quaternion) {
	o.Quaternion = o.Quaternion.Premul(q)
}

// SetRotationFromAxisAngle expects a normalized axis
func (o *Object3D) SetRotationFromAxisAngle(axis math3d.Vector3, angle float64) {
	o.Quaternion = math3d.QuaternionFromAxisAngle(axis, angle)
}

func (o *Object3D) SetRotationFromEuler(e math3d.Euler) {
	o.SetRotation(e)
}

// SetRotationFromMatrix expects the upper 3x3 of m to be a pure rotation
func (o *Object3D) SetRotationFromMatrix(m math3d.Matrix4) {
	o.Quaternion = math3d.QuaternionFromRotationMatrix(m)
}

func (o *Object3D) SetRotationFromQuaternion(q math3d.Quaternion) {
	o.Quaternion = q
}

// RotateOnAxis rotates around a normalized axis in object space
func (o *Object3D) RotateOnAxis(axis math3d.Vector3, angle float64) {
	o.Quaternion = o.Quaternion.Mul(math3d.QuaternionFromAxisAngle(axis, angle))
}

// RotateOnWorldAxis rotates around a normalized axis in world space.
// Rotated parents are not taken into account.
func (o *Object3D) RotateOnWorldAxis(axis math3d.Vector3, angle float64) {
	o.Quaternion = o.Quaternion.Premul(math3d.QuaternionFromAxisAngle(axis, angle))
}

func (o *Object3D) RotateX(angle float64) { o.RotateOnAxis(math3d.Vec3(1, 0, 0), angle) }
func (o *Object3D) RotateY(angle float64) { o.RotateOnAxis(math3d.Vec3(0, 1, 0), angle) }
func (o *Object3D) RotateZ(angle float64) { o.RotateOnAxis(math3d.Vec3(0, 0, 1), angle) }

// TranslateOnAxis moves along a normalized axis in object space
func (o *Object3D) TranslateOnAxis(axis math3d.Vector3, distance float64) {
	o.Position = o.Position.AddScaled(axis.ApplyQuaternion(o.Quaternion), distance)
}

func (o *Object3D) TranslateX(distance float64) { o.TranslateOnAxis(math3d.Vec3(1, 0, 0), distance) }
func (o *Object3D) TranslateY(distance float64) { o.TranslateOnAxis(math3d.Vec3(0, 1, 0), distance) }
func (o *Object3D) TranslateZ(distance float64) { o.TranslateOnAxis(math3d.Vec3(0, 0, 1), distance) }

// Clone returns a copy of o with a new id and uuid from the same graph.
// With recursive the whole subtree is cloned, otherwise the copy has no children.
func (o *Object3D) Clone(recursive bool) *Object3D {
	return cloneInto(o.graph, o, recursive)
}

func cloneInto(g *Graph, source *Object3D, recursive bool) *Object3D {
	var c *Object3D
	if g != nil {
		c = g.New(source.kind, source.Name)
	} else {
		c = newObject3D(nil, 0, source.kind, source.Name)
	}
	return c.Copy(source, recursive)
}

// Copy copies the transform and properties of source into o. Identity,
// kind and parent of o are kept. UserData values are shared. A nil source
// leaves o unchanged.
func (o *Object3D) Copy(source *Object3D, recursive bool) *Object3D {
	if source == nil {
		logger().Error("scene: copy failed", slog.Uint64("id", o.id), slog.Any("error", ErrNotObject))
		return o
	}
	o.Name = source.Name
	o.Up = source.Up
	o.Position = source.Position
	o.Quaternion = source.Quaternion
	o.Scale = source.Scale
	o.rotation = source.rotation
	o.rotationSource = source.rotationSource
	o.Matrix = source.Matrix
	o.matrixWorld = source.matrixWorld
	o.MatrixAutoUpdate = source.MatrixAutoUpdate
	o.MatrixWorldNeedsUpdate = source.MatrixWorldNeedsUpdate
	o.Layers = source.Layers
	o.Visible = source.Visible

	o.UserData = make(map[string]interface{}, len(source.UserData))
	for k, v := range source.UserData {
		o.UserData[k] = v
	}

	// children are cloned into the graph of o
	if recursive {
		for _, child := range source.children {
			o.Add(cloneInto(o.graph, child, true))
		}
	}
	return o
}
