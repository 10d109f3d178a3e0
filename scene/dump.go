package scene

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/mogaika/scene3d/math3d"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

// dumpNode drops back references so the dump reads as a plain tree
type dumpNode struct {
	ID       uint64
	Name     string
	Kind     Kind
	Visible  bool
	Position math3d.Vector3
	Rotation math3d.Euler
	Scale    math3d.Vector3
	World    math3d.Matrix4
	UserData map[string]interface{}
	Children []*dumpNode
}

func newDumpNode(o *Object3D) *dumpNode {
	d := &dumpNode{
		ID:       o.id,
		Name:     o.Name,
		Kind:     o.kind,
		Visible:  o.Visible,
		Position: o.Position,
		Rotation: o.Rotation(),
		Scale:    o.Scale,
		World:    o.matrixWorld,
	}
	if len(o.UserData) != 0 {
		d.UserData = o.UserData
	}
	for _, c := range o.children {
		d.Children = append(d.Children, newDumpNode(c))
	}
	return d
}

// Dump renders the subtree of o for debugging
func Dump(o *Object3D) string {
	return spewConfig.Sdump(newDumpNode(o))
}
