package scene

import (
	"time"

	"github.com/google/uuid"

	"github.com/mogaika/scene3d/math3d"
)

// NodeState is a detached copy of the state of one node
type NodeState struct {
	ID       uint64         `json:"id"`
	UUID     uuid.UUID      `json:"uuid"`
	Name     string         `json:"name"`
	Kind     Kind           `json:"kind"`
	Parent   uint64         `json:"parent,omitempty"`
	Depth    int            `json:"depth"`
	Visible  bool           `json:"visible"`
	Layers   uint32         `json:"layers"`
	Position math3d.Vector3 `json:"position"`
	Rotation math3d.Euler   `json:"rotation"`
	Scale    math3d.Vector3 `json:"scale"`
	World    [16]float64    `json:"world"`
	Children []uint64       `json:"children,omitempty"`
}

// Snapshot is the flattened pre-order list of a subtree. It shares no
// memory with the graph.
type Snapshot struct {
	Tick  uint64      `json:"tick"`
	Time  time.Time   `json:"time"`
	Nodes []NodeState `json:"nodes"`
}

func TakeSnapshot(root *Object3D) Snapshot {
	var s Snapshot
	root.Traverse(func(o *Object3D) {
		st := NodeState{
			ID:       o.id,
			UUID:     o.uuid,
			Name:     o.Name,
			Kind:     o.kind,
			Depth:    o.Depth(),
			Visible:  o.Visible,
			Layers:   o.Layers.Mask,
			Position: o.Position,
			Rotation: o.Rotation(),
			Scale:    o.Scale,
			World:    o.matrixWorld,
		}
		if o.parent != nil {
			st.Parent = o.parent.id
		}
		for _, c := range o.children {
			st.Children = append(st.Children, c.id)
		}
		s.Nodes = append(s.Nodes, st)
	})
	return s
}

// Node finds a node state by id
func (s *Snapshot) Node(id uint64) (NodeState, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeState{}, false
}
