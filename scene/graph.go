package scene

// Graph owns a tree of nodes and hands out their ids. Ids start at 1 with
// the root and are never reused.
type Graph struct {
	Root *Object3D

	nextID           uint64
	names            nameGenerator
	matrixAutoUpdate bool
}

type GraphOption func(*Graph)

// WithAutoNames gives unique random names to nodes created without one
func WithAutoNames(seed int64) GraphOption {
	return func(g *Graph) {
		g.names = newNameGenerator(seed)
	}
}

// WithMatrixAutoUpdate sets the initial MatrixAutoUpdate of new nodes
func WithMatrixAutoUpdate(enabled bool) GraphOption {
	return func(g *Graph) {
		g.matrixAutoUpdate = enabled
	}
}

func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{matrixAutoUpdate: true}
	for _, opt := range opts {
		opt(g)
	}
	g.Root = g.New(KindScene, "scene")
	return g
}

// New allocates a detached node of the given kind
func (g *Graph) New(kind Kind, name string) *Object3D {
	if g.names != nil {
		if name == "" {
			name = g.names.next()
		} else {
			g.names.reserve(name)
		}
	}
	g.nextID++
	o := newObject3D(g, g.nextID, kind, name)
	o.MatrixAutoUpdate = g.matrixAutoUpdate
	return o
}

func (g *Graph) NewObject(name string) *Object3D { return g.New(KindObject, name) }
func (g *Graph) NewGroup(name string) *Object3D  { return g.New(KindGroup, name) }
func (g *Graph) NewCamera(name string) *Object3D { return g.New(KindCamera, name) }
func (g *Graph) NewLight(name string) *Object3D  { return g.New(KindLight, name) }
func (g *Graph) NewBone(name string) *Object3D   { return g.New(KindBone, name) }

// Update refreshes world matrices of everything attached to Root
func (g *Graph) Update() {
	g.Root.UpdateMatrixWorld(false)
}

// Len is the number of ids handed out so far, detached nodes included
func (g *Graph) Len() int {
	return int(g.nextID)
}
