package scene

import (
	"math"
	"testing"

	"github.com/mogaika/scene3d/math3d"
)

func TestChildFollowsRoot(t *testing.T) {
	g := NewGraph()
	child := g.NewObject("child")
	child.Position = math3d.Vec3(1, 0, 0)
	g.Root.Add(child)

	g.Root.UpdateMatrixWorld(true)
	if got, want := child.MatrixWorld().Position(), math3d.Vec3(1, 0, 0); got != want {
		t.Errorf("child world position=%v; expected %v", got, want)
	}

	g.Root.Position = math3d.Vec3(5, 0, 0)
	g.Root.UpdateMatrixWorld(true)
	if got, want := child.MatrixWorld().Position(), math3d.Vec3(6, 0, 0); got != want {
		t.Errorf("child world position=%v; expected %v", got, want)
	}
}

func TestForcedPropagation(t *testing.T) {
	for _, autoUpdate := range []bool{true, false} {
		g := NewGraph()
		a, b, c := g.NewObject("a"), g.NewObject("b"), g.NewObject("c")
		b.Position = math3d.Vec3(0, 1, 0)
		c.Position = math3d.Vec3(0, 0, 1)
		a.Add(b)
		b.Add(c)
		a.UpdateMatrixWorld(true)

		b.MatrixAutoUpdate = autoUpdate
		c.MatrixAutoUpdate = autoUpdate
		if b.MatrixWorldNeedsUpdate || c.MatrixWorldNeedsUpdate {
			t.Fatalf("dirty flags not cleared by update")
		}

		a.Position = math3d.Vec3(10, 0, 0)
		a.UpdateMatrixWorld(true)

		if got, want := b.MatrixWorld().Position(), math3d.Vec3(10, 1, 0); got != want {
			t.Errorf("autoUpdate=%v: b world position=%v; expected %v", autoUpdate, got, want)
		}
		if got, want := c.MatrixWorld().Position(), math3d.Vec3(10, 1, 1); got != want {
			t.Errorf("autoUpdate=%v: c world position=%v; expected %v", autoUpdate, got, want)
		}
	}
}

func TestUpdateMatrixWorldSkipsClean(t *testing.T) {
	g := NewGraph(WithMatrixAutoUpdate(false))
	a, b := g.NewObject("a"), g.NewObject("b")
	g.Root.Add(a)
	a.Add(b)

	b.Position = math3d.Vec3(1, 0, 0)
	g.Update()
	if got := b.MatrixWorld().Position(); got != (math3d.Vector3{}) {
		t.Errorf("b world position=%v; expected unchanged origin", got)
	}

	b.UpdateMatrix()
	g.Update()
	if got, want := b.MatrixWorld().Position(), math3d.Vec3(1, 0, 0); got != want {
		t.Errorf("b world position=%v; expected %v", got, want)
	}
	if b.MatrixWorldNeedsUpdate {
		t.Errorf("b.MatrixWorldNeedsUpdate still set")
	}
}

func TestUpdateWorldMatrix(t *testing.T) {
	_, n := newTree()
	n["a"].Position = math3d.Vec3(1, 0, 0)
	n["a1"].Position = math3d.Vec3(0, 1, 0)

	n["a1"].UpdateWorldMatrix(true, false)
	if got, want := n["a1"].MatrixWorld().Position(), math3d.Vec3(1, 1, 0); got != want {
		t.Errorf("a1 world position=%v; expected %v", got, want)
	}
	if got := n["a2"].MatrixWorld().Position(); got != (math3d.Vector3{}) {
		t.Errorf("sibling a2 was updated without updateChildren")
	}

	n["a"].UpdateWorldMatrix(false, true)
	if got, want := n["a2"].MatrixWorld().Position(), math3d.Vec3(1, 0, 0); got != want {
		t.Errorf("a2 world position=%v; expected %v", got, want)
	}
}

func TestWorldGetters(t *testing.T) {
	g := NewGraph()
	p, c := g.NewGroup("p"), g.NewObject("c")
	g.Root.Add(p)
	p.Add(c)

	p.Position = math3d.Vec3(0, 0, 2)
	p.Scale = math3d.Vec3(2, 2, 2)
	p.RotateY(math.Pi / 2)
	c.Position = math3d.Vec3(1, 0, 0)

	// no explicit update, getters refresh the parent chain
	if got, want := c.WorldPosition(), math3d.Vec3(0, 0, 0); !got.ApproxEqual(want, testEps) {
		t.Errorf("WorldPosition()=%v; expected %v", got, want)
	}
	if got, want := c.WorldScale(), math3d.Vec3(2, 2, 2); !got.ApproxEqual(want, testEps) {
		t.Errorf("WorldScale()=%v; expected %v", got, want)
	}
	wantQ := math3d.QuaternionFromAxisAngle(math3d.Vec3(0, 1, 0), math.Pi/2)
	if got := c.WorldQuaternion(); !got.OrientationEqual(wantQ, testEps) {
		t.Errorf("WorldQuaternion()=%v; expected %v", got, wantQ)
	}
	if got, want := c.WorldDirection(), math3d.Vec3(1, 0, 0); !got.ApproxEqual(want, testEps) {
		t.Errorf("WorldDirection()=%v; expected %v", got, want)
	}

	local := math3d.Vec3(0, 1, 0)
	world := c.LocalToWorld(local)
	if want := math3d.Vec3(0, 2, 0); !world.ApproxEqual(want, testEps) {
		t.Errorf("LocalToWorld(%v)=%v; expected %v", local, world, want)
	}
	if back := c.WorldToLocal(world); !back.ApproxEqual(local, testEps) {
		t.Errorf("WorldToLocal(LocalToWorld(%v))=%v", local, back)
	}
}

func TestLookAt(t *testing.T) {
	var tests = []struct {
		kind Kind
		// expected world +z axis
		zAxis math3d.Vector3
	}{
		{KindObject, math3d.Vec3(1, 0, 0)},
		{KindGroup, math3d.Vec3(1, 0, 0)},
		{KindCamera, math3d.Vec3(-1, 0, 0)},
		{KindLight, math3d.Vec3(-1, 0, 0)},
	}

	for _, test := range tests {
		g := NewGraph()
		parent := g.NewGroup("parent")
		parent.Position = math3d.Vec3(0, 0, 3)
		parent.RotateY(0.7)
		o := g.New(test.kind, "o")
		g.Root.Add(parent)
		parent.Add(o)

		o.LookAt(math3d.Vec3(4, 0, 3))
		o.UpdateWorldMatrix(true, false)

		z, _ := math3d.Vector3FromMatrixColumn(o.MatrixWorld(), 2)
		if !z.Normalize().ApproxEqual(test.zAxis, testEps) {
			t.Errorf("%v: world z axis=%v; expected %v", test.kind, z, test.zAxis)
		}
		if dir := o.WorldDirection(); !dir.ApproxEqual(math3d.Vec3(1, 0, 0), testEps) {
			t.Errorf("%v: WorldDirection()=%v; expected to face the target", test.kind, dir)
		}
	}
}

func TestRotationView(t *testing.T) {
	g := NewGraph()
	o := g.NewObject("o")

	e := math3d.NewEuler(0.1, 0.2, 0.3, math3d.XYZ)
	o.SetRotation(e)
	if got := o.Rotation(); got != e {
		t.Errorf("Rotation()=%v; expected %v", got, e)
	}
	if want := math3d.QuaternionFromEuler(e); o.Quaternion != want {
		t.Errorf("Quaternion=%v; expected %v", o.Quaternion, want)
	}

	o.RotateX(0.5)
	want := math3d.EulerFromQuaternion(o.Quaternion, math3d.XYZ)
	if got := o.Rotation(); !got.ApproxEqual(want, testEps) {
		t.Errorf("Rotation() after RotateX=%v; expected %v", got, want)
	}

	o.SetRotationOrder(math3d.ZYX)
	got := o.Rotation()
	if got.Order != math3d.ZYX {
		t.Errorf("Rotation().Order=%v; expected ZYX", got.Order)
	}
	if q := math3d.QuaternionFromEuler(got); !q.OrientationEqual(o.Quaternion, testEps) {
		t.Errorf("SetRotationOrder changed the rotation: %v vs %v", q, o.Quaternion)
	}

	o.SetRotationFromQuaternion(math3d.IdentityQuaternion())
	if got := o.Rotation(); got != math3d.NewEuler(0, 0, 0, math3d.ZYX) {
		t.Errorf("Rotation() of identity=%v; expected zero angles in ZYX", got)
	}
}

func TestTransformEdits(t *testing.T) {
	g := NewGraph()
	o := g.NewObject("o")

	o.RotateY(math.Pi / 2)
	o.TranslateZ(2)
	if want := math3d.Vec3(2, 0, 0); !o.Position.ApproxEqual(want, testEps) {
		t.Errorf("Position after TranslateZ=%v; expected %v", o.Position, want)
	}
	o.TranslateX(1)
	o.TranslateY(1)
	if want := math3d.Vec3(2, 1, -1); !o.Position.ApproxEqual(want, testEps) {
		t.Errorf("Position after TranslateX/Y=%v; expected %v", o.Position, want)
	}

	// local and world axis rotations differ once rotated
	a, b := g.NewObject("a"), g.NewObject("b")
	a.RotateX(math.Pi / 2)
	b.RotateX(math.Pi / 2)
	a.RotateOnAxis(math3d.Vec3(0, 1, 0), math.Pi/2)
	b.RotateOnWorldAxis(math3d.Vec3(0, 1, 0), math.Pi/2)
	if a.Quaternion.OrientationEqual(b.Quaternion, 1e-6) {
		t.Errorf("RotateOnAxis and RotateOnWorldAxis gave the same result")
	}
	wantA := math3d.QuaternionFromAxisAngle(math3d.Vec3(1, 0, 0), math.Pi/2).
		Mul(math3d.QuaternionFromAxisAngle(math3d.Vec3(0, 1, 0), math.Pi/2))
	if !a.Quaternion.ApproxEqual(wantA, testEps) {
		t.Errorf("RotateOnAxis=%v; expected %v", a.Quaternion, wantA)
	}

	c := g.NewObject("c")
	c.Position = math3d.Vec3(1, 0, 0)
	c.ApplyMatrix4(math3d.MakeTranslation(0, 2, 0).Mul(math3d.MakeScale(3, 3, 3)))
	if want := math3d.Vec3(3, 2, 0); !c.Position.ApproxEqual(want, testEps) {
		t.Errorf("Position after ApplyMatrix4=%v; expected %v", c.Position, want)
	}
	if want := math3d.Vec3(3, 3, 3); !c.Scale.ApproxEqual(want, testEps) {
		t.Errorf("Scale after ApplyMatrix4=%v; expected %v", c.Scale, want)
	}

	q := math3d.QuaternionFromAxisAngle(math3d.Vec3(0, 0, 1), 0.4)
	c.ApplyQuaternion(q)
	if !c.Quaternion.ApproxEqual(q, testEps) {
		t.Errorf("Quaternion after ApplyQuaternion=%v; expected %v", c.Quaternion, q)
	}

	c.SetRotationFromMatrix(math3d.MakeRotationZ(0.4))
	if !c.Quaternion.ApproxEqual(q, testEps) {
		t.Errorf("SetRotationFromMatrix=%v; expected %v", c.Quaternion, q)
	}
	c.SetRotationFromEuler(math3d.NewEuler(0, 0, 0.4, math3d.XYZ))
	if !c.Quaternion.ApproxEqual(q, testEps) {
		t.Errorf("SetRotationFromEuler=%v; expected %v", c.Quaternion, q)
	}
}
