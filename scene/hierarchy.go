package scene

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// isAncestorOf reports whether o is c or one of the parents of c
func (o *Object3D) isAncestorOf(c *Object3D) bool {
	for p := c; p != nil; p = p.parent {
		if p == o {
			return true
		}
	}
	return false
}

func (o *Object3D) checkChild(child *Object3D) error {
	switch {
	case child == nil:
		return ErrNotObject
	case child == o:
		return errors.Wrapf(ErrSelfAttach, "add %q", child.Name)
	case child.graph != o.graph:
		return errors.Wrapf(ErrForeignGraph, "add %q to %q", child.Name, o.Name)
	case child.isAncestorOf(o):
		return errors.Wrapf(ErrCycle, "add %q to %q", child.Name, o.Name)
	}
	return nil
}

// Add appends objects to the child list of o. An object that already has a
// parent is detached from it first, so adding the same object twice keeps a
// single entry. Rejected objects are logged and skipped, the rest are still
// added and the first error is returned.
func (o *Object3D) Add(objects ...*Object3D) error {
	var first error
	for _, child := range objects {
		if err := o.checkChild(child); err != nil {
			logger().Error("scene: add failed", slog.Uint64("parent", o.id), slog.Any("error", err))
			if first == nil {
				first = err
			}
			continue
		}

		if child.parent != nil {
			child.parent.Remove(child)
		}
		child.parent = o
		o.children = append(o.children, child)
	}
	return first
}

// Remove detaches objects that are children of o. Others are ignored.
// Detached subtrees stay valid and can be added again.
func (o *Object3D) Remove(objects ...*Object3D) {
	for _, child := range objects {
		if child == nil {
			continue
		}
		for i, c := range o.children {
			if c == child {
				child.parent = nil
				o.children = append(o.children[:i], o.children[i+1:]...)
				break
			}
		}
	}
}

func (o *Object3D) RemoveFromParent() {
	if o.parent != nil {
		o.parent.Remove(o)
	}
}

// Clear detaches all children
func (o *Object3D) Clear() {
	for _, c := range o.children {
		c.parent = nil
	}
	o.children = nil
}

// Attach reparents child under o keeping its world transform
func (o *Object3D) Attach(child *Object3D) error {
	if err := o.checkChild(child); err != nil {
		logger().Error("scene: attach failed", slog.Uint64("parent", o.id), slog.Any("error", err))
		return err
	}

	o.UpdateWorldMatrix(true, false)
	m := o.matrixWorld.Inverse()
	if child.parent != nil {
		child.parent.UpdateWorldMatrix(true, false)
		m = m.Mul(child.parent.matrixWorld)
	}
	child.ApplyMatrix4(m)

	o.Add(child)
	child.UpdateWorldMatrix(false, true)
	return nil
}

func (o *Object3D) findObject(match func(*Object3D) bool) *Object3D {
	if match(o) {
		return o
	}
	for _, c := range o.children {
		if found := c.findObject(match); found != nil {
			return found
		}
	}
	return nil
}

// ObjectByID searches the subtree of o, o included
func (o *Object3D) ObjectByID(id uint64) *Object3D {
	return o.findObject(func(n *Object3D) bool { return n.id == id })
}

// ObjectByName returns the first node in pre-order with the given name
func (o *Object3D) ObjectByName(name string) *Object3D {
	return o.findObject(func(n *Object3D) bool { return n.Name == name })
}

func (o *Object3D) ObjectByUUID(id uuid.UUID) *Object3D {
	return o.findObject(func(n *Object3D) bool { return n.uuid == id })
}

func (o *Object3D) ObjectsByName(name string) []*Object3D {
	var result []*Object3D
	o.Traverse(func(n *Object3D) {
		if n.Name == name {
			result = append(result, n)
		}
	})
	return result
}

// Traverse calls f for o and every descendant in pre-order
func (o *Object3D) Traverse(f func(*Object3D)) {
	f(o)
	for _, c := range o.children {
		c.Traverse(f)
	}
}

// TraverseVisible is Traverse that skips invisible nodes with their subtrees
func (o *Object3D) TraverseVisible(f func(*Object3D)) {
	if !o.Visible {
		return
	}
	f(o)
	for _, c := range o.children {
		c.TraverseVisible(f)
	}
}

// TraverseAncestors calls f for every parent of o up to the root, o excluded
func (o *Object3D) TraverseAncestors(f func(*Object3D)) {
	if p := o.parent; p != nil {
		f(p)
		p.TraverseAncestors(f)
	}
}

// Depth is the number of ancestors of o
func (o *Object3D) Depth() int {
	d := 0
	for p := o.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
