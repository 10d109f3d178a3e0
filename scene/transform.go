package scene

import (
	"github.com/mogaika/scene3d/math3d"
)

// UpdateMatrix rebuilds the local matrix from Position, Quaternion and Scale
// and marks the world matrix dirty
func (o *Object3D) UpdateMatrix() {
	o.Matrix = math3d.Compose(o.Position, o.Quaternion, o.Scale)
	o.MatrixWorldNeedsUpdate = true
}

// UpdateMatrixWorld refreshes world matrices of the subtree in pre-order.
// Once a node recomputes its world matrix all its descendants recompute
// theirs too, whatever their own dirty flags are.
func (o *Object3D) UpdateMatrixWorld(force bool) {
	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}

	if o.MatrixWorldNeedsUpdate || force {
		if o.parent == nil {
			o.matrixWorld = o.Matrix
		} else {
			o.matrixWorld = o.parent.matrixWorld.Mul(o.Matrix)
		}
		o.MatrixWorldNeedsUpdate = false
		force = true
	}

	for _, c := range o.children {
		c.UpdateMatrixWorld(force)
	}
}

// UpdateWorldMatrix unconditionally recomputes the world matrix of o,
// optionally refreshing the chain of parents first and the subtree after
func (o *Object3D) UpdateWorldMatrix(updateParents, updateChildren bool) {
	if updateParents && o.parent != nil {
		o.parent.UpdateWorldMatrix(true, false)
	}

	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}

	if o.parent == nil {
		o.matrixWorld = o.Matrix
	} else {
		o.matrixWorld = o.parent.matrixWorld.Mul(o.Matrix)
	}

	if updateChildren {
		for _, c := range o.children {
			c.UpdateWorldMatrix(false, true)
		}
	}
}

// MatrixWorld returns the world matrix computed by the last update
func (o *Object3D) MatrixWorld() math3d.Matrix4 {
	return o.matrixWorld
}

// LocalToWorld converts a point from object space using the cached world matrix
func (o *Object3D) LocalToWorld(v math3d.Vector3) math3d.Vector3 {
	return v.ApplyMatrix4(o.matrixWorld)
}

// WorldToLocal converts a world point into object space using the cached world matrix
func (o *Object3D) WorldToLocal(v math3d.Vector3) math3d.Vector3 {
	return v.ApplyMatrix4(o.matrixWorld.Inverse())
}

func (o *Object3D) WorldPosition() math3d.Vector3 {
	o.UpdateWorldMatrix(true, false)
	return math3d.Vector3FromMatrixPosition(o.matrixWorld)
}

func (o *Object3D) WorldQuaternion() math3d.Quaternion {
	o.UpdateWorldMatrix(true, false)
	_, q, _ := o.matrixWorld.Decompose()
	return q
}

func (o *Object3D) WorldScale() math3d.Vector3 {
	o.UpdateWorldMatrix(true, false)
	_, _, s := o.matrixWorld.Decompose()
	return s
}

// WorldDirection is the world +z axis of o, or -z for cameras and lights
func (o *Object3D) WorldDirection() math3d.Vector3 {
	o.UpdateWorldMatrix(true, false)
	e := o.matrixWorld
	dir := math3d.Vec3(e[8], e[9], e[10]).Normalize()
	if o.kind.looksDownNegativeZ() {
		dir = dir.Negate()
	}
	return dir
}

// LookAt rotates o to face the world point target. Objects turn their +z
// axis to the target, cameras and lights their -z axis.
func (o *Object3D) LookAt(target math3d.Vector3) {
	o.UpdateWorldMatrix(true, false)
	position := math3d.Vector3FromMatrixPosition(o.matrixWorld)

	var m math3d.Matrix4
	if o.kind.looksDownNegativeZ() {
		m = math3d.Identity4().LookAt(position, target, o.Up)
	} else {
		m = math3d.Identity4().LookAt(target, position, o.Up)
	}
	o.Quaternion = math3d.QuaternionFromRotationMatrix(m)

	if o.parent != nil {
		pq := math3d.QuaternionFromRotationMatrix(o.parent.matrixWorld.ExtractRotation())
		o.Quaternion = o.Quaternion.Premul(pq.Invert())
	}
}
