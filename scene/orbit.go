package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/scene3d/math3d"
)

// OrbitController keeps a node on a sphere around Target
type OrbitController struct {
	Target   math3d.Vector3
	Distance float64
	Pitch    float64 // x rotation, degrees
	Yaw      float64 // y rotation, degrees
}

func NewOrbitController(target math3d.Vector3, dist, pitch, yaw float64) *OrbitController {
	return &OrbitController{
		Target:   target,
		Distance: dist,
		Pitch:    pitch,
		Yaw:      yaw,
	}
}

func (c *OrbitController) Position() math3d.Vector3 {
	pitch, yaw := math3d.DegToRad(c.Pitch), math3d.DegToRad(c.Yaw)
	return math3d.Vec3(
		c.Distance*math.Cos(pitch)*math.Sin(yaw),
		c.Distance*math.Sin(pitch),
		c.Distance*math.Cos(pitch)*math.Cos(yaw),
	).Add(c.Target)
}

// ViewMatrix is the world to camera transform of the orbit position
func (c *OrbitController) ViewMatrix() math3d.Matrix4 {
	return math3d.Matrix4FromMgl(mgl64.LookAtV(c.Position().Mgl(), c.Target.Mgl(), mgl64.Vec3{0, 1, 0}))
}

// Apply moves node onto the orbit and turns it to Target. Position is set
// in parent space, so node is expected to hang off an untransformed parent.
func (c *OrbitController) Apply(node *Object3D) {
	node.Position = c.Position()
	node.LookAt(c.Target)
}
