// Package demo builds the animated rig shown by the scene server and drives
// its update loop
package demo

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/mogaika/scene3d/config"
	"github.com/mogaika/scene3d/math3d"
	"github.com/mogaika/scene3d/scene"
	"github.com/mogaika/scene3d/status"
)

// Rig is a star of bone chains around the root and an orbiting camera
type Rig struct {
	Graph  *scene.Graph
	Arms   []*scene.Object3D
	Bones  [][]*scene.Object3D
	Camera *scene.Object3D
	Orbit  *scene.OrbitController

	spin float64 // radians per second
	tick uint64
}

func Build(g *scene.Graph, cfg config.DemoConfig) *Rig {
	rig := &Rig{
		Graph: g,
		spin:  math3d.DegToRad(cfg.Spin),
	}

	for i := 0; i < cfg.Arms; i++ {
		arm := g.NewGroup(fmt.Sprintf("arm%d", i))
		arm.RotateY(2 * math.Pi * float64(i) / float64(cfg.Arms))
		arm.UserData["arm"] = i
		g.Root.Add(arm)

		parent := arm
		var bones []*scene.Object3D
		for j := 0; j < cfg.Depth; j++ {
			bone := g.NewBone("")
			bone.Position = math3d.Vec3(cfg.Spacing, 0, 0)
			parent.Add(bone)
			bones = append(bones, bone)
			parent = bone
		}
		rig.Arms = append(rig.Arms, arm)
		rig.Bones = append(rig.Bones, bones)
	}

	reach := cfg.Spacing*float64(cfg.Depth) + 1
	rig.Orbit = scene.NewOrbitController(math3d.Vector3{}, reach*2, 30, 0)
	rig.Camera = g.NewCamera("camera")
	g.Root.Add(rig.Camera)
	rig.Orbit.Apply(rig.Camera)
	return rig
}

// Step advances the animation by dt and refreshes world matrices
func (r *Rig) Step(dt time.Duration) {
	angle := r.spin * dt.Seconds()
	for i, arm := range r.Arms {
		arm.RotateY(angle)
		for j, bone := range r.Bones[i] {
			bone.SetRotation(math3d.NewEuler(0, 0, 0.3*math.Sin(float64(r.tick)*0.05+float64(j)), math3d.XYZ))
		}
	}
	r.Orbit.Yaw = math3d.EuclideanModulo(r.Orbit.Yaw+math3d.RadToDeg(angle)/4, 360)
	r.Orbit.Apply(r.Camera)

	r.tick++
	r.Graph.Update()
}

func (r *Rig) Snapshot(now time.Time) scene.Snapshot {
	s := scene.TakeSnapshot(r.Graph.Root)
	s.Tick = r.tick
	s.Time = now
	return s
}

// Run steps the rig every tick and publishes snapshots until ctx is done
func Run(ctx context.Context, r *Rig, pub *status.Publisher, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			r.Step(now.Sub(last))
			last = now
			if err := pub.Publish(r.Snapshot(now)); err != nil {
				log.Printf("[demo] publish error: %v", err)
				return err
			}
		}
	}
}
