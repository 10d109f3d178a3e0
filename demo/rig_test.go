package demo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mogaika/scene3d/config"
	"github.com/mogaika/scene3d/math3d"
	"github.com/mogaika/scene3d/scene"
	"github.com/mogaika/scene3d/status"
)

var testDemo = config.DemoConfig{Arms: 3, Depth: 2, Spin: 90, Spacing: 2}

func TestBuild(t *testing.T) {
	g := scene.NewGraph(scene.WithAutoNames(1))
	rig := Build(g, testDemo)
	g.Update()

	if n := len(scene.TakeSnapshot(g.Root).Nodes); n != 1+3+3*2+1 {
		t.Errorf("rig has %d nodes; expected 11", n)
	}
	if len(rig.Arms) != 3 || len(rig.Bones[2]) != 2 {
		t.Fatalf("rig has %d arms", len(rig.Arms))
	}
	if rig.Bones[0][0].Name == "" {
		t.Errorf("bone has no auto name")
	}

	tip := rig.Bones[0][1].MatrixWorld().Position()
	if want := math3d.Vec3(4, 0, 0); !tip.ApproxEqual(want, 1e-9) {
		t.Errorf("arm0 tip=%v; expected %v", tip, want)
	}

	dir := rig.Camera.WorldDirection()
	toTarget := rig.Orbit.Target.Sub(rig.Camera.WorldPosition()).Normalize()
	if !dir.ApproxEqual(toTarget, 1e-9) {
		t.Errorf("camera looks at %v; expected %v", dir, toTarget)
	}
}

func TestStep(t *testing.T) {
	g := scene.NewGraph()
	rig := Build(g, testDemo)

	rig.Step(time.Second)
	got := rig.Bones[0][0].MatrixWorld().Position()
	if want := math3d.Vec3(0, 0, -2); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("arm0 first bone after 1s=%v; expected %v", got, want)
	}

	s := rig.Snapshot(time.Unix(10, 0))
	if s.Tick != 1 || !s.Time.Equal(time.Unix(10, 0)) {
		t.Errorf("snapshot tick=%d time=%v", s.Tick, s.Time)
	}
}

func TestRun(t *testing.T) {
	g := scene.NewGraph()
	rig := Build(g, testDemo)
	pub := status.NewPublisher()
	sub := pub.Subscribe(16)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, rig, pub, time.Millisecond) }()

	for i := 0; i < 3; i++ {
		select {
		case <-sub.C:
		case <-time.After(5 * time.Second):
			t.Fatalf("no snapshot published")
		}
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run err=%v; expected context.Canceled", err)
	}
	if s, ok := pub.Latest(); !ok || s.Tick < 3 {
		t.Errorf("latest tick=%d; expected at least 3", s.Tick)
	}
}
