package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/scene"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pb"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func newTestSystem(t *testing.T) (context.Context, actor.ActorSystem) {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("SceneTest", actor.WithLogger(golog.DiscardLogger))
	if err != nil {
		t.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("failed to start actor system: %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })
	return ctx, system
}

func tick(t *testing.T, ctx context.Context, pid *actor.PID, cfg *scene.Config) scene.Snapshot {
	t.Helper()
	resp, err := actor.Ask(ctx, pid, &pb.Tick{
		DeltaNanos: int64(time.Second / 60),
		Stiffness:  cfg.Stiffness.Value,
		Damping:    cfg.Damping.Value,
	}, time.Second)
	if err != nil {
		t.Fatalf("Ask(Tick) failed: %v", err)
	}
	snap, ok := resp.(*pb.SceneSnapshot)
	if !ok {
		t.Fatalf("unexpected response %T", resp)
	}
	return scene.SnapshotFromProto(snap)
}

func TestSceneActor_PointerThenTickMovesSprings(t *testing.T) {
	ctx, system := newTestSystem(t)
	cfg := scene.DefaultConfig()
	pid, err := system.Spawn(ctx, "scene", NewSceneActor(cfg))
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	client := geometry.Vector2D{X: 512, Y: 100}
	actor.Tell(ctx, pid, &pb.PointerMoved{Client: scene.VecToProto(client)})
	snap := tick(t, ctx, pid, cfg)

	if snap.Pointer != client {
		t.Errorf("Pointer = %v; want %v", snap.Pointer, client)
	}
	if snap.Target2 != client.Add(geometry.Vector2D{X: cfg.TargetOffset}) {
		t.Errorf("Target2 = %v", snap.Target2)
	}
	home := cfg.Control1Home()
	if snap.Control1.DistanceTo(client) >= home.DistanceTo(client) {
		t.Errorf("control1 did not move toward the pointer: %v", snap.Control1)
	}
	if snap.Frame != 1 || len(snap.Trail1) != 1 {
		t.Errorf("Frame = %d, trail = %d; want 1, 1", snap.Frame, len(snap.Trail1))
	}
	if snap.FPS < 59.9 || snap.FPS > 60.1 {
		t.Errorf("FPS = %v; want 60", snap.FPS)
	}
}

func TestSceneActor_Reset(t *testing.T) {
	ctx, system := newTestSystem(t)
	cfg := scene.DefaultConfig()
	pid, err := system.Spawn(ctx, "scene", NewSceneActor(cfg))
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	actor.Tell(ctx, pid, &pb.PointerMoved{Client: scene.VecToProto(geometry.Vector2D{X: 50, Y: 50})})
	for i := 0; i < 10; i++ {
		tick(t, ctx, pid, cfg)
	}
	actor.Tell(ctx, pid, &pb.ResetScene{})
	snap := tick(t, ctx, pid, cfg)

	if snap.Control1 != cfg.Control1Home() || snap.Control2 != cfg.Control2Home() {
		t.Errorf("controls after reset = %v, %v", snap.Control1, snap.Control2)
	}
	if snap.Speed != 0 || len(snap.Trail1) != 1 {
		t.Errorf("speed = %v, trail = %d; want 0, 1", snap.Speed, len(snap.Trail1))
	}
	if snap.Frame != 11 {
		t.Errorf("Frame = %d; want 11", snap.Frame)
	}
}

func TestGame_Step(t *testing.T) {
	ctx, system := newTestSystem(t)
	cfg := scene.DefaultConfig()
	g, err := GetNewGame(ctx, cfg, system)
	if err != nil {
		t.Fatalf("GetNewGame failed: %v", err)
	}

	now := time.Now()
	// The first sample is not a move: the springs stay at rest.
	g.step(ui.Input{X: 100, Y: 300}, now)
	if g.lastState.Pointer != (geometry.Vector2D{}) || g.lastState.Frame != 1 {
		t.Fatalf("first step: pointer=%v frame=%d", g.lastState.Pointer, g.lastState.Frame)
	}
	if g.lastState.Control1 != cfg.Control1Home() || g.lastState.Speed != 0 {
		t.Errorf("first step moved the springs: %v speed=%v", g.lastState.Control1, g.lastState.Speed)
	}
	if g.lastState.FPS != 0 {
		t.Errorf("first frame FPS = %v; want 0", g.lastState.FPS)
	}

	g.step(ui.Input{X: 100, Y: 300}, now.Add(10*time.Millisecond))
	if g.lastState.Pointer != (geometry.Vector2D{}) {
		t.Errorf("unchanged pointer was forwarded: %v", g.lastState.Pointer)
	}

	g.step(ui.Input{X: 110, Y: 300}, now.Add(30*time.Millisecond))
	if g.lastState.Pointer != (geometry.Vector2D{X: 110, Y: 300}) {
		t.Errorf("moved pointer = %v; want (110, 300)", g.lastState.Pointer)
	}
	if g.lastState.FPS != 50 {
		t.Errorf("FPS = %v; want 50", g.lastState.FPS)
	}

	// Over the control panel the pointer drives widgets, not the springs.
	g.step(ui.Input{X: g.panel.X + 5, Y: g.panel.Y + 5}, now.Add(40*time.Millisecond))
	if g.lastState.Pointer != (geometry.Vector2D{X: 110, Y: 300}) {
		t.Errorf("pointer over panel was forwarded: %v", g.lastState.Pointer)
	}

	g.widgetPause.Value = true
	g.step(ui.Input{X: 200, Y: 300}, now.Add(60*time.Millisecond))
	if g.lastState.Frame != 4 {
		t.Errorf("paused step advanced to frame %d", g.lastState.Frame)
	}
	g.widgetPause.Value = false

	g.requestReset()
	g.step(ui.Input{X: 200, Y: 300}, now.Add(80*time.Millisecond))
	if g.resetRequested || g.gauge.Value() != 0 {
		t.Error("reset request was not consumed")
	}
	if g.lastState.Frame != 5 || len(g.lastState.Trail1) != 1 {
		t.Errorf("after reset: frame=%d trail=%d; want 5, 1", g.lastState.Frame, len(g.lastState.Trail1))
	}
}

func TestGame_OptionsFollowWidgets(t *testing.T) {
	ctx, system := newTestSystem(t)
	cfg := scene.DefaultConfig()
	cfg.ShowTangents = false
	g, err := GetNewGame(ctx, cfg, system)
	if err != nil {
		t.Fatalf("GetNewGame failed: %v", err)
	}

	opt := g.options()
	if !opt.ShowGrid || !opt.ShowTrails || opt.ShowTangents || !opt.ShowLabels {
		t.Errorf("options = %+v", opt)
	}
	g.widgetGrid.Value = false
	if g.options().ShowGrid {
		t.Error("grid toggle not applied")
	}
	if w, h := g.Layout(10, 10); w != 1024 || h != 768 {
		t.Errorf("Layout = %d x %d", w, h)
	}
}
