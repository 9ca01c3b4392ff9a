package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/scene"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// SceneActor owns the scene. Pointer moves, ticks and resets are applied in
// mailbox order, so a move is always visible to the next tick.
type SceneActor struct {
	cfg   *scene.Config
	scene *scene.Scene

	// --- Stats ---
	ticks       int
	lastLogTime time.Time
}

var _ actor.Actor = (*SceneActor)(nil)

func NewSceneActor(cfg *scene.Config) *SceneActor {
	return &SceneActor{
		cfg:         cfg,
		scene:       scene.New(cfg),
		lastLogTime: time.Now(),
	}
}

func (a *SceneActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Scene %s ready: anchors %v -> %v",
		ctx.ActorName(), a.cfg.AnchorStart(), a.cfg.AnchorEnd())
	return nil
}

func (a *SceneActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("%s started", ctx.Self().Name())

	case *pb.PointerMoved:
		a.scene.MovePointer(scene.VecFromProto(msg.GetClient()))

	case *pb.Tick:
		a.scene.Step(scene.Frame{
			Delta:     time.Duration(msg.GetDeltaNanos()),
			Stiffness: msg.GetStiffness(),
			Damping:   msg.GetDamping(),
		})
		a.logStats(ctx)
		ctx.Response(a.scene.Snapshot().ToProto())

	case *pb.ResetScene:
		a.scene.Reset()
		ctx.Logger().Infof("%s reset after %d frames", ctx.Self().Name(), a.scene.Frames())

	default:
		ctx.Unhandled()
	}
}

func (a *SceneActor) logStats(ctx *actor.ReceiveContext) {
	a.ticks++
	if time.Since(a.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICKS: %d/sec | FPS: %.1f | Speed: %.2f | Frame: %d",
			a.ticks, a.scene.FPS(), a.scene.Speed(), a.scene.Frames())
		a.ticks = 0
		a.lastLogTime = time.Now()
	}
}

func (a *SceneActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Scene %s stopped after %d frames", ctx.ActorName(), a.scene.Frames())
	return nil
}
