// Package simulation wires the scene actor to the ebiten window: it samples
// the pointer and the control panel, drives one scene step per update and
// draws the returned snapshot.
package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/render"
	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/scene"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pb"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const (
	sceneActorName = "scene"
	askTimeout     = 100 * time.Millisecond
	panelWidth     = 220.0
)

type Game struct {
	ctx      context.Context
	System   actor.ActorSystem
	scenePID *actor.PID
	cfg      *scene.Config
	style    render.Style
	gauge    *render.Gauge

	lastState   scene.Snapshot
	lastPointer geometry.Vector2D
	hasPointer  bool
	lastTick    time.Time

	// UI Controls
	panel *ui.UIPanel

	widgetStiffness *ui.Slider
	widgetDamping   *ui.Slider
	widgetPause     *ui.Checkbox
	widgetGrid      *ui.Checkbox
	widgetTrails    *ui.Checkbox
	widgetTangents  *ui.Checkbox
	widgetLabels    *ui.Checkbox

	resetRequested bool
}

// GetNewGame spawns the scene actor on system and builds the control panel.
func GetNewGame(ctx context.Context, cfg *scene.Config, system actor.ActorSystem) (*Game, error) {
	style, err := render.NewStyle(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve style: %w", err)
	}
	pid, err := system.Spawn(ctx, sceneActorName, NewSceneActor(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn scene actor: %w", err)
	}

	g := &Game{
		ctx:       ctx,
		System:    system,
		scenePID:  pid,
		cfg:       cfg,
		style:     style,
		gauge:     render.NewGauge(ebiten.DefaultTPS),
		lastState: scene.New(cfg).Snapshot(),
	}

	panel := ui.NewUIPanel("Controls", cfg.ScreenWidth-panelWidth-10, 10, panelWidth, 0)
	panel.AddSection("Spring")
	g.widgetStiffness = panel.AddSlider("Stiffness", cfg.Stiffness.Min, cfg.Stiffness.Max, cfg.Stiffness.Value)
	g.widgetDamping = panel.AddSlider("Damping", cfg.Damping.Min, cfg.Damping.Max, cfg.Damping.Value)
	panel.EndSection()

	panel.AddSection("Display")
	g.widgetGrid = panel.AddCheckbox("Grid", cfg.ShowGrid)
	g.widgetTrails = panel.AddCheckbox("Trails", cfg.ShowTrails)
	g.widgetTangents = panel.AddCheckbox("Tangents", cfg.ShowTangents)
	g.widgetLabels = panel.AddCheckbox("Labels", cfg.ShowLabels)
	panel.EndSection()

	panel.AddSection("Simulation")
	g.widgetPause = panel.AddCheckbox("Pause (Space)", false)
	panel.AddButton("Reset (R)", g.requestReset)
	panel.EndSection()

	panel.Height = panel.ContentHeight() + 10
	g.panel = panel
	return g, nil
}

func (g *Game) requestReset() {
	g.resetRequested = true
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.requestReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.widgetPause.Value = !g.widgetPause.Value
	}
	g.step(ui.ReadInput(), time.Now())
	return nil
}

// step runs one frame for the given pointer state and wall clock time.
func (g *Game) step(in ui.Input, now time.Time) {
	g.panel.Update(in)

	// The control panel sits over the surface; the pointer there drives widgets only.
	pos := geometry.Vector2D{X: in.X, Y: in.Y}
	// The first sample only seeds the position: the springs stay at rest until a real move.
	switch {
	case !g.hasPointer:
		g.lastPointer = pos
		g.hasPointer = true
	case pos != g.lastPointer && !g.panel.Contains(in.X, in.Y):
		actor.Tell(g.ctx, g.scenePID, &pb.PointerMoved{Client: scene.VecToProto(pos)})
		g.lastPointer = pos
	}

	if g.resetRequested {
		actor.Tell(g.ctx, g.scenePID, &pb.ResetScene{})
		g.gauge.Reset()
		g.resetRequested = false
	}

	if g.widgetPause.Value {
		g.lastTick = time.Time{}
		return
	}

	var delta time.Duration
	if !g.lastTick.IsZero() {
		delta = now.Sub(g.lastTick)
	}
	g.lastTick = now

	resp, err := actor.Ask(g.ctx, g.scenePID, &pb.Tick{
		DeltaNanos: delta.Nanoseconds(),
		Stiffness:  g.widgetStiffness.Value,
		Damping:    g.widgetDamping.Value,
	}, askTimeout)
	if err != nil {
		g.System.Logger().Errorf("tick failed, keeping frame %d: %v", g.lastState.Frame, err)
		return
	}
	snap, ok := resp.(*pb.SceneSnapshot)
	if !ok {
		g.System.Logger().Errorf("unexpected tick response %T", resp)
		return
	}
	g.lastState = scene.SnapshotFromProto(snap)
	g.gauge.Update(g.lastState.Speed)
}

// options reads the display toggles of the control panel.
func (g *Game) options() render.Options {
	return render.Options{
		ShowGrid:     g.widgetGrid.Value,
		ShowTrails:   g.widgetTrails.Value,
		ShowTangents: g.widgetTangents.Value,
		ShowLabels:   g.widgetLabels.Value,
		GaugeSpeed:   g.gauge.Value(),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawPlan(screen, render.Build(g.lastState, g.style, g.options()))
	g.panel.Draw(screen)
}

// Layout is fixed to the configured surface; window resizes scale it.
func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}
