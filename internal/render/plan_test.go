package render

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/scene"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func allOn() Options {
	return Options{ShowGrid: true, ShowTrails: true, ShowTangents: true, ShowLabels: true}
}

func testStyle(t *testing.T) Style {
	t.Helper()
	st, err := NewStyle(scene.DefaultConfig())
	if err != nil {
		t.Fatalf("NewStyle returned error: %v", err)
	}
	return st
}

func straightSnapshot() scene.Snapshot {
	return scene.Snapshot{
		Start:    geometry.Vector2D{X: 0, Y: 100},
		Control1: geometry.Vector2D{X: 25, Y: 100},
		Control2: geometry.Vector2D{X: 75, Y: 100},
		End:      geometry.Vector2D{X: 100, Y: 100},
		Pointer:  geometry.Vector2D{X: 50, Y: 140},
	}
}

func TestNewStyle(t *testing.T) {
	st := testStyle(t)
	if st.Background != (color.NRGBA{R: 0x11, G: 0x13, B: 0x18, A: 255}) {
		t.Errorf("Background = %v", st.Background)
	}
	if st.Trail2 != (color.NRGBA{R: 255, G: 180, B: 180, A: 255}) {
		t.Errorf("Trail2 = %v", st.Trail2)
	}

	cfg := scene.DefaultConfig()
	cfg.TrailColor1 = "chartreuse"
	if _, err := NewStyle(cfg); err == nil {
		t.Error("expected an error for a named colour")
	}
}

func TestStrokeWidth(t *testing.T) {
	tests := []struct {
		speed, want float64
	}{
		{0, 2},
		{10, 3},
		{40, 6},
		{1000, 6},
	}
	for _, tt := range tests {
		if got := StrokeWidth(tt.speed); !floatEquals(got, tt.want) {
			t.Errorf("StrokeWidth(%v) = %v; want %v", tt.speed, got, tt.want)
		}
	}
}

func TestStressColor(t *testing.T) {
	if got := StressColor(Stress(0, 0)); got != (color.NRGBA{R: 0, G: 255, B: 200, A: 255}) {
		t.Errorf("stress at rest, t=0: %v", got)
	}
	if got := StressColor(Stress(0.5, 0)); got != (color.NRGBA{R: 255, G: 0, B: 200, A: 255}) {
		t.Errorf("stress at rest, t=0.5: %v", got)
	}
	if got := StressColor(0.5); got.R != 127 || got.G != 127 {
		t.Errorf("StressColor(0.5) = %v; want floor(127.5)", got)
	}
}

func TestBuild_CurveSegments(t *testing.T) {
	st := testStyle(t)
	snap := straightSnapshot()
	p := Build(snap, st, allOn())

	if len(p.Curve) != st.CurveSegments {
		t.Fatalf("len(Curve) = %d; want %d", len(p.Curve), st.CurveSegments)
	}
	if p.StrokeWidth != 2 {
		t.Errorf("StrokeWidth = %v; want 2", p.StrokeWidth)
	}
	// Phase 0 and t=0: no displacement at the start anchor.
	if first := p.Curve[0].From; !first.Eq(snap.Start) {
		t.Errorf("first segment starts at %v; want %v", first, snap.Start)
	}
	// The last segment reaches the end anchor, displaced along the normal only.
	last := p.Curve[len(p.Curve)-1]
	if !floatEquals(last.To.X, snap.End.X) {
		t.Errorf("last segment ends at %v; want x=%v", last.To, snap.End.X)
	}
	for i, l := range p.Curve {
		if l.Width != p.StrokeWidth {
			t.Fatalf("segment %d width = %v", i, l.Width)
		}
		if d := math.Abs(l.From.Y - 100); d > st.WaveAmplitude+1e-9 {
			t.Fatalf("segment %d displaced by %v, more than the amplitude", i, d)
		}
	}
}

func TestBuild_Trails(t *testing.T) {
	st := testStyle(t)
	snap := straightSnapshot()
	snap.Trail1 = []geometry.Vector2D{{X: 1}, {X: 2}, {X: 3}, {X: 4}}
	snap.Trail2 = []geometry.Vector2D{{X: 5}, {X: 6}}

	p := Build(snap, st, allOn())
	if len(p.Trails) != 6 {
		t.Fatalf("len(Trails) = %d; want 6", len(p.Trails))
	}
	wantAlpha := []uint8{0, 63, 127, 191, 0, 127}
	for i, d := range p.Trails {
		if d.Color.A != wantAlpha[i] {
			t.Errorf("dot %d alpha = %d; want %d", i, d.Color.A, wantAlpha[i])
		}
		if d.Radius != trailDotRadius {
			t.Errorf("dot %d radius = %v", i, d.Radius)
		}
	}
	if p.Trails[5].Color.R != 255 || p.Trails[5].Color.G != 180 {
		t.Errorf("second trail colour = %v", p.Trails[5].Color)
	}
}

func TestBuild_Tangents(t *testing.T) {
	st := testStyle(t)
	p := Build(straightSnapshot(), st, allOn())

	if len(p.Tangents) != st.TangentSamples+1 {
		t.Fatalf("len(Tangents) = %d; want %d", len(p.Tangents), st.TangentSamples+1)
	}
	for i, l := range p.Tangents {
		if got := l.From.DistanceTo(l.To); !floatEquals(got, st.TangentLength) {
			t.Errorf("tick %d length = %v; want %v", i, got, st.TangentLength)
		}
		if l.Color != tangentColor {
			t.Errorf("tick %d colour = %v", i, l.Color)
		}
	}
}

func TestBuild_Toggles(t *testing.T) {
	st := testStyle(t)
	snap := straightSnapshot()
	snap.Trail1 = []geometry.Vector2D{{X: 1}}

	p := Build(snap, st, Options{})
	if p.Grid != nil || p.Trails != nil || p.Tangents != nil || p.Labels != nil {
		t.Errorf("hidden layers were built: grid=%d trails=%d tangents=%d labels=%d",
			len(p.Grid), len(p.Trails), len(p.Tangents), len(p.Labels))
	}
	if len(p.Markers) != 5 || len(p.Curve) == 0 || len(p.PanelText) == 0 {
		t.Error("markers, curve and panel must always be drawn")
	}

	p = Build(snap, st, allOn())
	wantGrid := int(math.Ceil(st.Width/st.GridSpacing) + math.Ceil(st.Height/st.GridSpacing))
	if len(p.Grid) != wantGrid {
		t.Errorf("len(Grid) = %d; want %d", len(p.Grid), wantGrid)
	}
	if len(p.Labels) != 10 {
		t.Errorf("len(Labels) = %d; want 10", len(p.Labels))
	}
}

func TestBuild_MarkerLabels(t *testing.T) {
	st := testStyle(t)
	snap := straightSnapshot()
	p := Build(snap, st, allOn())

	mouse := p.Labels[8]
	if mouse.Text != "Mouse" || mouse.Pos != snap.Pointer.Add(geometry.Vector2D{X: 8, Y: -28}) {
		t.Errorf("pointer label = %+v", mouse)
	}
	sub := p.Labels[9]
	if sub.Text != "Target" || sub.Color != subColor || sub.Pos.Y != mouse.Pos.Y+subLabelSpacing {
		t.Errorf("pointer sub label = %+v", sub)
	}
}

func TestBuild_Diagnostics(t *testing.T) {
	st := testStyle(t)
	snap := straightSnapshot()
	snap.Stiffness, snap.Damping, snap.Speed, snap.FPS = 0.08, 0.85, 12.345, 59.94

	p := Build(snap, st, Options{GaugeSpeed: 25})
	want := []string{"Simulation Info", "Stiffness (k): 0.08", "Damping: 0.85", "Velocity: 12.3", "FPS: 59.9"}
	for i, w := range want {
		if p.PanelText[i].Text != w {
			t.Errorf("panel line %d = %q; want %q", i, p.PanelText[i].Text, w)
		}
	}
	if p.PanelText[4].Color != fpsColor {
		t.Errorf("FPS colour = %v", p.PanelText[4].Color)
	}
	if p.Panel[0].Y != st.Height-140 || p.Panel[0].W != 260 {
		t.Errorf("panel rect = %+v", p.Panel[0])
	}
	if !floatEquals(p.Panel[2].W, 50) {
		t.Errorf("gauge width = %v; want 50", p.Panel[2].W)
	}
	if math.Abs(p.CurveLength-100) > 0.1 {
		t.Errorf("CurveLength = %v; want 100", p.CurveLength)
	}
	if math.Abs(p.PointerDist-40) > 1e-3 {
		t.Errorf("PointerDist = %v; want 40", p.PointerDist)
	}
}

func TestBuild_DivergedSceneIsNotMeasured(t *testing.T) {
	st := testStyle(t)
	cfg := scene.DefaultConfig()
	s := scene.New(cfg)
	s.MovePointer(geometry.Vector2D{X: 300, Y: 300})

	// Damping above 1 amplifies the velocity every frame.
	f := scene.Frame{Delta: time.Second / 60, Stiffness: 0.08, Damping: 1.5}
	for i := 0; i < 1000 && s.Snapshot().Control1.Len() < 1e24; i++ {
		s.Step(f)
	}
	if got := s.Snapshot().Control1.Len(); got < 1e24 {
		t.Fatalf("scene did not diverge: |P1| = %v", got)
	}
	p := Build(s.Snapshot(), st, allOn())
	if !math.IsNaN(p.CurveLength) || !math.IsNaN(p.PointerDist) {
		t.Errorf("diverged curve measured: length=%v dist=%v", p.CurveLength, p.PointerDist)
	}
	if len(p.Curve) != st.CurveSegments || len(p.PanelText) == 0 {
		t.Error("diverged curve must still be drawn with its panel")
	}

	snap := straightSnapshot()
	snap.Control2 = geometry.Vector2D{X: math.Inf(1), Y: 0}
	if p := Build(snap, st, Options{}); !math.IsNaN(p.CurveLength) {
		t.Errorf("infinite control point measured: length=%v", p.CurveLength)
	}

	snap = straightSnapshot()
	snap.Control1 = geometry.Vector2D{X: 25, Y: maxMeasuredExtent}
	if p := Build(snap, st, Options{}); math.IsNaN(p.CurveLength) {
		t.Error("curve at the size limit was not measured")
	}
}

func TestDashes(t *testing.T) {
	from := geometry.Vector2D{X: 0, Y: 0}
	to := geometry.Vector2D{X: 18, Y: 0}
	lines := Dashes(from, to, 4, 4, 1, guideColor)

	if len(lines) != 3 {
		t.Fatalf("len = %d; want 3", len(lines))
	}
	if lines[2].From.X != 16 || lines[2].To.X != 18 {
		t.Errorf("last dash = %v -> %v; want clipped to the end", lines[2].From, lines[2].To)
	}
	if Dashes(from, from, 4, 4, 1, guideColor) != nil {
		t.Error("a zero length guide must have no dashes")
	}
}

func TestGauge(t *testing.T) {
	g := NewGauge(60)
	var v float64
	for i := 0; i < 300; i++ {
		v = g.Update(10)
	}
	if math.Abs(v-10) > 0.01 {
		t.Errorf("gauge settled at %v; want 10", v)
	}
	if got := g.Update(math.NaN()); got != v {
		t.Errorf("NaN target moved the gauge to %v", got)
	}
	g.Reset()
	if g.Value() != 0 {
		t.Errorf("Value after Reset = %v", g.Value())
	}
}

func BenchmarkBuild(b *testing.B) {
	st, _ := NewStyle(scene.DefaultConfig())
	snap := straightSnapshot()
	for i := 0; i < b.N; i++ {
		Build(snap, st, allOn())
	}
}
