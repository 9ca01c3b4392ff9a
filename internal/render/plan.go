// Package render turns a scene snapshot into a flat list of drawing primitives.
//
// Build is a pure function: it knows the visual style of the animation
// (grid, trails, rippling curve, tangent ticks, markers, diagnostics panel) but
// nothing about the window. The simulation package feeds the resulting Plan to
// ebiten.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/scene"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/bezier"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/trail"
)

type Line struct {
	From, To geometry.Vector2D
	Width    float64
	Color    color.NRGBA
}

type Dot struct {
	Center geometry.Vector2D
	Radius float64
	Color  color.NRGBA
}

// Label is a line of text; Pos is the left end of its baseline.
type Label struct {
	Pos   geometry.Vector2D
	Text  string
	Color color.NRGBA
}

type Rect struct {
	X, Y, W, H float64
	Color      color.NRGBA
}

// Options are the per-frame switches coming from the control panel.
type Options struct {
	ShowGrid     bool
	ShowTrails   bool
	ShowTangents bool
	ShowLabels   bool

	// GaugeSpeed is the smoothed speed shown by the diagnostics gauge.
	GaugeSpeed float64
}

// Plan lists the primitives of one frame in drawing order.
type Plan struct {
	Background color.NRGBA
	Grid       []Line
	Trails     []Dot
	Curve      []Line
	Tangents   []Line
	Markers    []Dot
	Labels     []Label
	Guide      []Line
	Panel      []Rect
	PanelText  []Label

	StrokeWidth float64
	CurveLength float64
	PointerDist float64
}

type marker struct {
	pos   geometry.Vector2D
	label string
	sub   string
	offX  float64
	offY  float64
}

// StrokeWidth is the curve width for a combined spring speed: 2 + speed/10, at most 6.
func StrokeWidth(speed float64) float64 {
	return math.Min(maxStrokeWidth, minStrokeWidth+speed*strokeSpeedScale)
}

// Stress is the visual-only scalar |sin(tπ + speed·0.05)| colouring the curve at t.
func Stress(t, speed float64) float64 {
	return math.Abs(math.Sin(t*math.Pi + speed*stressSpeedScale))
}

// StressColor maps a stress in [0,1] to rgb(255·s, 255·(1-s), 200).
func StressColor(stress float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Floor(255 * stress)),
		G: uint8(math.Floor(255 * (1 - stress))),
		B: 200,
		A: 255,
	}
}

// Wave is the normal displacement of the stroke at t for the given phase.
func Wave(t, phase, frequency, amplitude float64) float64 {
	return math.Sin(t*math.Pi*frequency+phase) * amplitude
}

// Build computes the drawing primitives for snap.
func Build(snap scene.Snapshot, st Style, opt Options) Plan {
	p := Plan{
		Background:  st.Background,
		StrokeWidth: StrokeWidth(snap.Speed),
	}
	if opt.ShowGrid {
		p.Grid = gridLines(st)
	}
	if opt.ShowTrails {
		p.Trails = append(trailDots(snap.Trail1, st.Trail1), trailDots(snap.Trail2, st.Trail2)...)
	}
	p.Curve = curveSegments(snap, st, p.StrokeWidth)
	if opt.ShowTangents {
		p.Tangents = tangentTicks(snap, st, p.StrokeWidth)
	}

	markers := []marker{
		{snap.Start, "P0", "Fixed Anchor", 8, -10},
		{snap.End, "P3", "Fixed Anchor", 8, -10},
		{snap.Control1, "P1", "Dynamic (Spring)", 8, 18},
		{snap.Control2, "P2", "Dynamic (Spring)", 12, -10},
		{snap.Pointer, "Mouse", "Target", 8, -28},
	}
	for _, m := range markers {
		p.Markers = append(p.Markers, Dot{Center: m.pos, Radius: markerRadius, Color: markerColor})
		if !opt.ShowLabels {
			continue
		}
		at := m.pos.Add(geometry.Vector2D{X: m.offX, Y: m.offY})
		p.Labels = append(p.Labels,
			Label{Pos: at, Text: m.label, Color: labelColor},
			Label{Pos: at.Add(geometry.Vector2D{Y: subLabelSpacing}), Text: m.sub, Color: subColor},
		)
	}

	guideEnd := snap.Pointer.Add(geometry.Vector2D{X: 8, Y: -28})
	p.Guide = Dashes(snap.Pointer, guideEnd, dashLength, dashGap, p.StrokeWidth, guideColor)

	p.CurveLength, p.PointerDist = measure(snap.Curve(), snap.Pointer)

	p.Panel, p.PanelText = diagnostics(snap, st, p, opt.GaugeSpeed)
	return p
}

// measure returns the arc length of c and its distance to pointer.
// A diverged curve is not measured: the cost of both grows with its size.
func measure(c bezier.Cubic, pointer geometry.Vector2D) (length, dist float64) {
	ext := c.Extent()
	if math.IsNaN(ext) || ext > maxMeasuredExtent || pointer.IsNaN() {
		return math.NaN(), math.NaN()
	}
	length = c.Arclen(curveAccuracy)
	dist, _ = c.Nearest(pointer, curveAccuracy)
	return length, dist
}

func gridLines(st Style) []Line {
	if st.GridSpacing <= 0 {
		return nil
	}
	var lines []Line
	for x := 0.0; x < st.Width; x += st.GridSpacing {
		lines = append(lines, Line{From: geometry.Vector2D{X: x}, To: geometry.Vector2D{X: x, Y: st.Height}, Width: 1, Color: gridColor})
	}
	for y := 0.0; y < st.Height; y += st.GridSpacing {
		lines = append(lines, Line{From: geometry.Vector2D{Y: y}, To: geometry.Vector2D{X: st.Width, Y: y}, Width: 1, Color: gridColor})
	}
	return lines
}

func trailDots(points []geometry.Vector2D, c color.NRGBA) []Dot {
	dots := make([]Dot, len(points))
	for i, pt := range points {
		dots[i] = Dot{Center: pt, Radius: trailDotRadius, Color: withAlpha(c, trail.Alpha(i, len(points)))}
	}
	return dots
}

// curveSegments strokes the curve as short segments displaced along the local normal.
// Both ends of a segment share the normal offset of its start.
func curveSegments(snap scene.Snapshot, st Style, width float64) []Line {
	p0, p1, p2, p3 := snap.Start, snap.Control1, snap.Control2, snap.End
	step := 1 / float64(st.CurveSegments)
	lines := make([]Line, 0, st.CurveSegments)
	for i := 0; i < st.CurveSegments; i++ {
		t := float64(i) * step
		base := bezier.PointAt(t, p0, p1, p2, p3)
		normal := bezier.TangentAt(t, p0, p1, p2, p3).Perp()
		offset := normal.Mul(Wave(t, snap.Phase, st.WaveFrequency, st.WaveAmplitude))
		next := bezier.PointAt(t+step, p0, p1, p2, p3)
		lines = append(lines, Line{
			From:  base.Add(offset),
			To:    next.Add(offset),
			Width: width,
			Color: StressColor(Stress(t, snap.Speed)),
		})
	}
	return lines
}

func tangentTicks(snap scene.Snapshot, st Style, width float64) []Line {
	c := snap.Curve()
	lines := make([]Line, 0, st.TangentSamples+1)
	for i := 0; i <= st.TangentSamples; i++ {
		t := float64(i) / float64(st.TangentSamples)
		at := c.PointAt(t)
		lines = append(lines, Line{
			From:  at,
			To:    at.Add(c.TangentAt(t).Mul(st.TangentLength)),
			Width: width,
			Color: tangentColor,
		})
	}
	return lines
}

// Dashes splits the segment from→to into dash long strokes separated by gap.
func Dashes(from, to geometry.Vector2D, dash, gap, width float64, c color.NRGBA) []Line {
	length := from.DistanceTo(to)
	if length == 0 || dash <= 0 {
		return nil
	}
	dir := to.Sub(from).Normalize()
	var lines []Line
	for d := 0.0; d < length; d += dash + gap {
		end := math.Min(d+dash, length)
		lines = append(lines, Line{From: from.Add(dir.Mul(d)), To: from.Add(dir.Mul(end)), Width: width, Color: c})
	}
	return lines
}

func diagnostics(snap scene.Snapshot, st Style, p Plan, gaugeSpeed float64) ([]Rect, []Label) {
	h := st.Height
	at := func(x, y float64) geometry.Vector2D { return geometry.Vector2D{X: x, Y: y} }

	level := math.Min(math.Max(gaugeSpeed/gaugeMaxSpeed, 0), 1)
	if math.IsNaN(level) {
		level = 0
	}
	rects := []Rect{
		{X: 10, Y: h - 140, W: 260, H: 130, Color: panelColor},
		{X: 150, Y: h - 42, W: 100, H: 8, Color: gaugeBGColor},
		{X: 150, Y: h - 42, W: 100 * level, H: 8, Color: gaugeColor},
	}
	labels := []Label{
		{Pos: at(20, h-115), Text: "Simulation Info", Color: labelColor},
		{Pos: at(20, h-90), Text: fmt.Sprintf("Stiffness (k): %.2f", snap.Stiffness), Color: labelColor},
		{Pos: at(20, h-70), Text: fmt.Sprintf("Damping: %.2f", snap.Damping), Color: labelColor},
		{Pos: at(20, h-50), Text: fmt.Sprintf("Velocity: %.1f", snap.Speed), Color: labelColor},
		{Pos: at(20, h-30), Text: fmt.Sprintf("FPS: %.1f", snap.FPS), Color: fpsColor},
		{Pos: at(150, h-90), Text: fmt.Sprintf("Curve: %.0fpx", p.CurveLength), Color: subColor},
		{Pos: at(150, h-70), Text: fmt.Sprintf("Cursor: %.1fpx", p.PointerDist), Color: subColor},
		{Pos: at(150, h-50), Text: "Speed", Color: subColor},
	}
	return rects, labels
}
