package simulation

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/render"
)

// debugAscent is the distance from the top of a debug font line to its baseline.
const debugAscent = 12

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// scratch receives white debug text that is then drawn tinted.
var scratch *ebiten.Image

func drawPlan(screen *ebiten.Image, p render.Plan) {
	screen.Fill(p.Background)
	strokeLines(screen, p.Grid)
	fillDots(screen, p.Trails)
	strokeLines(screen, p.Curve)
	strokeLines(screen, p.Tangents)
	fillDots(screen, p.Markers)
	drawLabels(screen, p.Labels)
	strokeLines(screen, p.Guide)
	for _, r := range p.Panel {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, true)
	}
	drawLabels(screen, p.PanelText)
}

func strokeLines(screen *ebiten.Image, lines []render.Line) {
	for _, l := range lines {
		vector.StrokeLine(screen,
			float32(l.From.X), float32(l.From.Y),
			float32(l.To.X), float32(l.To.Y),
			float32(l.Width), l.Color, true)
	}
}

func fillDots(screen *ebiten.Image, dots []render.Dot) {
	for _, d := range dots {
		vector.FillCircle(screen, float32(d.Center.X), float32(d.Center.Y), float32(d.Radius), d.Color, true)
	}
}

func drawLabels(screen *ebiten.Image, labels []render.Label) {
	for _, l := range labels {
		x, y := int(l.Pos.X), int(l.Pos.Y)-debugAscent
		if l.Color == white {
			ebitenutil.DebugPrintAt(screen, l.Text, x, y)
			continue
		}
		if scratch == nil {
			scratch = ebiten.NewImage(320, 16)
		}
		scratch.Clear()
		ebitenutil.DebugPrint(scratch, l.Text)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleWithColor(l.Color)
		screen.DrawImage(scratch, op)
	}
}
