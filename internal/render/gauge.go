package render

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	gaugeFrequency = 6.0
	gaugeDamping   = 1.0
)

// Gauge smooths the raw spring speed for display with a critically damped spring.
type Gauge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func NewGauge(fps int) *Gauge {
	if fps <= 0 {
		fps = 60
	}
	return &Gauge{spring: harmonica.NewSpring(harmonica.FPS(fps), gaugeFrequency, gaugeDamping)}
}

// Update moves the gauge one frame towards target and returns the displayed value.
// Non finite targets are ignored so a diverged simulation does not poison the gauge.
func (g *Gauge) Update(target float64) float64 {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return g.pos
	}
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, target)
	return g.pos
}

func (g *Gauge) Value() float64 { return g.pos }

func (g *Gauge) Reset() {
	g.pos, g.vel = 0, 0
}
