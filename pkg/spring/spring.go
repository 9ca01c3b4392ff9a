package spring

import "github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"

// Point is a particle pulled toward Target by a proportional force.
// Its mass is 1 and damping scales the velocity directly every step,
// so damping in (0,1) always shrinks the velocity regardless of the force.
type Point struct {
	Pos    geometry.Vector2D
	Vel    geometry.Vector2D
	Target geometry.Vector2D
}

// New creates a Point at rest on pos, targeting its own position.
func New(pos geometry.Vector2D) *Point {
	return &Point{Pos: pos, Target: pos}
}

// Update advances the point by one semi-implicit Euler step:
//
//	force = (target - pos) * stiffness
//	vel   = (vel + force) * damping
//	pos   = pos + vel
//
// Parameters are not validated: a high stiffness or a damping >= 1 makes the
// point oscillate or diverge, and NaN inputs propagate into the state.
func (p *Point) Update(stiffness, damping float64) {
	force := p.Target.Sub(p.Pos).Mul(stiffness)
	p.Vel = p.Vel.Add(force).Mul(damping)
	p.Pos = p.Pos.Add(p.Vel)
}

// Retarget sets the position the point is pulled toward.
func (p *Point) Retarget(target geometry.Vector2D) {
	p.Target = target
}

// Reset puts the point back at rest on pos.
func (p *Point) Reset(pos geometry.Vector2D) {
	p.Pos = pos
	p.Vel = geometry.Vector2D{}
	p.Target = pos
}

// Speed is the magnitude of the velocity.
func (p *Point) Speed() float64 {
	return p.Vel.Len()
}
