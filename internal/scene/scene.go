// Package scene holds the simulation state of the spring driven Bézier curve:
// two fixed anchors, two spring control points chasing the pointer, their
// trails and the frame clock. It has no rendering or window dependency so a
// whole frame can be stepped deterministically in tests.
package scene

import (
	"time"

	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/bezier"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/spring"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/trail"
)

// Frame is the explicit input of one simulation step.
type Frame struct {
	Delta     time.Duration // time elapsed since the previous frame
	Stiffness float64
	Damping   float64
}

type Scene struct {
	cfg   *Config
	input Pointer

	start, end geometry.Vector2D
	p1, p2     *spring.Point
	pointer    geometry.Vector2D

	trail1, trail2 *trail.Trail

	// phase is the ripple accumulator; drawPhase is the value the current frame is drawn with.
	phase     float64
	drawPhase float64
	fps       float64
	frame     uint64

	stiffness float64
	damping   float64
}

// New creates a Scene laid out from cfg, with both springs at rest.
func New(cfg *Config) *Scene {
	return &Scene{
		cfg:       cfg,
		input:     Pointer{Origin: cfg.SurfaceOrigin, Offset: cfg.TargetOffset},
		start:     cfg.AnchorStart(),
		end:       cfg.AnchorEnd(),
		p1:        spring.New(cfg.Control1Home()),
		p2:        spring.New(cfg.Control2Home()),
		trail1:    trail.New(cfg.TrailCapacity),
		trail2:    trail.New(cfg.TrailCapacity),
		stiffness: cfg.Stiffness.Value,
		damping:   cfg.Damping.Value,
	}
}

// MovePointer handles a pointer-move event given in window coordinates.
func (s *Scene) MovePointer(client geometry.Vector2D) {
	local, t1, t2 := s.input.Targets(client)
	s.pointer = local
	s.p1.Retarget(t1)
	s.p2.Retarget(t2)
}

// Step advances the scene by one frame: frame rate, springs, trails, then ripple phase.
// The frame rate is derived from f.Delta and left unchanged when the delta is not positive.
func (s *Scene) Step(f Frame) {
	if f.Delta > 0 {
		s.fps = float64(time.Second) / float64(f.Delta)
	}
	s.stiffness = f.Stiffness
	s.damping = f.Damping

	s.p1.Update(f.Stiffness, f.Damping)
	s.p2.Update(f.Stiffness, f.Damping)

	s.trail1.Push(s.p1.Pos)
	s.trail2.Push(s.p2.Pos)

	s.drawPhase = s.phase
	s.phase += s.cfg.PhaseStep
	s.frame++
}

// Reset puts both springs back at rest on their start positions and clears the trails.
func (s *Scene) Reset() {
	s.p1.Reset(s.cfg.Control1Home())
	s.p2.Reset(s.cfg.Control2Home())
	s.trail1.Clear()
	s.trail2.Clear()
}

// Curve returns the current cubic: fixed anchors and the two spring positions.
func (s *Scene) Curve() bezier.Cubic {
	return bezier.NewCubic(s.start, s.p1.Pos, s.p2.Pos, s.end)
}

// Speed is the combined velocity magnitude of both spring points.
func (s *Scene) Speed() float64 {
	return s.p1.Speed() + s.p2.Speed()
}

// FPS is the frame rate measured at the last step.
func (s *Scene) FPS() float64 {
	return s.fps
}

// Frames is the number of steps taken so far.
func (s *Scene) Frames() uint64 {
	return s.frame
}

// Snapshot copies everything needed to draw the current frame.
func (s *Scene) Snapshot() Snapshot {
	return Snapshot{
		Start:     s.start,
		Control1:  s.p1.Pos,
		Control2:  s.p2.Pos,
		End:       s.end,
		Pointer:   s.pointer,
		Target1:   s.p1.Target,
		Target2:   s.p2.Target,
		Velocity1: s.p1.Vel,
		Velocity2: s.p2.Vel,
		Trail1:    s.trail1.Points(),
		Trail2:    s.trail2.Points(),
		Speed:     s.Speed(),
		FPS:       s.fps,
		Phase:     s.drawPhase,
		Stiffness: s.stiffness,
		Damping:   s.damping,
		Frame:     s.frame,
	}
}
