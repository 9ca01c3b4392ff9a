// Package bezier evaluates points, tangents and normals on a cubic Bézier curve.
//
// The free functions take the four control points explicitly, which is how the
// renderer calls them once per sample. Cubic bundles the same control points
// and adds the measurements (arc length, nearest point) used by the
// diagnostics panel; those are delegated to honnef.co/go/curve.
package bezier

import (
	"math"

	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
	"honnef.co/go/curve"
)

// PointAt returns the point of the curve at parameter t using the Bernstein basis
// (1-t)³, 3(1-t)²t, 3(1-t)t², t³.
// t is expected in [0,1]; values outside extrapolate the curve.
func PointAt(t float64, p0, p1, p2, p3 geometry.Vector2D) geometry.Vector2D {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(p1.Mul(3 * u * u * t)).
		Add(p2.Mul(3 * u * t * t)).
		Add(p3.Mul(t * t * t))
}

// Derivative returns the (non normalized) first derivative of the curve at t.
func Derivative(t float64, p0, p1, p2, p3 geometry.Vector2D) geometry.Vector2D {
	u := 1 - t
	return p1.Sub(p0).Mul(3 * u * u).
		Add(p2.Sub(p1).Mul(6 * u * t)).
		Add(p3.Sub(p2).Mul(3 * t * t))
}

// TangentAt returns the unit tangent at t.
// Where the derivative vanishes the result is the zero vector.
func TangentAt(t float64, p0, p1, p2, p3 geometry.Vector2D) geometry.Vector2D {
	return Derivative(t, p0, p1, p2, p3).Normalize()
}

// NormalAt returns the unit normal at t, the tangent turned a quarter to the left.
func NormalAt(t float64, p0, p1, p2, p3 geometry.Vector2D) geometry.Vector2D {
	return TangentAt(t, p0, p1, p2, p3).Perp()
}

// Cubic is a cubic Bézier segment.
type Cubic struct {
	P0, P1, P2, P3 geometry.Vector2D
}

// NewCubic creates a Cubic from its four control points.
func NewCubic(p0, p1, p2, p3 geometry.Vector2D) Cubic {
	return Cubic{P0: p0, P1: p1, P2: p2, P3: p3}
}

// PointAt returns the point of c at parameter t.
func (c Cubic) PointAt(t float64) geometry.Vector2D {
	return PointAt(t, c.P0, c.P1, c.P2, c.P3)
}

// Derivative returns the first derivative of c at t.
func (c Cubic) Derivative(t float64) geometry.Vector2D {
	return Derivative(t, c.P0, c.P1, c.P2, c.P3)
}

// TangentAt returns the unit tangent of c at t, zero where the derivative vanishes.
func (c Cubic) TangentAt(t float64) geometry.Vector2D {
	return TangentAt(t, c.P0, c.P1, c.P2, c.P3)
}

// NormalAt returns the unit left normal of c at t.
func (c Cubic) NormalAt(t float64) geometry.Vector2D {
	return NormalAt(t, c.P0, c.P1, c.P2, c.P3)
}

// Extent returns the largest absolute coordinate of the control points.
// It is NaN when any coordinate is NaN.
func (c Cubic) Extent() float64 {
	m := 0.0
	for _, p := range []geometry.Vector2D{c.P0, c.P1, c.P2, c.P3} {
		if p.IsNaN() {
			return math.NaN()
		}
		m = max(m, math.Abs(p.X), math.Abs(p.Y))
	}
	return m
}

// Arclen returns the length of the curve, computed to within accuracy.
// A curve with NaN control points has a NaN length.
func (c Cubic) Arclen(accuracy float64) float64 {
	cb := c.toCurve()
	if cb.IsNaN() || cb.IsInf() {
		return math.NaN()
	}
	return cb.Arclen(accuracy)
}

// Nearest returns the distance from p to the closest point of the curve
// and the parameter t of that point.
func (c Cubic) Nearest(p geometry.Vector2D, accuracy float64) (dist, t float64) {
	cb := c.toCurve()
	if cb.IsNaN() || cb.IsInf() || p.IsNaN() {
		return math.NaN(), math.NaN()
	}
	distSq, t := cb.Nearest(curve.Pt(p.X, p.Y), accuracy)
	return math.Sqrt(distSq), t
}

func (c Cubic) toCurve() curve.CubicBez {
	return curve.CubicBez{
		P0: curve.Pt(c.P0.X, c.P0.Y),
		P1: curve.Pt(c.P1.X, c.P1.Y),
		P2: curve.Pt(c.P2.X, c.P2.Y),
		P3: curve.Pt(c.P3.X, c.P3.Y),
	}
}
