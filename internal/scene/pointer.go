package scene

import "github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"

// Pointer maps pointer positions to the two spring targets.
type Pointer struct {
	Origin geometry.Vector2D // on-screen origin of the drawing surface
	Offset float64           // horizontal displacement of the second target
}

// Targets converts a window position to surface coordinates and returns it
// along with the targets of the first and second spring points.
func (p Pointer) Targets(client geometry.Vector2D) (local, target1, target2 geometry.Vector2D) {
	local = client.Sub(p.Origin)
	return local, local, local.Add(geometry.Vector2D{X: p.Offset})
}
