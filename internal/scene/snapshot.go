package scene

import (
	"github.com/lao-tseu-is-alive/go-spring-bezier/pb"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/bezier"
	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
)

// Snapshot is an immutable copy of the scene for one frame.
type Snapshot struct {
	Start, Control1, Control2, End geometry.Vector2D

	Pointer              geometry.Vector2D
	Target1, Target2     geometry.Vector2D
	Velocity1, Velocity2 geometry.Vector2D

	Trail1, Trail2 []geometry.Vector2D // oldest first

	Speed     float64 // |Velocity1| + |Velocity2|
	FPS       float64
	Phase     float64 // ripple phase to draw with
	Stiffness float64
	Damping   float64
	Frame     uint64
}

// Curve returns the cubic described by the snapshot.
func (s Snapshot) Curve() bezier.Cubic {
	return bezier.NewCubic(s.Start, s.Control1, s.Control2, s.End)
}

// ToProto converts the Snapshot into its protobuf envelope.
func (s Snapshot) ToProto() *pb.SceneSnapshot {
	return &pb.SceneSnapshot{
		AnchorStart: VecToProto(s.Start),
		Control1:    VecToProto(s.Control1),
		Control2:    VecToProto(s.Control2),
		AnchorEnd:   VecToProto(s.End),
		Pointer:     VecToProto(s.Pointer),
		Target1:     VecToProto(s.Target1),
		Target2:     VecToProto(s.Target2),
		Velocity1:   VecToProto(s.Velocity1),
		Velocity2:   VecToProto(s.Velocity2),
		Trail1:      pointsToProto(s.Trail1),
		Trail2:      pointsToProto(s.Trail2),
		Speed:       s.Speed,
		Fps:         s.FPS,
		Phase:       s.Phase,
		Stiffness:   s.Stiffness,
		Damping:     s.Damping,
		Frame:       s.Frame,
	}
}

// SnapshotFromProto converts a protobuf snapshot back. Missing vectors read as zero.
func SnapshotFromProto(p *pb.SceneSnapshot) Snapshot {
	return Snapshot{
		Start:     VecFromProto(p.GetAnchorStart()),
		Control1:  VecFromProto(p.GetControl1()),
		Control2:  VecFromProto(p.GetControl2()),
		End:       VecFromProto(p.GetAnchorEnd()),
		Pointer:   VecFromProto(p.GetPointer()),
		Target1:   VecFromProto(p.GetTarget1()),
		Target2:   VecFromProto(p.GetTarget2()),
		Velocity1: VecFromProto(p.GetVelocity1()),
		Velocity2: VecFromProto(p.GetVelocity2()),
		Trail1:    pointsFromProto(p.GetTrail1()),
		Trail2:    pointsFromProto(p.GetTrail2()),
		Speed:     p.GetSpeed(),
		FPS:       p.GetFps(),
		Phase:     p.GetPhase(),
		Stiffness: p.GetStiffness(),
		Damping:   p.GetDamping(),
		Frame:     p.GetFrame(),
	}
}

func VecToProto(v geometry.Vector2D) *pb.Vec2 {
	return &pb.Vec2{X: v.X, Y: v.Y}
}

// VecFromProto tolerates nil, like the generated getters.
func VecFromProto(p *pb.Vec2) geometry.Vector2D {
	return geometry.Vector2D{X: p.GetX(), Y: p.GetY()}
}

func pointsToProto(points []geometry.Vector2D) []*pb.Vec2 {
	out := make([]*pb.Vec2, len(points))
	for i, p := range points {
		out[i] = VecToProto(p)
	}
	return out
}

func pointsFromProto(points []*pb.Vec2) []geometry.Vector2D {
	out := make([]geometry.Vector2D, len(points))
	for i, p := range points {
		out[i] = VecFromProto(p)
	}
	return out
}
