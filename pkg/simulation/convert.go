package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids-flock/pb"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// VectorToProto converts a geometry vector into its wire form.
func VectorToProto(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

// VectorFromProto tolerates nil, which decodes as the zero vector.
func VectorFromProto(v *pb.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

// BoidToProto keeps only what renderers consume: id, position and velocity.
func BoidToProto(b *behavior.Boid) *pb.BoidState {
	return &pb.BoidState{
		Id:       uint64(b.ID),
		Position: VectorToProto(b.Position),
		Velocity: VectorToProto(b.Velocity),
	}
}

// SnapshotOf copies the state of every boid after the last completed tick.
func SnapshotOf(f *behavior.Flock, bounds behavior.Bounds) *pb.Snapshot {
	snap := &pb.Snapshot{
		Tick:  f.Tick(),
		Boids: make([]*pb.BoidState, 0, f.Len()),
		MinX:  bounds.MinX,
		MinY:  bounds.MinY,
		MaxX:  bounds.MaxX,
		MaxY:  bounds.MaxY,
	}
	for _, b := range f.Boids {
		snap.Boids = append(snap.Boids, BoidToProto(b))
	}
	return snap
}

// ParamsToTuning builds the message a UI sends to override boid params.
func ParamsToTuning(p behavior.Params) *pb.Tuning {
	return &pb.Tuning{
		MaxSwimSpeed:       p.MaxSwimSpeed,
		MaxDelta:           p.MaxDelta,
		PerceptionDistance: p.PerceptionDistance,
		AvoidanceDistance:  p.AvoidanceDistance,
		AlignWeight:        p.AlignWeight,
		CohesionWeight:     p.CohesionWeight,
		SeparationWeight:   p.SeparationWeight,
	}
}

// ParamsFromTuning is the inverse of ParamsToTuning.
func ParamsFromTuning(t *pb.Tuning) behavior.Params {
	return behavior.Params{
		MaxSwimSpeed:       t.GetMaxSwimSpeed(),
		MaxDelta:           t.GetMaxDelta(),
		PerceptionDistance: t.GetPerceptionDistance(),
		AvoidanceDistance:  t.GetAvoidanceDistance(),
		AlignWeight:        t.GetAlignWeight(),
		CohesionWeight:     t.GetCohesionWeight(),
		SeparationWeight:   t.GetSeparationWeight(),
	}
}
