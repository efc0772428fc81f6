// Package telemetry computes per-tick flock statistics and writes them as CSV.
package telemetry

import (
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the flock after one tick.
type Stats struct {
	Tick  uint64 `csv:"tick"`
	Boids int    `csv:"boids"`

	// Speed distribution
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedMax  float64 `csv:"speed_max"`

	// Order parameter: 1 when every boid heads the same way, ~0 when random
	Polarization float64 `csv:"polarization"`

	// Group shape
	CentroidX float64 `csv:"centroid_x"`
	CentroidY float64 `csv:"centroid_y"`
	Spread    float64 `csv:"spread"` // mean distance to centroid

	// Boids past the domain edge (one-tick overshoot before the bounce lands)
	OutOfBounds int `csv:"out_of_bounds"`
}

// Compute summarizes boids. An empty flock yields a Stats with only Tick set.
func Compute(tick uint64, boids []*behavior.Boid) Stats {
	s := Stats{Tick: tick, Boids: len(boids)}
	n := len(boids)
	if n == 0 {
		return s
	}

	speeds := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	var heading geometry.Vector2D
	for i, b := range boids {
		speeds[i] = b.Velocity.Len()
		xs[i] = b.Position.X
		ys[i] = b.Position.Y
		heading = heading.Add(b.Velocity.Normalize())
		if !b.Bounds.Contains(b.Position) {
			s.OutOfBounds++
		}
	}

	s.SpeedMean = stat.Mean(speeds, nil)
	if n > 1 {
		s.SpeedStd = stat.StdDev(speeds, nil)
	}
	s.SpeedMax = floats.Max(speeds)
	s.Polarization = heading.Len() / float64(n)

	s.CentroidX = stat.Mean(xs, nil)
	s.CentroidY = stat.Mean(ys, nil)
	centroid := geometry.Vector2D{X: s.CentroidX, Y: s.CentroidY}
	dists := make([]float64, n)
	for i, b := range boids {
		dists[i] = b.Position.DistanceTo(centroid)
	}
	s.Spread = stat.Mean(dists, nil)

	return s
}
