package behavior

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	"go.uber.org/atomic"
)

var (
	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("invalid boid parameters")
	// ErrInvalidBounds is returned by Bounds.Validate.
	ErrInvalidBounds = errors.New("invalid domain bounds")
)

// ID is an opaque label for a boid. It has no behavioral effect.
type ID uint64

func (id ID) String() string {
	return fmt.Sprintf("boid-%04d", uint64(id))
}

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Inc())
}

// Params holds the physical limits and rule weights of a boid.
// They are configuration: set at construction, optionally overridden between ticks.
type Params struct {
	MaxSwimSpeed       float64 `json:"maxSwimSpeed" yaml:"maxSwimSpeed"`             // speed cap
	MaxDelta           float64 `json:"maxDelta" yaml:"maxDelta"`                     // acceleration cap
	PerceptionDistance float64 `json:"perceptionDistance" yaml:"perceptionDistance"` // alignment & cohesion radius
	AvoidanceDistance  float64 `json:"avoidanceDistance" yaml:"avoidanceDistance"`   // separation radius

	AlignWeight      float64 `json:"alignWeight" yaml:"alignWeight"`
	CohesionWeight   float64 `json:"cohesionWeight" yaml:"cohesionWeight"`
	SeparationWeight float64 `json:"separationWeight" yaml:"separationWeight"`
}

// DefaultParams returns the classic fish-school settings.
func DefaultParams() Params {
	return Params{
		MaxSwimSpeed:       20,
		MaxDelta:           10,
		PerceptionDistance: 30,
		AvoidanceDistance:  6,
		AlignWeight:        0.5,
		CohesionWeight:     1,
		SeparationWeight:   1,
	}
}

// Validate checks that limits are non-negative and that the avoidance radius
// is strictly inside the perception radius.
func (p Params) Validate() error {
	switch {
	case p.MaxSwimSpeed < 0 || p.MaxDelta < 0:
		return fmt.Errorf("%w: limits must be >= 0 (maxSwimSpeed=%v, maxDelta=%v)",
			ErrInvalidParams, p.MaxSwimSpeed, p.MaxDelta)
	case p.AvoidanceDistance < 0:
		return fmt.Errorf("%w: avoidanceDistance must be >= 0, got %v", ErrInvalidParams, p.AvoidanceDistance)
	case p.AvoidanceDistance >= p.PerceptionDistance:
		return fmt.Errorf("%w: avoidanceDistance (%v) must be < perceptionDistance (%v)",
			ErrInvalidParams, p.AvoidanceDistance, p.PerceptionDistance)
	case p.AlignWeight < 0 || p.CohesionWeight < 0 || p.SeparationWeight < 0:
		return fmt.Errorf("%w: weights must be >= 0", ErrInvalidParams)
	}
	return nil
}

// Bounds is the inclusive rectangle a boid swims in.
type Bounds struct {
	MinX float64 `json:"minX" yaml:"minX"`
	MinY float64 `json:"minY" yaml:"minY"`
	MaxX float64 `json:"maxX" yaml:"maxX"`
	MaxY float64 `json:"maxY" yaml:"maxY"`
}

// Validate checks min <= max on both axes.
func (r Bounds) Validate() error {
	if r.MinX > r.MaxX || r.MinY > r.MaxY {
		return fmt.Errorf("%w: [%v,%v]x[%v,%v]", ErrInvalidBounds, r.MinX, r.MaxX, r.MinY, r.MaxY)
	}
	return nil
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Bounds) Contains(p geometry.Vector2D) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Width of the domain.
func (r Bounds) Width() float64 { return r.MaxX - r.MinX }

// Height of the domain.
func (r Bounds) Height() float64 { return r.MaxY - r.MinY }

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// Position, Velocity and ID are read by renderers. Delta is the acceleration
// accumulated by Behave and consumed by Update.
type Boid struct {
	ID       ID
	Position geometry.Vector2D
	Velocity geometry.Vector2D
	Delta    geometry.Vector2D

	Params Params
	Bounds Bounds
}

// New creates a boid at (x, y) inside bounds, with default params and a random
// velocity and delta. A nil rng uses the global source.
func New(x, y float64, bounds Bounds, rng *rand.Rand) *Boid {
	p := DefaultParams()
	randf := rand.Float64
	if rng != nil {
		randf = rng.Float64
	}
	return &Boid{
		ID:       nextID(),
		Position: geometry.Vector2D{X: x, Y: y},
		Velocity: geometry.Vector2D{X: (randf() - 0.5) * p.MaxSwimSpeed, Y: (randf() - 0.5) * p.MaxSwimSpeed},
		Delta:    geometry.Vector2D{X: (randf() - 0.5) * p.MaxDelta, Y: (randf() - 0.5) * p.MaxDelta},
		Params:   p,
		Bounds:   bounds,
	}
}

// ============================================================================
// Integration
// ============================================================================

// Update advances the boid by one tick: caps speed and delta, bounces off the
// domain edges, integrates, then clears Delta.
func (b *Boid) Update() {
	b.constrainSpeed()
	b.constrainDelta()
	b.bounce()
	b.Position = b.Position.Add(b.Velocity)
	b.Velocity = b.Velocity.Add(b.Delta)
	b.Delta = geometry.Zero
}

func (b *Boid) constrainSpeed() {
	b.Velocity = b.Velocity.Limit(b.Params.MaxSwimSpeed)
}

func (b *Boid) constrainDelta() {
	b.Delta = b.Delta.Limit(b.Params.MaxDelta)
}

// bounce looks one step ahead and flips velocity and delta on every axis where
// the next position would leave the domain. Position itself is never clamped.
func (b *Boid) bounce() {
	next := b.Position.Add(b.Velocity).Add(b.Delta)
	if next.X > b.Bounds.MaxX || next.X < b.Bounds.MinX {
		b.Velocity.X = -b.Velocity.X
		b.Delta.X = -b.Delta.X
	}
	if next.Y > b.Bounds.MaxY || next.Y < b.Bounds.MinY {
		b.Velocity.Y = -b.Velocity.Y
		b.Delta.Y = -b.Delta.Y
	}
}

// ============================================================================
// Steering rules
// ============================================================================

// Behave adds the weighted alignment, cohesion and separation steering to Delta.
// flock is read-only; it may contain b itself.
func (b *Boid) Behave(flock []*Boid) {
	alignment := b.Align(flock).Mul(b.Params.AlignWeight)
	cohesion := b.Cohese(flock).Mul(b.Params.CohesionWeight)
	avoidance := b.Avoid(flock).Mul(b.Params.SeparationWeight)
	b.Delta = b.Delta.Add(alignment).Add(cohesion).Add(avoidance)
}

// Align returns the acceleration that matches the mean velocity of the boids
// within PerceptionDistance.
func (b *Boid) Align(flock []*Boid) geometry.Vector2D {
	var sum geometry.Vector2D
	n := b.forEachNeighbor(flock, b.Params.PerceptionDistance, func(other *Boid, _ float64) {
		sum = sum.Add(other.Velocity)
	})
	if n == 0 {
		return geometry.Zero
	}
	return sum.Mul(1 / float64(n)).Sub(b.Velocity)
}

// Cohese returns the unit direction toward the centroid of the boids within
// PerceptionDistance.
func (b *Boid) Cohese(flock []*Boid) geometry.Vector2D {
	var sum geometry.Vector2D
	n := b.forEachNeighbor(flock, b.Params.PerceptionDistance, func(other *Boid, _ float64) {
		sum = sum.Add(other.Position)
	})
	if n == 0 {
		return geometry.Zero
	}
	return sum.Mul(1 / float64(n)).Sub(b.Position).Normalize()
}

// Avoid returns the unit direction away from the boids within AvoidanceDistance.
// Each neighbor pushes along its unit offset scaled by 1/d, so closer boids dominate.
func (b *Boid) Avoid(flock []*Boid) geometry.Vector2D {
	mean, n := b.repulsion(flock)
	if n == 0 {
		return geometry.Zero
	}
	return mean.Normalize()
}

// repulsion is the averaged, not yet normalized, separation vector.
func (b *Boid) repulsion(flock []*Boid) (geometry.Vector2D, int) {
	var sum geometry.Vector2D
	n := b.forEachNeighbor(flock, b.Params.AvoidanceDistance, func(other *Boid, dist float64) {
		away := b.Position.Sub(other.Position).Mul(1 / dist)
		sum = sum.Add(away.Mul(1 / dist))
	})
	if n == 0 {
		return geometry.Zero, 0
	}
	return sum.Mul(1 / float64(n)), n
}

// forEachNeighbor calls fn for every boid whose distance d to b satisfies
// 0 < d < radius, and returns how many matched. b itself and coincident boids
// have d == 0 and are skipped.
func (b *Boid) forEachNeighbor(flock []*Boid, radius float64, fn func(other *Boid, dist float64)) int {
	n := 0
	for _, other := range flock {
		dist := other.Position.DistanceTo(b.Position)
		if dist > 0 && dist < radius {
			fn(other, dist)
			n++
		}
	}
	return n
}
