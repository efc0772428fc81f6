package behavior

import (
	"context"
	"math/rand/v2"
	"runtime"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the minimum flock size for a concurrent behave phase.
// Below this, a single goroutine is faster than the scheduling overhead.
const parallelThreshold = 128

// Flock is the collection a driving loop owns. A tick runs Behave for every
// boid against the pre-tick state, then Update for every boid.
type Flock struct {
	Boids []*Boid

	// Workers bounds the goroutines used by the behave phase.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	tick  uint64
	saved []geometry.Vector2D // deltas held before the current behave phase
}

// NewFlock places n boids uniformly at random inside bounds, all sharing params.
func NewFlock(n int, bounds Bounds, params Params, rng *rand.Rand) *Flock {
	randf := rand.Float64
	if rng != nil {
		randf = rng.Float64
	}
	f := &Flock{Boids: make([]*Boid, n)}
	for i := range f.Boids {
		x := bounds.MinX + randf()*bounds.Width()
		y := bounds.MinY + randf()*bounds.Height()
		b := New(x, y, bounds, rng)
		b.Params = params
		f.Boids[i] = b
	}
	return f
}

// Len returns the number of boids.
func (f *Flock) Len() int { return len(f.Boids) }

// Tick returns how many steps have completed.
func (f *Flock) Tick() uint64 { return f.tick }

// SetParams overrides the params of every boid. Call it between steps.
func (f *Flock) SetParams(p Params) {
	for _, b := range f.Boids {
		b.Params = p
	}
}

// Step advances the whole flock by one tick.
// Every Behave call completes before the first Update starts, so no boid ever
// reacts to a neighbor that already moved this tick. If ctx is cancelled during
// the behave phase the tick is abandoned: deltas are restored to their
// pre-tick values and positions and velocities are left untouched.
func (f *Flock) Step(ctx context.Context) error {
	f.saveDeltas()
	if err := f.behave(ctx); err != nil {
		f.restoreDeltas()
		return err
	}
	for _, b := range f.Boids {
		b.Update()
	}
	f.tick++
	return nil
}

// Run calls Step ticks times, or until ctx is done when ticks is zero.
// onTick, when not nil, runs after each completed step; an error stops the run.
func (f *Flock) Run(ctx context.Context, ticks uint64, onTick func(tick uint64) error) error {
	for i := uint64(0); ticks == 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f.Step(ctx); err != nil {
			return err
		}
		if onTick != nil {
			if err := onTick(f.tick); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Flock) behave(ctx context.Context) error {
	n := len(f.Boids)
	workers := f.workers()
	if n < parallelThreshold || workers < 2 {
		for _, b := range f.Boids {
			b.Behave(f.Boids)
		}
		return ctx.Err()
	}

	// Behave reads Position and Velocity of every boid and writes only its
	// own Delta, so chunks need no locking.
	g, gctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for _, b := range f.Boids[start:end] {
				if err := gctx.Err(); err != nil {
					return err
				}
				b.Behave(f.Boids)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (f *Flock) saveDeltas() {
	f.saved = f.saved[:0]
	for _, b := range f.Boids {
		f.saved = append(f.saved, b.Delta)
	}
}

func (f *Flock) restoreDeltas() {
	for i, b := range f.Boids {
		b.Delta = f.saved[i]
	}
}

func (f *Flock) workers() int {
	if f.Workers > 0 {
		return f.Workers
	}
	return runtime.GOMAXPROCS(0)
}
