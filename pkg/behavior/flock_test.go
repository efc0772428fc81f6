package behavior

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
)

// cloneFlock deep-copies every boid so two flocks can be stepped side by side.
func cloneFlock(f *Flock) *Flock {
	c := &Flock{Boids: make([]*Boid, len(f.Boids)), Workers: f.Workers}
	for i, b := range f.Boids {
		cp := *b
		c.Boids[i] = &cp
	}
	return c
}

func TestNewFlock(t *testing.T) {
	bounds := Bounds{MinX: -50, MinY: 10, MaxX: 50, MaxY: 60}
	params := DefaultParams()
	params.AlignWeight = 0.9

	f := NewFlock(40, bounds, params, rand.New(rand.NewPCG(3, 4)))

	if f.Len() != 40 {
		t.Fatalf("Len() = %d; want 40", f.Len())
	}
	seen := make(map[ID]bool)
	for _, b := range f.Boids {
		if !bounds.Contains(b.Position) {
			t.Errorf("%v placed at %v outside %+v", b.ID, b.Position, bounds)
		}
		if b.Params != params {
			t.Errorf("%v params = %+v; want %+v", b.ID, b.Params, params)
		}
		if seen[b.ID] {
			t.Errorf("duplicate ID %v", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestFlock_StepUsesPreTickSnapshot(t *testing.T) {
	f := NewFlock(30, Bounds{MinX: 0, MinY: 0, MaxX: 80, MaxY: 80}, DefaultParams(), rand.New(rand.NewPCG(5, 6)))
	f.Workers = 1
	want := cloneFlock(f)

	// reference: every behave, then every update
	for _, b := range want.Boids {
		b.Behave(want.Boids)
	}
	for _, b := range want.Boids {
		b.Update()
	}

	if err := f.Step(context.Background()); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	for i, b := range f.Boids {
		if b.Position != want.Boids[i].Position || b.Velocity != want.Boids[i].Velocity {
			t.Errorf("boid %d: got pos %v vel %v; want pos %v vel %v",
				i, b.Position, b.Velocity, want.Boids[i].Position, want.Boids[i].Velocity)
		}
	}
	if f.Tick() != 1 {
		t.Errorf("Tick() = %d; want 1", f.Tick())
	}
}

func TestFlock_ParallelMatchesSerial(t *testing.T) {
	serial := NewFlock(parallelThreshold*2, Bounds{MinX: 0, MinY: 0, MaxX: 300, MaxY: 300}, DefaultParams(), rand.New(rand.NewPCG(7, 8)))
	serial.Workers = 1
	parallel := cloneFlock(serial)
	parallel.Workers = 4

	ctx := context.Background()
	for tick := 0; tick < 20; tick++ {
		if err := serial.Step(ctx); err != nil {
			t.Fatalf("serial Step() error = %v", err)
		}
		if err := parallel.Step(ctx); err != nil {
			t.Fatalf("parallel Step() error = %v", err)
		}
	}

	for i := range serial.Boids {
		s, p := serial.Boids[i], parallel.Boids[i]
		if s.Position != p.Position || s.Velocity != p.Velocity {
			t.Fatalf("boid %d diverged: serial %v/%v parallel %v/%v", i, s.Position, s.Velocity, p.Position, p.Velocity)
		}
	}
}

func TestFlock_StepCancelled(t *testing.T) {
	for _, workers := range []int{1, 4} {
		f := NewFlock(parallelThreshold+10, Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, DefaultParams(), rand.New(rand.NewPCG(9, 10)))
		f.Workers = workers
		before := cloneFlock(f)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := f.Step(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("workers=%d: Step() error = %v; want context.Canceled", workers, err)
		}
		for i, b := range f.Boids {
			was := before.Boids[i]
			if b.Position != was.Position || b.Velocity != was.Velocity || b.Delta != was.Delta {
				t.Errorf("workers=%d: boid %d changed by a cancelled tick", workers, i)
			}
		}
		if f.Tick() != 0 {
			t.Errorf("workers=%d: Tick() = %d; want 0", workers, f.Tick())
		}
	}
}

func TestFlock_Run(t *testing.T) {
	f := NewFlock(10, Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, DefaultParams(), rand.New(rand.NewPCG(11, 12)))

	var seen []uint64
	err := f.Run(context.Background(), 5, func(tick uint64) error {
		seen = append(seen, tick)
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if f.Tick() != 5 || len(seen) != 5 || seen[4] != 5 {
		t.Errorf("Run(5) ticks = %d, callbacks = %v; want 5 ticks numbered 1..5", f.Tick(), seen)
	}

	stop := errors.New("stop")
	err = f.Run(context.Background(), 0, func(tick uint64) error {
		if tick == 8 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Run(0) error = %v; want stop", err)
	}
	if f.Tick() != 8 {
		t.Errorf("Tick() = %d; want 8", f.Tick())
	}
}

func TestFlock_SetParams(t *testing.T) {
	f := NewFlock(5, Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, DefaultParams(), nil)
	p := DefaultParams()
	p.SeparationWeight = 4
	f.SetParams(p)
	for _, b := range f.Boids {
		if b.Params.SeparationWeight != 4 {
			t.Errorf("%v SeparationWeight = %v; want 4", b.ID, b.Params.SeparationWeight)
		}
	}
}

func BenchmarkFlock_Step(b *testing.B) {
	for _, workers := range []int{1, 0} {
		f := NewFlock(500, Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}, DefaultParams(), rand.New(rand.NewPCG(1, 1)))
		f.Workers = workers
		name := "serial"
		if workers == 0 {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				_ = f.Step(ctx)
			}
		})
	}
}
