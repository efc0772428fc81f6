package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-flock/pb"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// TickObserver receives the flock after every completed tick.
// It runs inside the actor, so it must not keep the boids slice.
type TickObserver interface {
	ObserveTick(tick uint64, boids []*behavior.Boid) error
}

// FlockActor owns the authoritative flock. It is the only place Step is
// called, so the behave/update barrier holds no matter who sends Ticks.
type FlockActor struct {
	flock  *behavior.Flock
	bounds behavior.Bounds
	// Communication with UI
	snapshotCh chan<- *pb.Snapshot
	observer   TickObserver

	// --- Benchmark Stats ---
	tickCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor wraps flock. snapshotCh and observer may be nil.
func NewFlockActor(flock *behavior.Flock, bounds behavior.Bounds, snapshotCh chan<- *pb.Snapshot, observer TickObserver) *FlockActor {
	return &FlockActor{
		flock:       flock,
		bounds:      bounds,
		snapshotCh:  snapshotCh,
		observer:    observer,
		lastLogTime: time.Now(),
	}
}

func (a *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock of %d boids is starting...", a.flock.Len())
	return nil
}

func (a *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("Flock started in [%v,%v]x[%v,%v]",
			a.bounds.MinX, a.bounds.MaxX, a.bounds.MinY, a.bounds.MaxY)

	// The Main Simulation Step (Driven by Game Loop or headless runner)
	case *pb.Tick:
		a.advance(ctx, msg.GetSteps())
		a.logBenchmarks(ctx)
		a.pushSnapshot()

	// Dynamic slider updates from UI
	case *pb.Tuning:
		a.tune(ctx, msg)

	case *pb.GetSnapshot:
		ctx.Response(SnapshotOf(a.flock, a.bounds))

	default:
		ctx.Unhandled()
	}
}

func (a *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock stopped after %d ticks", a.flock.Tick())
	return nil
}

func (a *FlockActor) advance(ctx *actor.ReceiveContext, steps uint32) {
	steps = max(steps, 1)
	for i := uint32(0); i < steps; i++ {
		if err := a.flock.Step(ctx.Context()); err != nil {
			ctx.Logger().Warnf("tick %d abandoned: %v", a.flock.Tick()+1, err)
			return
		}
		a.tickCount++
		if a.observer == nil {
			continue
		}
		if err := a.observer.ObserveTick(a.flock.Tick(), a.flock.Boids); err != nil {
			ctx.Logger().Errorf("tick %d observer failed: %v", a.flock.Tick(), err)
		}
	}
}

func (a *FlockActor) tune(ctx *actor.ReceiveContext, msg *pb.Tuning) {
	p := ParamsFromTuning(msg)
	if err := p.Validate(); err != nil {
		ctx.Logger().Warnf("tuning ignored: %v", err)
		return
	}
	a.flock.SetParams(p)
	ctx.Logger().Debugf("tuning applied: %+v", p)
}

func (a *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(a.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Tick: %d | Boids: %d",
			a.tickCount, a.flock.Tick(), a.flock.Len())
		a.tickCount = 0
		a.lastLogTime = time.Now()
	}
}

func (a *FlockActor) pushSnapshot() {
	if a.snapshotCh == nil {
		return
	}
	select {
	case a.snapshotCh <- SnapshotOf(a.flock, a.bounds):
	default:
		// UI busy, skip frame
	}
}

// SpawnFlock builds the flock described by cfg and spawns its actor as "flock".
func SpawnFlock(ctx context.Context, system actor.ActorSystem, cfg *Config, snapshotCh chan<- *pb.Snapshot, observer TickObserver) (*actor.PID, error) {
	pid, err := system.Spawn(ctx, "flock", NewFlockActor(cfg.NewFlock(), cfg.World, snapshotCh, observer))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}
	return pid, nil
}
