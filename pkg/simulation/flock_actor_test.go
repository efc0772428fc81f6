package simulation

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-flock/pb"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

type countingObserver struct {
	mu    sync.Mutex
	ticks []uint64
}

func (o *countingObserver) ObserveTick(tick uint64, boids []*behavior.Boid) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ticks = append(o.ticks, tick)
	return nil
}

func (o *countingObserver) seen() []uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]uint64(nil), o.ticks...)
}

// spawnFlock starts an actor system with a single FlockActor of n boids.
func spawnFlock(t *testing.T, n int, snapshotCh chan<- *pb.Snapshot, obs TickObserver) (context.Context, *actor.PID, *behavior.Flock) {
	t.Helper()
	ctx := context.Background()

	system, err := actor.NewActorSystem("FlockTest", actor.WithLogger(log.DiscardLogger))
	if err != nil {
		t.Fatalf("NewActorSystem() error = %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })

	bounds := behavior.Bounds{MinX: 0, MinY: 0, MaxX: 200, MaxY: 200}
	flock := behavior.NewFlock(n, bounds, behavior.DefaultParams(), rand.New(rand.NewPCG(1, 2)))
	pid, err := system.Spawn(ctx, "flock", NewFlockActor(flock, bounds, snapshotCh, obs))
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	return ctx, pid, flock
}

func askSnapshot(t *testing.T, ctx context.Context, pid *actor.PID) *pb.Snapshot {
	t.Helper()
	resp, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, time.Second)
	if err != nil {
		t.Fatalf("Ask(GetSnapshot) error = %v", err)
	}
	snap, ok := resp.(*pb.Snapshot)
	if !ok {
		t.Fatalf("Ask(GetSnapshot) returned %T", resp)
	}
	return snap
}

func TestFlockActor_TickAndSnapshot(t *testing.T) {
	obs := &countingObserver{}
	snapshotCh := make(chan *pb.Snapshot, 4)
	ctx, pid, _ := spawnFlock(t, 20, snapshotCh, obs)

	if err := actor.Tell(ctx, pid, &pb.Tick{Steps: 3}); err != nil {
		t.Fatalf("Tell(Tick) error = %v", err)
	}
	// zero steps still advances one tick
	if err := actor.Tell(ctx, pid, &pb.Tick{}); err != nil {
		t.Fatalf("Tell(Tick) error = %v", err)
	}

	snap := askSnapshot(t, ctx, pid)
	if snap.GetTick() != 4 {
		t.Errorf("snapshot tick = %d; want 4", snap.GetTick())
	}
	if len(snap.GetBoids()) != 20 || snap.GetMaxX() != 200 {
		t.Errorf("snapshot boids=%d maxX=%v; want 20 and 200", len(snap.GetBoids()), snap.GetMaxX())
	}

	if got := obs.seen(); len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Errorf("observer saw ticks %v; want 1..4", got)
	}

	select {
	case pushed := <-snapshotCh:
		if pushed.GetTick() != 3 {
			t.Errorf("first pushed snapshot tick = %d; want 3", pushed.GetTick())
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot pushed after Tick")
	}
}

func TestFlockActor_Tuning(t *testing.T) {
	ctx, pid, flock := spawnFlock(t, 5, nil, nil)

	p := behavior.DefaultParams()
	p.CohesionWeight = 3
	if err := actor.Tell(ctx, pid, ParamsToTuning(p)); err != nil {
		t.Fatalf("Tell(Tuning) error = %v", err)
	}

	// avoidance >= perception is rejected and leaves the params alone
	bad := p
	bad.AvoidanceDistance = bad.PerceptionDistance + 1
	if err := actor.Tell(ctx, pid, ParamsToTuning(bad)); err != nil {
		t.Fatalf("Tell(Tuning) error = %v", err)
	}

	// Ask is processed after both Tells, so reading the flock is safe afterwards
	askSnapshot(t, ctx, pid)
	for _, b := range flock.Boids {
		if b.Params != p {
			t.Fatalf("%v params = %+v; want %+v", b.ID, b.Params, p)
		}
	}
}

func TestFlockActor_FullSnapshotChannelDoesNotBlock(t *testing.T) {
	snapshotCh := make(chan *pb.Snapshot, 1)
	ctx, pid, _ := spawnFlock(t, 3, snapshotCh, nil)

	for i := 0; i < 5; i++ {
		if err := actor.Tell(ctx, pid, &pb.Tick{}); err != nil {
			t.Fatalf("Tell(Tick) error = %v", err)
		}
	}
	if snap := askSnapshot(t, ctx, pid); snap.GetTick() != 5 {
		t.Errorf("tick = %d; want 5", snap.GetTick())
	}
	if len(snapshotCh) != 1 {
		t.Errorf("channel holds %d snapshots; want 1", len(snapshotCh))
	}
}
