package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-flock/pb"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/telemetry"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

// batchSize is how many ticks go into one Tick message between progress reports.
const batchSize = 100

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to a JSON or YAML config (empty = defaults)")
	ticks := flag.Uint64("ticks", 0, "Stop after N ticks (0 = config value, then unlimited)")
	seed := flag.Uint64("seed", 0, "RNG seed override (0 = keep config value)")
	outputDir := flag.String("output-dir", "", "Output directory for telemetry.csv and config.yaml")
	workers := flag.Int("workers", -1, "Behave phase goroutines (-1 = config value, 0 = GOMAXPROCS)")
	sample := flag.Uint64("sample-every", 10, "Record telemetry every N ticks")
	debug := flag.Bool("debug", false, "Debug level actor logging")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := simulation.LoadConfigOrDefault(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *ticks != 0 {
		cfg.Ticks = *ticks
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := run(cfg, *sample, *debug); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *simulation.Config, sampleEvery uint64, debug bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := telemetry.NewOutputManager(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}
	recorder := telemetry.NewRecorder(out, sampleEvery)

	level := golog.InfoLevel
	if debug {
		level = golog.DebugLevel
	}
	// actor work must finish even after ctx is cancelled
	sysCtx := context.WithoutCancel(ctx)
	system, err := actor.NewActorSystem("BoidsFlockHeadless", actor.WithLogger(golog.New(level, os.Stderr)))
	if err != nil {
		return err
	}
	if err := system.Start(sysCtx); err != nil {
		return err
	}
	defer func() { _ = system.Stop(sysCtx) }()

	pid, err := simulation.SpawnFlock(sysCtx, system, cfg, nil, recorder)
	if err != nil {
		return err
	}

	slog.Info("starting headless simulation",
		"seed", cfg.Seed,
		"boids", cfg.NumBoids,
		"ticks", cfg.Ticks,
		"workers", cfg.Workers,
		"output_dir", cfg.OutputDir,
	)

	start := time.Now()
	var done uint64
	for cfg.Ticks == 0 || done < cfg.Ticks {
		if ctx.Err() != nil {
			slog.Info("interrupted", "tick", done)
			break
		}
		steps := uint64(batchSize)
		if cfg.Ticks > 0 {
			steps = min(steps, cfg.Ticks-done)
		}
		if err := actor.Tell(sysCtx, pid, &pb.Tick{Steps: uint32(steps)}); err != nil {
			return err
		}
		// Ask queues behind the Tick, so it returns once the batch is done
		snap, err := snapshot(sysCtx, pid)
		if err != nil {
			return err
		}
		done = snap.GetTick()
		last := recorder.Last()
		slog.Info("progress",
			"tick", done,
			"polarization", last.Polarization,
			"speed_mean", last.SpeedMean,
			"spread", last.Spread,
		)
	}

	elapsed := time.Since(start)
	slog.Info("simulation finished",
		"ticks", done,
		"elapsed", elapsed.String(),
		"ticks_per_sec", float64(done)/max(elapsed.Seconds(), 1e-9),
	)
	return nil
}

func snapshot(ctx context.Context, pid *actor.PID) (*pb.Snapshot, error) {
	resp, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, time.Minute)
	if err != nil {
		return nil, err
	}
	return resp.(*pb.Snapshot), nil
}
