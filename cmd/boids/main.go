package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/viewer"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON or YAML config (empty = defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed override (0 = keep config value)")
	debug := flag.Bool("debug", false, "Debug level actor logging")
	flag.Parse()

	cfg, err := simulation.LoadConfigOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("BoidsFlock",
		actor.WithLogger(golog.New(level, os.Stdout)),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = system.Stop(ctx) }()

	game, err := viewer.NewGame(ctx, cfg, system)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.World.Width()), int(cfg.World.Height()))
	ebiten.SetWindowTitle("Boids Flock")
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
