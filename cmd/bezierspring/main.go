package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/scene"
	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "config/scene.json", "scene configuration (JSON)")
	schemaFile := flag.String("schema", "config/scene.schema.json", "JSON schema the configuration is validated against")
	title := flag.String("title", "Spring Bézier", "window title")
	flag.Parse()

	logger := golog.DefaultLogger
	cfg, err := scene.LoadConfig(*configFile, *schemaFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatal(err)
		}
		logger.Infof("no configuration found (%v), using defaults", err)
		cfg = scene.DefaultConfig()
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("SpringBezier", actor.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	game, err := simulation.GetNewGame(ctx, cfg, system)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle(*title)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
