package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/Garsondee/Ant-Arena/internal/config"
	"github.com/Garsondee/Ant-Arena/internal/view"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "match config YAML (default: built-in)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	seed := flag.Int64("seed", 0, "override the config seed")
	flag.Parse()

	logger, err := config.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fatal(err)
	}
	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	events := view.NewEventLog()
	var match *arena.GamePlay
	opts := append(events.Hooks(func() int { return match.RoundNumber() }), arena.WithLogger(logger))
	if match, err = cfg.NewMatch(opts...); err != nil {
		fatal(err)
	}

	g := view.New(match, events, cfg.Steps, logger)
	ebiten.SetWindowTitle("Ant Arena")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
