package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/Garsondee/Ant-Arena/internal/config"
	"github.com/Garsondee/Ant-Arena/internal/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "match config YAML (default: built-in)")
	logFile := flag.String("log-file", "antwars-tui.log", "where to write the log (the terminal is taken)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	interval := flag.Duration("interval", 250*time.Millisecond, "time between rounds")
	seed := flag.Int64("seed", 0, "override the config seed")
	flag.Parse()

	if err := run(*configPath, *logFile, *logLevel, *interval, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logFile, logLevel string, interval time.Duration, seed int64) error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	logger, err := config.NewLogger(f, logLevel)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	match, err := cfg.NewMatch(arena.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = tui.New(screen, match, cfg.Steps, interval, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
