// Package main is the entry point for warrens.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/samdwyer/warrens/internal/audio"
	"github.com/samdwyer/warrens/internal/config"
	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/game"
	"github.com/samdwyer/warrens/internal/gamedata"
	"github.com/samdwyer/warrens/internal/level"
	"github.com/samdwyer/warrens/internal/observability"
	"github.com/samdwyer/warrens/internal/telemetry"
)

func main() {
	configPath := pflag.String("config", "", "path to a config file (default: ./warrens.yaml if present)")
	levelPath := pflag.String("level", "", "path to a level file (default: the embedded level)")
	seed := pflag.Int64("seed", 0, "RNG seed for a reproducible run (0 seeds from the clock)")
	noAudio := pflag.Bool("no-audio", false, "disable background music")
	pflag.Parse()

	// .env is optional; env vars may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *levelPath != "" {
		cfg.Game.LevelPath = *levelPath
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, continuing without it", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	result, err := run(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}

	switch {
	case result.Quit:
		fmt.Println("Quit.")
	case result.State == game.StateAllCleared:
		fmt.Printf("Victory! Enemies slain: %d\n", result.Kills)
	case result.State == game.StatePlayerDead:
		fmt.Printf("You died. Enemies slain: %d\n", result.Kills)
	}
}

// run loads game data and the level, then executes one full run.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger) (game.Result, error) {
	reg, err := gamedata.LoadRegistry()
	if err != nil {
		return game.Result{}, fmt.Errorf("loading game data: %w", err)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := dice.NewSeededSource(seed)
	logger.Info("rng seeded", zap.Int64("seed", seed))

	var lvl *level.Level
	if cfg.Game.LevelPath != "" {
		lvl, err = level.LoadFile(cfg.Game.LevelPath, reg, src)
	} else {
		lvl, err = level.LoadDefault(reg, src)
	}
	if err != nil {
		// Startup failure: report once, never start a run without a level.
		fmt.Fprintf(os.Stderr, "Cannot load level: %v\n", err)
		os.Exit(1)
	}

	sim, err := game.NewSim(lvl, reg, src, logger)
	if err != nil {
		return game.Result{}, err
	}

	g, err := game.New(sim, logger)
	if err != nil {
		return game.Result{}, err
	}
	defer g.Close()

	if cfg.Audio.Enabled {
		// Fire-and-forget; a missing track never aborts the run.
		go audio.PlayLoop(cfg.Audio.Track, logger)
		defer audio.Stop()
	}

	return g.Run(ctx)
}
