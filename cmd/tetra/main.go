// Package main is the entry point for tetra.
package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tetra/internal/game"
	"github.com/samdwyer/tetra/internal/gamelog"
	"github.com/samdwyer/tetra/internal/telemetry"
	"github.com/samdwyer/tetra/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	telemetry.ConfigureHoneycomb(os.Getenv("HONEYCOMB_TETRA_API_KEY"), os.Getenv("HONEYCOMB_TETRA_DATASET"))
	gamelog.Configure(os.Getenv("TETRA_LOCALE_DIR"), os.Getenv("TETRA_LANG"))

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := configFromEnv()
	if err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	runErr := ui.NewApp(screen, g).Run(ctx)
	screen.Close()
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// configFromEnv overlays TETRA_* variables on the default configuration.
func configFromEnv() (game.Config, error) {
	cfg := game.DefaultConfig()

	ints := []struct {
		name string
		dst  *int
	}{
		{"TETRA_MAX_ROOMS", &cfg.MaxRooms},
		{"TETRA_MAX_MONSTERS", &cfg.MaxMonsters},
		{"TETRA_MAX_ITEMS", &cfg.MaxItems},
	}
	for _, v := range ints {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, err
		}
		*v.dst = n
	}

	if raw := os.Getenv("TETRA_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, err
		}
		cfg.Seed = seed
	}
	if gen := os.Getenv("TETRA_GENERATOR"); gen != "" {
		cfg.Generator = gen
	}

	return cfg, cfg.Validate()
}
