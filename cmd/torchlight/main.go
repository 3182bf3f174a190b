// Package main is the entry point for torchlight.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/torchlight/internal/game"
	"github.com/samdwyer/torchlight/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a torchlight.yaml config file")
	seed := flag.Int64("seed", 0, "dungeon seed (0 = random)")
	flag.Parse()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Telemetry is best-effort: the game runs fine without a collector.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
