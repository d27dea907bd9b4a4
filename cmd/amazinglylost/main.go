// Package main is the entry point for AmazinglyLost.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/amazinglylost/internal/config"
	"github.com/samdwyer/amazinglylost/internal/game"
	"github.com/samdwyer/amazinglylost/internal/logger"
	"github.com/samdwyer/amazinglylost/internal/telemetry"
)

const defaultConfigPath = "config.yaml"

func main() {
	os.Exit(run())
}

// run wires up the game and returns the process exit code. Deferred cleanup of
// logs and telemetry happens before main exits.
func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	configPath := os.Getenv("AMAZINGLYLOST_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	logConfig, err := logger.LoadConfig(configPath)
	if err != nil {
		log.Printf("Failed to load logging config: %v", err)
		return 1
	}
	logCloser, err := logger.Initialize(logConfig)
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return 1
	}
	defer logCloser.Close()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fail("failed to load config", err)
	}
	if err := cfg.Validate(); err != nil {
		return fail("invalid config", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warning("telemetry setup failed, running without observability", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg.Game())
	if err != nil {
		return fail("game init failed", err)
	}

	if err := g.Run(ctx); err != nil {
		return fail("game error", err)
	}
	return 0
}

// fail logs err and reports it on stderr, returning the exit code for run.
func fail(msg string, err error) int {
	logger.Error(msg, "error", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	return 1
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Variables that are already set are left alone.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_AMAZINGLYLOST_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_AMAZINGLYLOST_DATASET")
	if dataset == "" {
		dataset = "amazinglylost"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
