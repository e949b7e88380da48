package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/OwaisQuadri/Musharakaat/internal/cli"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/clock"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/config"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/messaging"
	"github.com/OwaisQuadri/Musharakaat/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	envErr := godotenv.Load()
	cfg := config.Load()

	// Logs go to stderr so that command output stays pipeable.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: "text",
		Output: os.Stderr,
	})
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("could not load .env file", "error", envErr)
	}

	root := cli.NewRootCommand(cli.Options{
		Logger:    logger,
		Clock:     clock.System{},
		Publisher: messaging.NewLogEventPublisher(logger, slog.LevelDebug),
		Kafka:     cfg.Kafka,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
