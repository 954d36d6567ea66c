package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/itemforge/internal/bootstrap"
	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/logger"
)

// setup loads configuration and installs the logger. The returned closer
// releases the log file.
func setup() (*config.Config, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return nil, nil, err
	}
	for _, warning := range warnings {
		PrintWarning("%s", warning)
	}
	closer, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closer, nil
}

// withApp runs fn against a fully wired App and shuts it down afterwards.
// Interrupts cancel the context passed to fn.
func withApp(fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, closer, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithNewRequestID(ctx)

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		_ = closer.Close()
		return err
	}
	defer bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
		ResilientPublisher: app.Publisher,
		Pool:               app.Pool,
		LogFile:            closer,
	})

	return fn(ctx, app)
}
