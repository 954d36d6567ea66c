package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/itemforge/internal/event"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	ResilientPublisher *event.ResilientPublisher
	Pool               *pgxpool.Pool
	LogFile            io.Closer
}

// GracefulShutdown stops components in order:
// 1. Event publisher (flush pending events while handlers can still run)
// 2. Database pool
// 3. Log file
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Pool != nil {
		components.Pool.Close()
	}

	slog.Info(LogMsgStopped)

	if components.LogFile != nil {
		if err := components.LogFile.Close(); err != nil {
			slog.Error(LogMsgLogCloseFailed, "error", err)
		}
	}
}
