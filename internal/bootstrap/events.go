package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/event"
)

// InitializeEventSystem creates the in-memory event bus and wraps it in a
// resilient publisher that retries with exponential backoff and writes
// exhausted events to the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return eventBus, resilientPublisher, nil
}
