package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/logger"
)

// SetupLogger initializes the default slog logger from config. When LogDir is
// set, output is also written to a file; the returned closer releases it.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	closer, err := logger.InitLogger(cfg.LoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitLogger, err)
	}

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingForge,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"items_config", cfg.ItemsConfigPath,
		"enchantments_config", cfg.EnchantmentsConfigPath)

	return closer, nil
}
