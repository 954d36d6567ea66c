package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/validation"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `json:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `json:"log_format" validate:"oneof=json text"`
	Environment string `json:"environment" validate:"required"`
	ServiceName string `json:"service_name" validate:"required"`
	Version     string `json:"version"`
	LogDir      string `json:"log_dir"`

	DBUser            string        `json:"db_user" validate:"required"`
	DBPassword        string        `json:"-"`
	DBHost            string        `json:"db_host" validate:"required"`
	DBPort            string        `json:"db_port" validate:"required,numeric"`
	DBName            string        `json:"db_name" validate:"required"`
	DBMaxConns        int           `json:"db_max_conns" validate:"gte=1"`
	DBMaxConnIdleTime time.Duration `json:"db_max_conn_idle_time" validate:"gt=0"`
	DBMaxConnLifetime time.Duration `json:"db_max_conn_lifetime" validate:"gt=0"`

	ItemsConfigPath        string        `json:"items_config_path" validate:"required"`
	EnchantmentsConfigPath string        `json:"enchantments_config_path" validate:"required"`
	TemplateCacheSize      int           `json:"template_cache_size" validate:"gte=1"`
	TemplateCacheTTL       time.Duration `json:"template_cache_ttl" validate:"gt=0"`

	EventMaxRetries     int           `json:"event_max_retries" validate:"gte=0"`
	EventRetryDelay     time.Duration `json:"event_retry_delay" validate:"gt=0"`
	EventDeadLetterPath string        `json:"event_deadletter_path" validate:"required"`

	WorkerCount          int           `json:"worker_count" validate:"gte=1"`
	ContentSyncInterval  time.Duration `json:"content_sync_interval" validate:"gt=0"`
	HistoryPruneInterval time.Duration `json:"history_prune_interval" validate:"gt=0"`
	HistoryRetention     time.Duration `json:"history_retention" validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:               getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:              getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:            getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:            getEnv(EnvServiceName, DefaultServiceName),
		Version:                getEnv(EnvVersion, DefaultVersion),
		LogDir:                 getEnv(EnvLogDir, DefaultLogDir),
		DBUser:                 getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:             getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:                 getEnv(EnvDBHost, DefaultDBHost),
		DBPort:                 getEnv(EnvDBPort, DefaultDBPort),
		DBName:                 getEnv(EnvDBName, DefaultDBName),
		ItemsConfigPath:        getEnv(EnvItemsConfigPath, ConfigPathItems),
		EnchantmentsConfigPath: getEnv(EnvEnchantmentsConfigPath, ConfigPathEnchantments),
		EventDeadLetterPath:    getEnv(EnvEventDeadLetterPath, DefaultEventDeadLetter),
	}

	var err error
	if cfg.DBMaxConns, err = getEnvInt(EnvDBMaxConns, DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.TemplateCacheSize, err = getEnvInt(EnvTemplateCacheSize, DefaultTemplateCacheSize); err != nil {
		return nil, err
	}
	if cfg.EventMaxRetries, err = getEnvInt(EnvEventMaxRetries, DefaultEventMaxRetries); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = getEnvInt(EnvWorkerCount, DefaultWorkerCount); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnIdleTime, err = getEnvDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = getEnvDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}
	if cfg.TemplateCacheTTL, err = getEnvDuration(EnvTemplateCacheTTL, DefaultTemplateCacheTTL); err != nil {
		return nil, err
	}
	if cfg.EventRetryDelay, err = getEnvDuration(EnvEventRetryDelay, DefaultEventRetryDelay); err != nil {
		return nil, err
	}
	if cfg.ContentSyncInterval, err = getEnvDuration(EnvContentSyncInterval, DefaultContentSyncInterval); err != nil {
		return nil, err
	}
	if cfg.HistoryPruneInterval, err = getEnvDuration(EnvHistoryPruneInterval, DefaultHistoryPruneInterval); err != nil {
		return nil, err
	}
	if cfg.HistoryRetention, err = getEnvDuration(EnvHistoryRetention, DefaultHistoryRetention); err != nil {
		return nil, err
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf(ErrFmtInvalidConfig, err)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidInt, key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidDuration, key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// LoggerConfig maps the logging settings onto a logger.Config
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.Environment == DefaultEnvironment)
	cfg.Dir = c.LogDir
	return cfg
}
