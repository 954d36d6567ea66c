package config

import "time"

// Content file paths
const (
	ConfigPathItems        = "configs/items.json"
	ConfigPathEnchantments = "configs/enchantments.json"
)

// Defaults for optional settings
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "itemforge"
	DefaultVersion           = "dev"
	DefaultLogDir            = ""
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "itemforge"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
	DefaultTemplateCacheSize = 512
	DefaultTemplateCacheTTL  = 10 * time.Minute
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultEventDeadLetter   = "deadletter.jsonl"

	DefaultWorkerCount          = 2
	DefaultContentSyncInterval  = 5 * time.Minute
	DefaultHistoryPruneInterval = time.Hour
	DefaultHistoryRetention     = 30 * 24 * time.Hour
)

// Environment variable names
const (
	EnvSchemaVersion          = "ENV_SCHEMA_VERSION"
	EnvLogLevel               = "LOG_LEVEL"
	EnvLogFormat              = "LOG_FORMAT"
	EnvEnvironment            = "ENVIRONMENT"
	EnvServiceName            = "SERVICE_NAME"
	EnvVersion                = "VERSION"
	EnvLogDir                 = "LOG_DIR"
	EnvDBUser                 = "DB_USER"
	EnvDBPassword             = "DB_PASSWORD"
	EnvDBHost                 = "DB_HOST"
	EnvDBPort                 = "DB_PORT"
	EnvDBName                 = "DB_NAME"
	EnvDBMaxConns             = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime      = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime      = "DB_MAX_CONN_LIFETIME"
	EnvItemsConfigPath        = "ITEMS_CONFIG_PATH"
	EnvEnchantmentsConfigPath = "ENCHANTMENTS_CONFIG_PATH"
	EnvTemplateCacheSize      = "TEMPLATE_CACHE_SIZE"
	EnvTemplateCacheTTL       = "TEMPLATE_CACHE_TTL"
	EnvEventMaxRetries        = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay        = "EVENT_RETRY_DELAY"
	EnvEventDeadLetterPath    = "EVENT_DEADLETTER_PATH"
	EnvWorkerCount            = "WORKER_COUNT"
	EnvContentSyncInterval    = "CONTENT_SYNC_INTERVAL"
	EnvHistoryPruneInterval   = "HISTORY_PRUNE_INTERVAL"
	EnvHistoryRetention       = "HISTORY_RETENTION"
)

// Error message formats
const (
	ErrFmtInvalidInt      = "invalid %s value: %w"
	ErrFmtInvalidDuration = "invalid %s duration: %w"
	ErrFmtInvalidConfig   = "invalid configuration: %w"
)
