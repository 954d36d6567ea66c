package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingForge       = "Starting itemforge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedInitLogger    = "failed to initialize logger"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgHistoryRecorderRegistered      = "Item history recorder registered"
)

// =============================================================================
// Database and Content
// =============================================================================

const (
	LogMsgDatabaseConnected     = "Database connected"
	LogMsgSyncingItems          = "Syncing item templates from JSON config..."
	LogMsgItemsSynced           = "Item templates synced successfully"
	LogMsgItemsUnchanged        = "Item templates unchanged, sync skipped"
	LogMsgEnchantmentsLoaded    = "Enchantment catalog loaded"
	LogMsgEnchantmentsDefaulted = "Enchantment catalog file not found, using built-in catalog"

	ErrMsgFailedConnectDatabase  = "failed to connect to database"
	ErrMsgFailedLoadItems        = "failed to load items config"
	ErrMsgInvalidItems           = "invalid items config"
	ErrMsgFailedSyncItems        = "failed to sync items to database"
	ErrMsgFailedLoadEnchantments = "failed to load enchantment catalog"
	ErrMsgFailedInitEventSystem  = "failed to initialize event system"
)

// =============================================================================
// Maintenance
// =============================================================================

const (
	LogMsgMaintenanceStarted = "Maintenance scheduler started"
	LogMsgMaintenanceStopped = "Maintenance scheduler stopped"
	LogMsgContentSynced      = "Scheduled content sync finished"

	// MaintenanceQueueSize bounds pending maintenance jobs; ticks beyond it are dropped
	MaintenanceQueueSize = 8
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown               = "Shutting down..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgStopped                    = "Stopped"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgLogCloseFailed             = "Failed to close log file"
)
