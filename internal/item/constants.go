package item

import "time"

// ==================== Configuration File Names ====================

// Template configuration file names
const (
	// ConfigFileName is the sync metadata key for the templates file
	ConfigFileName = "items.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read templates file: %w"
	ErrMsgParseConfigFailed    = "failed to parse templates file: %w"
	ErrMsgStatConfigFileFailed = "failed to stat templates file: %w"
	ErrMsgReadForHashFailed    = "failed to read templates file for hashing: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil          = "config is nil"
	ErrMsgNoTemplatesDefined = "no templates defined"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed      = "failed to check if file changed: %w"
	ErrMsgGetExistingTemplatesFailed = "failed to get existing templates: %w"
	ErrMsgUpdateTemplateFailed       = "failed to update template '%s': %w"
	ErrMsgInsertTemplateFailed       = "failed to insert template '%s': %w"
)

// ==================== Log Messages ====================

// Sync operation log messages
const (
	LogMsgConfigUnchanged      = "Templates file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Templates sync completed"
	LogMsgUpdatedTemplate      = "Updated template"
	LogMsgInsertedTemplate     = "Inserted template"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtTemplateAtIndexEmpty = "%w: template at index %d has empty template_id"
	ErrFmtTemplateInvalid      = "%w: template '%s': %w"
	ErrFmtDamageRangeInverted  = "%w: template '%s' has base_damage_min %d above base_damage_max %d"
	ErrFmtTooManySocketTypes   = "%w: template '%s' lists %d socket types for %d sockets"
)

// ==================== Cache ====================

// CacheSchemaVersion is the current version of cached template entries.
// Increment this when the cached structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute
)
