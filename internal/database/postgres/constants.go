package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when an instance references a missing template
	PgErrorCodeForeignKeyViolation = "23503"
)

// JSON defaults for NOT NULL jsonb columns
const (
	EmptyJSONArray  = `[]`
	EmptyJSONObject = `{}`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgSyncMetadataNotFound     = "sync metadata not found"
)

// Error Messages - Templates
const (
	ErrMsgFailedToListTemplates  = "failed to list templates"
	ErrMsgFailedToGetTemplate    = "failed to get template"
	ErrMsgFailedToInsertTemplate = "failed to insert template"
	ErrMsgFailedToUpdateTemplate = "failed to update template"
	ErrMsgFailedToDecodeTemplate = "failed to decode template definition"
	ErrMsgFailedToGetSyncMeta    = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMeta = "failed to upsert sync metadata"
)

// Error Messages - Instances
const (
	ErrMsgFailedToGetInstance    = "failed to get item instance"
	ErrMsgFailedToListInstances  = "failed to list item instances"
	ErrMsgFailedToInsertInstance = "failed to insert item instance"
	ErrMsgFailedToUpdateInstance = "failed to update item instance"
	ErrMsgFailedToDeleteInstance = "failed to delete item instance"
	ErrMsgFailedToEncodeInstance = "failed to encode item instance"
	ErrMsgFailedToDecodeInstance = "failed to decode item instance"
)

// Error Messages - Item History
const (
	ErrMsgFailedToLogEvent      = "failed to record item event"
	ErrMsgFailedToGetEvents     = "failed to query item events"
	ErrMsgFailedToCleanupEvents = "failed to clean up item events"
	ErrMsgFailedToEncodeEvent   = "failed to encode item event"
	ErrMsgFailedToDecodeEvent   = "failed to decode item event"
)
