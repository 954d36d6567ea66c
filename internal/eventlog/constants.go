package eventlog

// Payload field the history is keyed by
const PayloadKeyItemID = "item_id"

// DefaultHistoryLimit caps History when the caller passes a non-positive limit
const DefaultHistoryLimit = 50

// Log messages - service events
const (
	LogMsgEventPayloadNotMap = "Event payload is not an object, skipping history"
	LogMsgEventMissingItem   = "Event payload has no item_id, skipping history"
	LogMsgFailedToLogEvent   = "Failed to record item history"
	LogMsgEventLogged        = "Item history recorded"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting item history cleanup job"
	LogMsgCleanupJobFailed    = "Item history cleanup failed"
	LogMsgCleanupJobCompleted = "Item history cleanup completed"
)
