package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Content metric names
const (
	MetricNameContentFallbacks     = "itemforge_content_fallbacks_total"
	MetricNameTemplatesSynced      = "itemforge_templates_synced_total"
	MetricNameTemplateCacheLookups = "itemforge_template_cache_lookups_total"
)

// Forge metric names
const (
	MetricNameItemOperations        = "itemforge_item_operations_total"
	MetricNameItemOperationDuration = "itemforge_item_operation_duration_seconds"
)

// Event metric names
const (
	MetricNameEventsPublished    = "itemforge_events_published_total"
	MetricNameEventHandlerErrors = "itemforge_event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsSpawned        = "itemforge_items_spawned_total"
	MetricNameItemsBroken         = "itemforge_items_broken_total"
	MetricNameItemsDisassembled   = "itemforge_items_disassembled_total"
	MetricNameEnchantmentsApplied = "itemforge_enchantments_applied_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextContentFallbacks      = "Number of content values replaced by their documented default"
	HelpTextTemplatesSynced       = "Number of item templates written by content sync"
	HelpTextTemplateCacheLookups  = "Template cache lookups by result"
	HelpTextItemOperations        = "Number of forge operations by operation and result"
	HelpTextItemOperationDuration = "Forge operation latency in seconds"
	HelpTextEventsPublished       = "Total number of events published"
	HelpTextEventHandlerErrors    = "Total number of event handler errors"
	HelpTextItemsSpawned          = "Number of item instances spawned"
	HelpTextItemsBroken           = "Number of item instances that reached zero durability"
	HelpTextItemsDisassembled     = "Number of item instances disassembled"
	HelpTextEnchantmentsApplied   = "Number of enchantments applied"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelKind        = "kind"
	LabelType        = "type"
	LabelOperation   = "operation"
	LabelResult      = "result"
	LabelTemplate    = "template"
	LabelEnchantment = "enchantment"
)

// Result label values
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
	ResultHit      = "hit"
	ResultMiss     = "miss"
)

// ============================================================================
// Event Payload Fields
// ============================================================================

const (
	PayloadFieldTemplate    = "template_id"
	PayloadFieldEnchantment = "enchantment_id"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

var OperationLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadNotDecoded = "event payload could not be decoded for metrics"
	LogMsgMetricsRecorded        = "metrics recorded for event"
	LogMsgPayloadFieldMissing    = "event payload missing metric label field"
)
