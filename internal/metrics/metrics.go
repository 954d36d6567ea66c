package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content Metrics
var (
	ContentFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContentFallbacks,
			Help: HelpTextContentFallbacks,
		},
		[]string{LabelKind},
	)

	TemplatesSynced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTemplatesSynced,
			Help: HelpTextTemplatesSynced,
		},
	)

	TemplateCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTemplateCacheLookups,
			Help: HelpTextTemplateCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Forge Metrics
var (
	ItemOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemOperations,
			Help: HelpTextItemOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	ItemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameItemOperationDuration,
			Help:    HelpTextItemOperationDuration,
			Buckets: OperationLatencyBuckets,
		},
		[]string{LabelOperation},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ItemsSpawned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSpawned,
			Help: HelpTextItemsSpawned,
		},
		[]string{LabelTemplate},
	)

	ItemsBroken = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBroken,
			Help: HelpTextItemsBroken,
		},
		[]string{LabelTemplate},
	)

	ItemsDisassembled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDisassembled,
			Help: HelpTextItemsDisassembled,
		},
		[]string{LabelTemplate},
	)

	EnchantmentsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnchantmentsApplied,
			Help: HelpTextEnchantmentsApplied,
		},
		[]string{LabelEnchantment},
	)
)
