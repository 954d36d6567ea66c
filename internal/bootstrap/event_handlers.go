package bootstrap

import (
	"log/slog"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/event"
	"github.com/osse101/itemforge/internal/eventlog"
	"github.com/osse101/itemforge/internal/metrics"
)

// Payload fields the business counters are labelled by
const (
	routeFieldTemplate    = "template_id"
	routeFieldEnchantment = "enchantment_id"
)

// MetricRoutes maps forge events onto the business counters. Events without
// a counter are still counted in the events-published metric.
func MetricRoutes() []metrics.Route {
	return []metrics.Route{
		{Type: domain.EventTypeItemSpawned, Counter: metrics.ItemsSpawned, Field: routeFieldTemplate},
		{Type: domain.EventTypeItemBroken, Counter: metrics.ItemsBroken, Field: routeFieldTemplate},
		{Type: domain.EventTypeItemDisassembled, Counter: metrics.ItemsDisassembled, Field: routeFieldTemplate},
		{Type: domain.EventTypeItemEnchanted, Counter: metrics.EnchantmentsApplied, Field: routeFieldEnchantment},
		{Type: domain.EventTypeItemSocketed},
		{Type: domain.EventTypeItemUnsocketed},
		{Type: domain.EventTypeItemDamaged},
		{Type: domain.EventTypeItemRepaired},
		{Type: domain.EventTypeItemTransferred},
	}
}

// RegisterEventHandlers subscribes the metrics collector and, when given, the
// item history recorder to every forge event
func RegisterEventHandlers(bus event.Bus, history eventlog.Service) {
	routes := MetricRoutes()
	metrics.NewEventMetricsCollector().Register(bus, routes...)
	slog.Info(LogMsgMetricsCollectorRegistered, "routes", len(routes))

	if history != nil {
		history.Subscribe(bus)
		slog.Info(LogMsgHistoryRecorderRegistered, "event_types", len(eventlog.EventTypes))
	}
}
