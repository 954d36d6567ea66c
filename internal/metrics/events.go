package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/itemforge/internal/event"
	"github.com/osse101/itemforge/internal/logger"
)

// Route binds an event type to a business counter labelled by one payload field.
// A nil Counter only counts the event in EventsPublished.
type Route struct {
	Type    event.Type
	Counter *prometheus.CounterVec
	Field   string
}

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct {
	routes map[event.Type]Route
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{routes: make(map[event.Type]Route)}
}

// Register subscribes the collector to every routed event type
func (e *EventMetricsCollector) Register(bus event.Bus, routes ...Route) {
	for _, r := range routes {
		e.routes[r.Type] = r
		bus.Subscribe(r.Type, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	route, ok := e.routes[evt.Type]
	if !ok || route.Counter == nil {
		return nil
	}

	payload, err := event.DecodePayload[map[string]any](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadNotDecoded, "type", evt.Type, "error", err)
		return nil
	}

	label, ok := payload[route.Field].(string)
	if !ok {
		log.Debug(LogMsgPayloadFieldMissing, "type", evt.Type, "field", route.Field)
		return nil
	}
	route.Counter.WithLabelValues(label).Inc()

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
