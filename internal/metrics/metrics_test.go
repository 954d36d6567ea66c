package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	collector := NewEventMetricsCollector()
	collector.Register(bus,
		Route{Type: "item.spawned", Counter: ItemsSpawned, Field: PayloadFieldTemplate},
		Route{Type: "item.damaged"},
	)

	type spawned struct {
		TemplateKey string `json:"template_id"`
	}

	spawnedBefore := testutil.ToFloat64(ItemsSpawned.WithLabelValues("collector_sword"))
	publishedBefore := testutil.ToFloat64(EventsPublished.WithLabelValues("item.spawned"))
	damagedBefore := testutil.ToFloat64(EventsPublished.WithLabelValues("item.damaged"))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.New("item.spawned", spawned{TemplateKey: "collector_sword"})))
	require.NoError(t, bus.Publish(ctx, event.New("item.spawned", map[string]any{"template_id": "collector_sword"})))
	require.NoError(t, bus.Publish(ctx, event.New("item.spawned", map[string]any{"other": 1})))
	require.NoError(t, bus.Publish(ctx, event.New("item.damaged", nil)))

	assert.Equal(t, spawnedBefore+2, testutil.ToFloat64(ItemsSpawned.WithLabelValues("collector_sword")))
	assert.Equal(t, publishedBefore+3, testutil.ToFloat64(EventsPublished.WithLabelValues("item.spawned")))
	assert.Equal(t, damagedBefore+1, testutil.ToFloat64(EventsPublished.WithLabelValues("item.damaged")))
}

func TestObserveOperation(t *testing.T) {
	before := testutil.ToFloat64(ItemOperationsTotal.WithLabelValues("observe_test", ResultRejected))

	done := ObserveOperation("observe_test")
	done(ResultRejected)

	assert.Equal(t, before+1, testutil.ToFloat64(ItemOperationsTotal.WithLabelValues("observe_test", ResultRejected)))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(ItemOperationDuration, MetricNameItemOperationDuration), 1)
}
