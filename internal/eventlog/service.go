package eventlog

import (
	"context"
	"time"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/event"
	"github.com/osse101/itemforge/internal/logger"
)

// Service records forge events as per-item history
type Service interface {
	// Subscribe registers the history recorder for every forge event type
	Subscribe(bus event.Bus)

	// History returns the most recent entries for an item, newest first
	History(ctx context.Context, itemID int64, limit int) ([]Entry, error)

	// CleanupOldEvents removes entries older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

// EventTypes lists the forge events kept in item history
var EventTypes = []event.Type{
	domain.EventTypeItemSpawned,
	domain.EventTypeItemSocketed,
	domain.EventTypeItemUnsocketed,
	domain.EventTypeItemEnchanted,
	domain.EventTypeItemDamaged,
	domain.EventTypeItemBroken,
	domain.EventTypeItemRepaired,
	domain.EventTypeItemTransferred,
	domain.EventTypeItemDisassembled,
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new item history service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range EventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]any](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadNotMap, "type", evt.Type)
		return nil
	}

	itemID, ok := itemIDOf(payload)
	if !ok {
		log.Debug(LogMsgEventMissingItem, "type", evt.Type)
		return nil
	}

	entry := Entry{
		EventID:   evt.ID(),
		EventType: string(evt.Type),
		ItemID:    itemID,
		Payload:   payload,
		Metadata:  evt.Metadata,
		CreatedAt: s.now(),
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type, "item_id", entry.ItemID)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "item_id", entry.ItemID)
	return nil
}

// itemIDOf reads the item id from a decoded payload. JSON numbers decode as
// float64, in-process map payloads may carry integers.
func itemIDOf(payload map[string]any) (int64, bool) {
	switch v := payload[PayloadKeyItemID].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

func (s *service) History(ctx context.Context, itemID int64, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.GetEvents(ctx, Filter{ItemID: &itemID, Limit: limit})
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().Add(-retention))
}
