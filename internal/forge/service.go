package forge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/enchanting"
	"github.com/osse101/itemforge/internal/event"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
	"github.com/osse101/itemforge/internal/socketing"
)

// TemplateLookup resolves the template an instance was created from.
// *item.TemplateCache satisfies it.
type TemplateLookup interface {
	ByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	ByKey(ctx context.Context, key string) (*domain.ItemTemplate, error)
}

// SpawnOptions carries the optional fields of a new instance
type SpawnOptions struct {
	CustomName      string
	QualityModifier float64 // 0 keeps the default
	CreatedBy       *int64
	CraftedByName   string
	RecipeID        *int
}

// DisassemblyResult reports what disassembling an item produced
type DisassemblyResult struct {
	Outcome         domain.Outcome      `json:"outcome"`
	Yields          []domain.YieldEntry `json:"yields,omitempty"`
	CreatedItemIDs  []int64             `json:"created_item_ids,omitempty"`
	ReturnedItemIDs []int64             `json:"returned_item_ids,omitempty"`
}

// Service runs item commands against persistent storage. Every mutation
// holds the item's named lock for the whole read-modify-write and commits in
// one transaction; events are published after commit.
type Service interface {
	Spawn(ctx context.Context, templateKey string, owner domain.Owner, opts SpawnOptions) (*domain.ItemInstance, error)
	Inspect(ctx context.Context, itemID int64) (*domain.StatSheet, error)
	Socket(ctx context.Context, hostID, occupantID int64) (socketing.Placement, error)
	Unsocket(ctx context.Context, hostID int64, index int, destroy bool, returnTo domain.Owner) (socketing.Removal, error)
	Enchant(ctx context.Context, itemID int64, key string, actor domain.Actor) (domain.Outcome, error)
	Damage(ctx context.Context, itemID int64, amount int) (bool, error)
	Repair(ctx context.Context, itemID int64, amount *int) error
	Transfer(ctx context.Context, itemID int64, owner domain.Owner) (domain.Outcome, error)
	Disassemble(ctx context.Context, itemID int64, actor domain.Actor) (*DisassemblyResult, error)
}

type service struct {
	repo        repository.Instance
	templates   TemplateLookup
	sockets     socketing.Service
	enchanter   enchanting.Service
	lockManager *concurrency.LockManager
	bus         event.Bus
	now         func() time.Time
}

// NewService creates a new forge service. bus may be nil.
func NewService(
	repo repository.Instance,
	templates TemplateLookup,
	sockets socketing.Service,
	enchanter enchanting.Service,
	lockManager *concurrency.LockManager,
	bus event.Bus,
) Service {
	return &service{
		repo:        repo,
		templates:   templates,
		sockets:     sockets,
		enchanter:   enchanter,
		lockManager: lockManager,
		bus:         bus,
		now:         time.Now,
	}
}

// resultLabel maps an operation's outcome to the metrics result label
func resultLabel(success bool, err error) string {
	switch {
	case err != nil:
		return metrics.ResultError
	case success:
		return metrics.ResultSuccess
	default:
		return metrics.ResultRejected
	}
}

// bind attaches each instance's template
func (s *service) bind(ctx context.Context, items ...*domain.ItemInstance) error {
	for _, item := range items {
		t, err := s.templates.ByID(ctx, item.TemplateID)
		if err != nil {
			return fmt.Errorf("%s for item %d: %w", ErrMsgFailedToBindTemplate, item.ID, err)
		}
		item.Bind(t)
	}
	return nil
}

// loadForUpdate locks the item row inside tx and binds its template
func (s *service) loadForUpdate(ctx context.Context, tx repository.InstanceTx, id int64) (*domain.ItemInstance, error) {
	item, err := tx.GetInstanceForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
	}
	if err := s.bind(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) save(ctx context.Context, tx repository.InstanceTx, items ...*domain.ItemInstance) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if err := tx.UpdateInstance(ctx, item); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveItem, err)
		}
	}
	return nil
}

func (s *service) begin(ctx context.Context) (repository.InstanceTx, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return tx, nil
}

func commit(ctx context.Context, tx repository.InstanceTx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// publish delivers evt on the bus. The command has already committed, so a
// delivery failure is logged and not returned.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrItemNotFound)
}
