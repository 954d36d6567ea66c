package forge

import (
	"context"
	"fmt"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
)

// Spawn creates and stores a new instance of templateKey held by owner.
// Spawning into a container applies the same checks as Transfer.
func (s *service) Spawn(ctx context.Context, templateKey string, owner domain.Owner, opts SpawnOptions) (item *domain.ItemInstance, err error) {
	observe := metrics.ObserveOperation(OpSpawn)
	defer func() { observe(resultLabel(true, err)) }()

	tmpl, err := s.templates.ByKey(ctx, templateKey)
	if err != nil {
		return nil, err
	}

	containerID, intoContainer := owner.ContainerID()
	if intoContainer {
		unlock := s.lockManager.Lock(concurrency.ItemKey(containerID))
		defer unlock()
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if intoContainer {
		outcome, err := s.checkContainer(ctx, tx, 0, containerID)
		if err != nil {
			return nil, err
		}
		if !outcome.Success {
			logger.FromContext(ctx).Info(LogMsgOperationRejected, "operation", OpSpawn, "item_id", containerID, "reason", outcome.Message)
			return nil, fmt.Errorf("%w: %s", domain.ErrContainerRejected, outcome.Message)
		}
	}

	item, err = s.create(ctx, tx, tmpl, owner, opts)
	if err != nil {
		return nil, err
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemSpawned, "item_id", item.ID, "template_id", templateKey, "owner", item.Owner.String())
	s.publish(ctx, newSpawnedEvent(item, item.CreatedAt))
	return item, nil
}

// create builds an instance of tmpl and inserts it inside tx
func (s *service) create(ctx context.Context, tx repository.InstanceTx, tmpl *domain.ItemTemplate, owner domain.Owner, opts SpawnOptions) (*domain.ItemInstance, error) {
	item := domain.NewItemInstance(tmpl, owner, s.now())
	item.CustomName = opts.CustomName
	item.CreatedBy = opts.CreatedBy
	item.CraftedByName = opts.CraftedByName
	item.RecipeID = opts.RecipeID
	if opts.QualityModifier > 0 {
		item.QualityModifier = opts.QualityModifier
	}

	id, err := tx.InsertInstance(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateItem, err)
	}
	item.ID = id
	return item, nil
}
