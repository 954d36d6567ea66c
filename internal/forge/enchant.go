package forge

import (
	"context"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
)

// Enchant applies the catalog enchantment key to an item
func (s *service) Enchant(ctx context.Context, itemID int64, key string, actor domain.Actor) (outcome domain.Outcome, err error) {
	observe := metrics.ObserveOperation(OpEnchant)
	defer func() { observe(resultLabel(outcome.Success, err)) }()

	log := logger.FromContext(ctx)
	unlock := s.lockManager.Lock(concurrency.ItemKey(itemID))
	defer unlock()

	tx, err := s.begin(ctx)
	if err != nil {
		return domain.Outcome{}, err
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := s.loadForUpdate(ctx, tx, itemID)
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome = s.enchanter.Enchant(item, key, actor)
	if !outcome.Success {
		log.Info(LogMsgOperationRejected, "operation", OpEnchant, "item_id", itemID, "enchantment", key, "reason", outcome.Message)
		return outcome, nil
	}

	if err := s.save(ctx, tx, item); err != nil {
		return domain.Outcome{}, err
	}
	if err := commit(ctx, tx); err != nil {
		return domain.Outcome{}, err
	}

	applied := item.Enchantments[len(item.Enchantments)-1]
	log.Info(LogMsgItemEnchanted, "item_id", itemID, "enchantment", key)
	s.publish(ctx, newEnchantedEvent(itemID, applied))
	return outcome, nil
}
