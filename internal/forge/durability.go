package forge

import (
	"context"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
)

// Damage removes durability and reports whether the item is broken.
// item.broken is published only on the transition to broken.
func (s *service) Damage(ctx context.Context, itemID int64, amount int) (broken bool, err error) {
	observe := metrics.ObserveOperation(OpDamage)
	defer func() { observe(resultLabel(true, err)) }()

	log := logger.FromContext(ctx)
	unlock := s.lockManager.Lock(concurrency.ItemKey(itemID))
	defer unlock()

	tx, err := s.begin(ctx)
	if err != nil {
		return false, err
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := s.loadForUpdate(ctx, tx, itemID)
	if err != nil {
		return false, err
	}

	wasBroken := item.IsBroken()
	broken, err = item.Damage(amount)
	if err != nil {
		return false, err
	}
	if err := s.save(ctx, tx, item); err != nil {
		return false, err
	}
	if err := commit(ctx, tx); err != nil {
		return false, err
	}

	now := s.now()
	log.Info(LogMsgItemDamaged, "item_id", itemID, "amount", amount, "durability", item.Durability(), "condition", item.Condition)
	s.publish(ctx, newDamagedEvent(item, amount, broken, now))
	if broken && !wasBroken {
		log.Info(LogMsgItemBroken, "item_id", itemID, "template_id", item.TemplateKey)
		s.publish(ctx, newBrokenEvent(item, now))
	}
	return broken, nil
}

// Repair restores durability; a nil amount repairs fully
func (s *service) Repair(ctx context.Context, itemID int64, amount *int) (err error) {
	observe := metrics.ObserveOperation(OpRepair)
	defer func() { observe(resultLabel(true, err)) }()

	unlock := s.lockManager.Lock(concurrency.ItemKey(itemID))
	defer unlock()

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := s.loadForUpdate(ctx, tx, itemID)
	if err != nil {
		return err
	}

	now := s.now()
	if err := item.Repair(amount, now); err != nil {
		return err
	}
	if err := s.save(ctx, tx, item); err != nil {
		return err
	}
	if err := commit(ctx, tx); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgItemRepaired, "item_id", itemID, "durability", item.Durability(), "condition", item.Condition)
	s.publish(ctx, newRepairedEvent(item, now))
	return nil
}
