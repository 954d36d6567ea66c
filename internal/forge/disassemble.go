package forge

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
)

// Disassemble breaks an item down. Template yields are created for the
// actor, socketed occupants and container contents are handed back to the
// actor, and the source item is deleted.
func (s *service) Disassemble(ctx context.Context, itemID int64, actor domain.Actor) (result *DisassemblyResult, err error) {
	observe := metrics.ObserveOperation(OpDisassemble)
	defer func() { observe(resultLabel(result != nil && result.Outcome.Success, err)) }()

	log := logger.FromContext(ctx)
	unlock := s.lockManager.Lock(concurrency.ItemKey(itemID))
	defer unlock()

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := s.loadForUpdate(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	outcome := item.CanDisassemble(actor)
	if !outcome.Success {
		log.Info(LogMsgOperationRejected, "operation", OpDisassemble, "item_id", itemID, "reason", outcome.Message)
		return &DisassemblyResult{Outcome: outcome}, nil
	}

	skillLevel := 0
	if skill, _, ok := item.Template().DisassemblySkill(); ok && actor != nil {
		skillLevel = actor.SkillLevel(skill)
	}

	result = &DisassemblyResult{
		Outcome: domain.Succeeded(domain.MsgItemDisassembled),
		Yields:  item.DisassemblyYield(skillLevel),
	}
	recipient := domain.Owner{}
	if actor != nil {
		recipient = domain.OwnedByCharacter(actor.ID())
	}

	for _, y := range result.Yields {
		if y.IsExistingItem() {
			if err := s.returnYieldItem(ctx, tx, y, recipient, result); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.createYield(ctx, tx, y, recipient, actor, result); err != nil {
			return nil, err
		}
	}

	if err := s.returnContents(ctx, tx, item, recipient, result); err != nil {
		return nil, err
	}

	if err := tx.DeleteInstance(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	log.Info(LogMsgItemDisassembled, "item_id", itemID, "template_id", item.TemplateKey,
		"created", len(result.CreatedItemIDs), "returned", len(result.ReturnedItemIDs))
	s.publish(ctx, newDisassembledEvent(item, actor, result, s.now()))
	return result, nil
}

func (s *service) returnYieldItem(ctx context.Context, tx repository.InstanceTx, y domain.YieldEntry, recipient domain.Owner, result *DisassemblyResult) error {
	if y.ItemID == nil {
		return nil
	}
	occupant, err := tx.GetInstanceForUpdate(ctx, *y.ItemID)
	if err != nil {
		if isNotFound(err) {
			logger.FromContext(ctx).Warn(LogMsgYieldItemMissing, "item_id", *y.ItemID)
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
	}
	occupant.SetOwner(recipient)
	if err := tx.UpdateInstance(ctx, occupant); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveItem, err)
	}
	result.ReturnedItemIDs = append(result.ReturnedItemIDs, occupant.ID)
	return nil
}

// returnContents empties a container being destroyed. Contents go to the
// recipient, or to the container's owner when there is none.
func (s *service) returnContents(ctx context.Context, tx repository.InstanceTx, item *domain.ItemInstance, recipient domain.Owner, result *DisassemblyResult) error {
	contents, err := s.repo.ListContents(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToListContents, err)
	}
	if recipient.IsZero() {
		recipient = item.Owner
	}
	for _, c := range contents {
		// socket occupants were already returned as yields
		if item.HoldsInSocket(c.ID) {
			continue
		}
		content, err := tx.GetInstanceForUpdate(ctx, c.ID)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
		}
		content.SetOwner(recipient)
		if err := tx.UpdateInstance(ctx, content); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveItem, err)
		}
		result.ReturnedItemIDs = append(result.ReturnedItemIDs, content.ID)
	}
	return nil
}

func (s *service) createYield(ctx context.Context, tx repository.InstanceTx, y domain.YieldEntry, recipient domain.Owner, actor domain.Actor, result *DisassemblyResult) error {
	tmpl, err := s.templates.ByKey(ctx, y.Type)
	if errors.Is(err, domain.ErrTemplateNotFound) {
		logger.FromContext(ctx).Warn(LogMsgYieldTemplateMissing, "template_id", y.Type)
		return nil
	}
	if err != nil {
		return err
	}

	opts := SpawnOptions{}
	if actor != nil {
		id := actor.ID()
		opts.CreatedBy = &id
	}
	for n := 0; n < y.Count(); n++ {
		created, err := s.create(ctx, tx, tmpl, recipient, opts)
		if err != nil {
			return err
		}
		result.CreatedItemIDs = append(result.CreatedItemIDs, created.ID)
	}
	return nil
}
