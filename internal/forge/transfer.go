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

// Transfer gives the item a new owner and clears its equipped slot. Moving
// into a container requires a container item with room that is not the item
// itself or inside it. Socketed items must be unsocketed first.
func (s *service) Transfer(ctx context.Context, itemID int64, owner domain.Owner) (outcome domain.Outcome, err error) {
	observe := metrics.ObserveOperation(OpTransfer)
	defer func() { observe(resultLabel(outcome.Success, err)) }()

	log := logger.FromContext(ctx)
	keys := []string{concurrency.ItemKey(itemID)}
	containerID, intoContainer := owner.ContainerID()
	if intoContainer {
		if containerID == itemID {
			return domain.Failed(domain.MsgCannotContainSelf), nil
		}
		keys = append(keys, concurrency.ItemKey(containerID))
	}
	unlock := s.lockManager.LockAll(keys...)
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
	socketed, err := s.isSocketed(ctx, tx, item)
	if err != nil {
		return domain.Outcome{}, err
	}
	if socketed {
		log.Info(LogMsgOperationRejected, "operation", OpTransfer, "item_id", itemID, "reason", domain.MsgAlreadySocketed)
		return domain.Failed(domain.MsgAlreadySocketed), nil
	}

	if intoContainer {
		outcome, err = s.checkContainer(ctx, tx, item.ID, containerID)
		if err != nil {
			return domain.Outcome{}, err
		}
		if !outcome.Success {
			log.Info(LogMsgOperationRejected, "operation", OpTransfer, "item_id", itemID, "reason", outcome.Message)
			return outcome, nil
		}
	}

	from := item.Owner
	item.SetOwner(owner)
	if err := s.save(ctx, tx, item); err != nil {
		return domain.Outcome{}, err
	}
	if err := commit(ctx, tx); err != nil {
		return domain.Outcome{}, err
	}

	log.Info(LogMsgItemTransferred, "item_id", itemID, "from", from.String(), "to", owner.String())
	s.publish(ctx, newTransferredEvent(itemID, from, owner, s.now()))
	return domain.Succeeded(domain.MsgItemTransferred), nil
}

// checkContainer rejects targets that are not containers, are full, or sit
// somewhere inside itemID. New items pass a zero itemID.
func (s *service) checkContainer(ctx context.Context, tx repository.InstanceTx, itemID, containerID int64) (domain.Outcome, error) {
	container, err := s.loadForUpdate(ctx, tx, containerID)
	if err != nil {
		return domain.Outcome{}, err
	}
	if !container.IsContainer() {
		return domain.Failed(domain.MsgNotAContainer), nil
	}

	ancestor := container
	for depth := 0; depth < MaxContainerDepth; depth++ {
		parentID, ok := ancestor.Owner.ContainerID()
		if !ok {
			break
		}
		if itemID != 0 && parentID == itemID {
			return domain.Failed(domain.MsgCannotContainSelf), nil
		}
		ancestor, err = tx.GetInstanceForUpdate(ctx, parentID)
		if err != nil {
			return domain.Outcome{}, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
		}
	}

	if capacity := container.Template().ContainerCapacity; capacity > 0 {
		contents, err := s.repo.ListContents(ctx, containerID)
		if err != nil {
			return domain.Outcome{}, fmt.Errorf("%s: %w", ErrMsgFailedToListContents, err)
		}
		if len(contents) >= capacity {
			return domain.Failed(domain.MsgContainerFull), nil
		}
	}
	return domain.Succeeded(domain.MsgItemTransferred), nil
}
