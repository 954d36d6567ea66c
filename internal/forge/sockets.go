package forge

import (
	"context"
	"fmt"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
	"github.com/osse101/itemforge/internal/socketing"
)

// Socket places the occupant into the host's first compatible empty socket.
// On success the occupant is moved inside the host.
func (s *service) Socket(ctx context.Context, hostID, occupantID int64) (placement socketing.Placement, err error) {
	observe := metrics.ObserveOperation(OpSocket)
	defer func() { observe(resultLabel(placement.Outcome.Success, err)) }()

	log := logger.FromContext(ctx)
	if hostID == occupantID {
		return socketing.Placement{Outcome: domain.Failed(domain.MsgCannotSocketItself), Index: -1}, nil
	}

	unlock := s.lockManager.LockAll(concurrency.ItemKey(hostID), concurrency.ItemKey(occupantID))
	defer unlock()

	tx, err := s.begin(ctx)
	if err != nil {
		return socketing.Placement{Index: -1}, err
	}
	defer repository.SafeRollback(ctx, tx)

	host, err := s.loadForUpdate(ctx, tx, hostID)
	if err != nil {
		return socketing.Placement{Index: -1}, err
	}
	occupant, err := s.loadForUpdate(ctx, tx, occupantID)
	if err != nil {
		return socketing.Placement{Index: -1}, err
	}
	socketed, err := s.isSocketed(ctx, tx, occupant)
	if err != nil {
		return socketing.Placement{Index: -1}, err
	}
	if socketed {
		log.Info(LogMsgOperationRejected, "operation", OpSocket, "item_id", hostID, "reason", domain.MsgAlreadySocketed)
		return socketing.Placement{Outcome: domain.Failed(domain.MsgAlreadySocketed), Index: -1}, nil
	}

	placement, err = s.sockets.Socket(host, occupant)
	if err != nil {
		return placement, err
	}
	if !placement.Outcome.Success {
		log.Info(LogMsgOperationRejected, "operation", OpSocket, "item_id", hostID, "reason", placement.Outcome.Message)
		return placement, nil
	}

	occupant.SetOwner(domain.InContainer(host.ID))
	if err := s.save(ctx, tx, host, occupant); err != nil {
		return socketing.Placement{Index: -1}, err
	}
	if err := commit(ctx, tx); err != nil {
		return socketing.Placement{Index: -1}, err
	}

	log.Info(LogMsgItemSocketed, "item_id", hostID, "occupant_id", occupantID, "socket_index", placement.Index)
	s.publish(ctx, newSocketedEvent(host, occupantID, placement.Index, s.now()))
	return placement, nil
}

// Unsocket empties socket index of the host. A kept occupant is moved to
// returnTo, or to the host's owner when returnTo is zero; a destroyed one is
// deleted.
func (s *service) Unsocket(ctx context.Context, hostID int64, index int, destroy bool, returnTo domain.Owner) (removal socketing.Removal, err error) {
	observe := metrics.ObserveOperation(OpUnsocket)
	defer func() { observe(resultLabel(removal.Outcome.Success, err)) }()

	log := logger.FromContext(ctx)
	unlock, tx, host, occupantID, err := s.lockSocketHost(ctx, hostID, index)
	if err != nil {
		return socketing.Removal{}, err
	}
	defer unlock()
	defer repository.SafeRollback(ctx, tx)

	removal, err = s.sockets.Unsocket(host, index, destroy)
	if err != nil {
		return removal, err
	}
	if !removal.Outcome.Success {
		log.Info(LogMsgOperationRejected, "operation", OpUnsocket, "item_id", hostID, "reason", removal.Outcome.Message)
		return removal, nil
	}

	if occupantID != nil {
		if destroy {
			if err := tx.DeleteInstance(ctx, *occupantID); err != nil && !isNotFound(err) {
				return socketing.Removal{}, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
			}
		} else if err := s.returnOccupant(ctx, tx, *occupantID, host, returnTo); err != nil {
			return socketing.Removal{}, err
		}
	}

	if err := s.save(ctx, tx, host); err != nil {
		return socketing.Removal{}, err
	}
	if err := commit(ctx, tx); err != nil {
		return socketing.Removal{}, err
	}

	log.Info(LogMsgItemUnsocketed, "item_id", hostID, "socket_index", index, "destroyed", destroy)
	var id int64
	if occupantID != nil {
		id = *occupantID
	}
	s.publish(ctx, newUnsocketedEvent(hostID, id, index, destroy, s.now()))
	return removal, nil
}

// returnOccupant moves a removed occupant out of the host
func (s *service) returnOccupant(ctx context.Context, tx repository.InstanceTx, occupantID int64, host *domain.ItemInstance, returnTo domain.Owner) error {
	occupant, err := tx.GetInstanceForUpdate(ctx, occupantID)
	if err != nil {
		if isNotFound(err) {
			logger.FromContext(ctx).Warn(LogMsgOccupantMissing, "item_id", occupantID, "host_id", host.ID)
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
	}
	if returnTo.IsZero() {
		returnTo = host.Owner
	}
	occupant.SetOwner(returnTo)
	if err := tx.UpdateInstance(ctx, occupant); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveItem, err)
	}
	return nil
}

// isSocketed reports whether item sits in a socket of the item holding it.
func (s *service) isSocketed(ctx context.Context, tx repository.InstanceTx, item *domain.ItemInstance) (bool, error) {
	parentID, ok := item.Owner.ContainerID()
	if !ok {
		return false, nil
	}
	parent, err := tx.GetInstanceForUpdate(ctx, parentID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
	}
	return parent.HoldsInSocket(item.ID), nil
}

// lockSocketHost locks the host and the current occupant of socket index,
// then loads the host inside a new transaction. The occupant is read before
// locking, so the read is retried when the slot changed in between.
func (s *service) lockSocketHost(ctx context.Context, hostID int64, index int) (func(), repository.InstanceTx, *domain.ItemInstance, *int64, error) {
	for attempt := 1; ; attempt++ {
		peeked := s.peekOccupant(ctx, hostID, index)
		keys := []string{concurrency.ItemKey(hostID)}
		if peeked != nil {
			keys = append(keys, concurrency.ItemKey(*peeked))
		}
		unlock := s.lockManager.LockAll(keys...)

		tx, err := s.begin(ctx)
		if err != nil {
			unlock()
			return nil, nil, nil, nil, err
		}
		host, err := s.loadForUpdate(ctx, tx, hostID)
		if err != nil {
			repository.SafeRollback(ctx, tx)
			unlock()
			return nil, nil, nil, nil, err
		}
		occupantID := occupantAt(host, index)
		if sameID(peeked, occupantID) {
			return unlock, tx, host, occupantID, nil
		}

		repository.SafeRollback(ctx, tx)
		unlock()
		if attempt >= MaxSocketLockAttempts {
			return nil, nil, nil, nil, fmt.Errorf("%s: item %d socket %d", ErrMsgSocketChanged, hostID, index)
		}
	}
}

// peekOccupant reads the occupant of a socket without locking. Lookup
// failures are left for the locked load to report.
func (s *service) peekOccupant(ctx context.Context, hostID int64, index int) *int64 {
	host, err := s.repo.GetInstance(ctx, hostID)
	if err != nil {
		return nil
	}
	return occupantAt(host, index)
}

func occupantAt(host *domain.ItemInstance, index int) *int64 {
	if index < 0 || index >= len(host.Sockets) {
		return nil
	}
	return host.Sockets[index].ItemID
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
