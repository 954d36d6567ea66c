package forge

import (
	"context"
	"fmt"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/metrics"
)

// Inspect computes the derived stats of an item. It reads without locking.
func (s *service) Inspect(ctx context.Context, itemID int64) (sheet *domain.StatSheet, err error) {
	observe := metrics.ObserveOperation(OpInspect)
	defer func() { observe(resultLabel(true, err)) }()

	item, err := s.repo.GetInstance(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
	}
	if err := s.bind(ctx, item); err != nil {
		return nil, err
	}

	var container *domain.ItemInstance
	if containerID, ok := item.Owner.ContainerID(); ok {
		container, err = s.repo.GetInstance(ctx, containerID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItem, err)
		}
		if err := s.bind(ctx, container); err != nil {
			return nil, err
		}
	}

	result := item.Sheet(container)
	if item.IsContainer() {
		contents, err := s.repo.ListContents(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListContents, err)
		}
		if err := s.bind(ctx, contents...); err != nil {
			return nil, err
		}
		result.Weight = item.TotalWeight(container, contents)
	}
	return &result, nil
}
