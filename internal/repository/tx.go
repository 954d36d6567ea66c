package repository

import (
	"context"

	"github.com/osse101/itemforge/internal/domain"
)

// Tx is the commit/rollback surface shared by all transactions
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// InstanceTx defines the item instance operations available inside a transaction.
// Instances are returned without a bound template.
type InstanceTx interface {
	Tx
	GetInstanceForUpdate(ctx context.Context, id int64) (*domain.ItemInstance, error)
	InsertInstance(ctx context.Context, item *domain.ItemInstance) (int64, error)
	UpdateInstance(ctx context.Context, item *domain.ItemInstance) error
	DeleteInstance(ctx context.Context, id int64) error
}
