package repository

import (
	"context"

	"github.com/osse101/itemforge/internal/domain"
)

// Template defines the interface for item template persistence
type Template interface {
	ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error)
	GetTemplateByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetTemplateByKey(ctx context.Context, key string) (*domain.ItemTemplate, error)
	InsertTemplate(ctx context.Context, t *domain.ItemTemplate) (int, error)
	UpdateTemplate(ctx context.Context, id int, t *domain.ItemTemplate) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}

// Instance defines the interface for item instance persistence
type Instance interface {
	GetInstance(ctx context.Context, id int64) (*domain.ItemInstance, error)
	ListContents(ctx context.Context, containerID int64) ([]*domain.ItemInstance, error)
	// BeginTx starts a transaction for read-modify-write operations
	BeginTx(ctx context.Context) (InstanceTx, error)
}
