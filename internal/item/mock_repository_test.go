package item

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/itemforge/internal/domain"
)

// MockRepository is a mock implementation of repository.Template
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ItemTemplate), args.Error(1)
}

func (m *MockRepository) GetTemplateByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockRepository) GetTemplateByKey(ctx context.Context, key string) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockRepository) InsertTemplate(ctx context.Context, t *domain.ItemTemplate) (int, error) {
	args := m.Called(ctx, t)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateTemplate(ctx context.Context, id int, t *domain.ItemTemplate) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *MockRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	args := m.Called(ctx, configName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncMetadata), args.Error(1)
}

func (m *MockRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}
