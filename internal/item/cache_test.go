package item

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/metrics"
)

func TestTemplateCache(t *testing.T) {
	ctx := context.Background()
	sword := validTemplate("iron_sword")
	sword.ID = 11

	repo := new(MockRepository)
	repo.On("GetTemplateByKey", ctx, "iron_sword").Return(&sword, nil).Once()
	repo.On("GetTemplateByKey", ctx, "missing").Return(nil, domain.ErrTemplateNotFound)

	cache := NewTemplateCache(repo, 8, time.Minute)
	hits := testutil.ToFloat64(metrics.TemplateCacheLookups.WithLabelValues(metrics.ResultHit))
	misses := testutil.ToFloat64(metrics.TemplateCacheLookups.WithLabelValues(metrics.ResultMiss))

	got, err := cache.ByKey(ctx, "iron_sword")
	require.NoError(t, err)
	assert.Same(t, &sword, got)

	// second lookup by key and the lookup by id are both served from cache
	got, err = cache.ByKey(ctx, "iron_sword")
	require.NoError(t, err)
	assert.Same(t, &sword, got)
	got, err = cache.ByID(ctx, 11)
	require.NoError(t, err)
	assert.Same(t, &sword, got)

	_, err = cache.ByKey(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)

	assert.InDelta(t, hits+2, testutil.ToFloat64(metrics.TemplateCacheLookups.WithLabelValues(metrics.ResultHit)), 0)
	assert.InDelta(t, misses+2, testutil.ToFloat64(metrics.TemplateCacheLookups.WithLabelValues(metrics.ResultMiss)), 0)
	assert.Equal(t, 2, cache.Len())

	cache.Purge()
	assert.Zero(t, cache.Len())
	repo.AssertExpectations(t)
}

func TestTemplateCacheExpiry(t *testing.T) {
	ctx := context.Background()
	mace := validTemplate("iron_mace")
	mace.ID = 4

	repo := new(MockRepository)
	repo.On("GetTemplateByID", ctx, 4).Return(&mace, nil).Twice()

	cache := NewTemplateCache(repo, 0, 20*time.Millisecond)
	_, err := cache.ByID(ctx, 4)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	_, err = cache.ByID(ctx, 4)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
