package item

import (
	"context"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/metrics"
)

// TemplateSource is the read side of template persistence the cache fills from
type TemplateSource interface {
	GetTemplateByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetTemplateByKey(ctx context.Context, key string) (*domain.ItemTemplate, error)
}

type cachedTemplate struct {
	Version  string
	Template *domain.ItemTemplate
}

// TemplateCache is a read-through LRU over template lookups with time-based
// expiry. Cached templates are shared and must not be mutated.
type TemplateCache struct {
	source TemplateSource
	lru    *expirable.LRU[string, *cachedTemplate]
}

// NewTemplateCache creates a cache holding up to size templates for ttl.
func NewTemplateCache(source TemplateSource, size int, ttl time.Duration) *TemplateCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &TemplateCache{
		source: source,
		lru:    expirable.NewLRU[string, *cachedTemplate](size, nil, ttl),
	}
}

func idKey(id int) string       { return "id:" + strconv.Itoa(id) }
func nameKey(key string) string { return "key:" + key }

// ByID returns the template with id, loading it on a miss.
func (c *TemplateCache) ByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	if t, ok := c.get(idKey(id)); ok {
		return t, nil
	}
	t, err := c.source.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Set(t)
	return t, nil
}

// ByKey returns the template with the given template_id, loading it on a miss.
func (c *TemplateCache) ByKey(ctx context.Context, key string) (*domain.ItemTemplate, error) {
	if t, ok := c.get(nameKey(key)); ok {
		return t, nil
	}
	t, err := c.source.GetTemplateByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	c.Set(t)
	return t, nil
}

func (c *TemplateCache) get(key string) (*domain.ItemTemplate, bool) {
	entry, found := c.lru.Get(key)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		found = false
	}
	if !found {
		metrics.TemplateCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.TemplateCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return entry.Template, true
}

// Set stores t under both its id and its key.
func (c *TemplateCache) Set(t *domain.ItemTemplate) {
	entry := &cachedTemplate{Version: CacheSchemaVersion, Template: t}
	c.lru.Add(idKey(t.ID), entry)
	c.lru.Add(nameKey(t.TemplateKey), entry)
}

// Purge drops every entry, e.g. after a content sync.
func (c *TemplateCache) Purge() {
	c.lru.Purge()
}

// Len returns the number of cached entries.
func (c *TemplateCache) Len() int {
	return c.lru.Len()
}
