package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bangohan/kondate/internal/metrics"
	"github.com/bangohan/kondate/internal/services/model"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// Source exposes the remote model catalog.
type Source interface {
	ListModels(ctx context.Context) ([]model.Descriptor, error)
}

// Catalog caches the model catalog for a session. The catalog is fetched on
// first use and reused until the TTL lapses or a caller invalidates it after
// a failure; it is never refreshed implicitly per request.
type Catalog struct {
	source Source
	ttl    time.Duration

	mu        sync.Mutex
	snapshot  []model.Descriptor
	fetchedAt time.Time
}

// NewCatalog creates a catalog cache over the given source. A zero or
// negative ttl disables expiry so the snapshot lives until invalidated.
func NewCatalog(source Source, ttl time.Duration) *Catalog {
	return &Catalog{source: source, ttl: ttl}
}

// Models returns the cached catalog, fetching it from the source when the
// cache is empty or stale. Fetch failures leave any previous snapshot
// untouched so a later call can retry.
func (c *Catalog) Models(ctx context.Context) ([]model.Descriptor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && !c.expired() {
		metrics.CatalogFetchesTotal.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.Bool("cache_hit", true),
		))
		return c.snapshot, nil
	}

	descriptors, err := c.source.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	metrics.CatalogFetchesTotal.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.Bool("cache_hit", false),
	))

	c.snapshot = descriptors
	c.fetchedAt = time.Now()
	return c.snapshot, nil
}

// Invalidate drops the cached snapshot. Callers invoke it after a generation
// failure so the next request re-discovers model availability.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
}

func (c *Catalog) expired() bool {
	if c.ttl <= 0 {
		return false
	}
	return time.Since(c.fetchedAt) > c.ttl
}
