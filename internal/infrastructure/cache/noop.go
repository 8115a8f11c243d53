package cache

import (
	"context"
	"fmt"
	"time"

	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
)

// NoopCache satisfies CacheService without caching anything. Used when the
// cache is disabled; every read misses so callers fall back to the database.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetSectionEnrollment(ctx context.Context, sectionID uuid.UUID) (int, error) {
	return -1, fmt.Errorf("cache disabled")
}

func (n *NoopCache) SetSectionEnrollment(ctx context.Context, sectionID uuid.UUID, count int, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) InvalidateSection(ctx context.Context, sectionID uuid.UUID) error {
	return nil
}

func (n *NoopCache) Get(ctx context.Context, key string) (string, error) {
	return "", fmt.Errorf("cache disabled")
}

func (n *NoopCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (n *NoopCache) Health(ctx context.Context) error {
	return nil
}

func (n *NoopCache) Close() error {
	return nil
}

var _ interfaces.CacheService = (*NoopCache)(nil)
