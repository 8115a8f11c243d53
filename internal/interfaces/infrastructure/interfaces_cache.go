package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CacheService is the read-side cache consumed by the registration reads.
// Every method is best-effort: a cache miss or failure degrades to a
// database read, never to a request failure.
type CacheService interface {
	// Section occupancy annotation for the available-course resolver
	GetSectionEnrollment(ctx context.Context, sectionID uuid.UUID) (int, error)
	SetSectionEnrollment(ctx context.Context, sectionID uuid.UUID, count int, ttl time.Duration) error
	InvalidateSection(ctx context.Context, sectionID uuid.UUID) error

	// Generic payload caching (serialized JSON)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	Health(ctx context.Context) error
	Close() error
}
