package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"university-api/internal/config"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisCache is the read-side cache for section occupancy and registration
// payloads. The database stays the source of truth; entries are invalidated
// after every enrollment mutation.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisCache{
		client: rdb,
	}
}

func NewRedisCacheWithConfig(cfg *config.CacheConfig) *RedisCache {
	return NewRedisCache(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), cfg.Password, cfg.DB)
}

func sectionEnrollmentKey(sectionID uuid.UUID) string {
	return fmt.Sprintf("section:enrolled:%s", sectionID.String())
}

func (r *RedisCache) GetSectionEnrollment(ctx context.Context, sectionID uuid.UUID) (int, error) {
	val, err := r.client.Get(ctx, sectionEnrollmentKey(sectionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return -1, fmt.Errorf("section enrollment not cached")
		}
		return -1, fmt.Errorf("failed to get section enrollment from cache: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return -1, fmt.Errorf("invalid enrollment value in cache: %w", err)
	}

	return count, nil
}

func (r *RedisCache) SetSectionEnrollment(ctx context.Context, sectionID uuid.UUID, count int, ttl time.Duration) error {
	err := r.client.Set(ctx, sectionEnrollmentKey(sectionID), count, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set section enrollment in cache: %w", err)
	}
	return nil
}

func (r *RedisCache) InvalidateSection(ctx context.Context, sectionID uuid.UUID) error {
	return r.Delete(ctx, sectionEnrollmentKey(sectionID))
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("key not cached: %s", key)
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

var _ interfaces.CacheService = (*RedisCache)(nil)
