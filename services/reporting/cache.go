// File: services/reporting/cache.go
package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agendly/models"
	"agendly/utils"

	"github.com/go-redis/redis/v8"
)

// StatsCache stores the latest dashboard snapshot per store.
type StatsCache interface {
	// Get returns (nil, false, nil) on a miss.
	Get(ctx context.Context, storeID string) (*models.DashboardStats, bool, error)
	Set(ctx context.Context, stats models.DashboardStats) error
	Invalidate(ctx context.Context, storeID string) error
}

// RedisStatsCache keeps snapshots as JSON strings under DashboardCachePrefix.
type RedisStatsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{Client: client, TTL: ttl}
}

func cacheKey(storeID string) string {
	return utils.DashboardCachePrefix + storeID
}

func (c *RedisStatsCache) Get(ctx context.Context, storeID string) (*models.DashboardStats, bool, error) {
	raw, err := c.Client.Get(ctx, cacheKey(storeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read dashboard cache for store %s: %w", storeID, err)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false, fmt.Errorf("decode dashboard cache for store %s: %w", storeID, err)
	}
	return &stats, true, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, stats models.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode dashboard stats: %w", err)
	}
	if err := c.Client.Set(ctx, cacheKey(stats.StoreID), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("write dashboard cache for store %s: %w", stats.StoreID, err)
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, storeID string) error {
	return c.Client.Del(ctx, cacheKey(storeID)).Err()
}
