package reporting

import (
	"context"
	"testing"
	"time"

	"agendly/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr, func() {
		client.Close()
		mr.Close()
	}
}

func TestRedisStatsCacheRoundTrip(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "store-1")
	require.NoError(t, err)
	assert.False(t, ok)

	stats := models.DashboardStats{
		StoreID:        "store-1",
		ReferenceDate:  "2025-01-08",
		WeekRevenue:    100,
		CompletionRate: 50,
		ByStatus:       map[models.AppointmentStatus]int{models.StatusCompleted: 1},
	}
	require.NoError(t, cache.Set(ctx, stats))
	assert.True(t, mr.Exists("dashboard:store-1"))
	assert.Equal(t, time.Minute, mr.TTL("dashboard:store-1"))

	got, ok, err := cache.Get(ctx, "store-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 100.0, got.WeekRevenue)
	assert.Equal(t, 1, got.ByStatus[models.StatusCompleted])

	require.NoError(t, cache.Invalidate(ctx, "store-1"))
	_, ok, err = cache.Get(ctx, "store-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStatsCacheExpires(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client, time.Minute)
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, models.DashboardStats{StoreID: "store-1"}))

	mr.FastForward(2 * time.Minute)
	_, ok, err := cache.Get(ctx, "store-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
