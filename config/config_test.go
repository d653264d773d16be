package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.True(t, cfg.CancelledSlotsBlock)
	assert.False(t, cfg.DurationAwareSlots)
	assert.Equal(t, 10*time.Minute, cfg.DashboardCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.ReminderLead)
	assert.Equal(t, 3, cfg.RedisReminderQueueDB)
}

func TestLocation(t *testing.T) {
	prev := AppConfig.Timezone
	t.Cleanup(func() { AppConfig.Timezone = prev })

	AppConfig.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, Location())

	AppConfig.Timezone = ""
	assert.Equal(t, time.UTC, Location())
}
