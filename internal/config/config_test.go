package config_test

import (
	"testing"

	"github.com/hostelhub/complaint-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 60, cfg.RateLimitRPM)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://hostel.example.edu")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, []string{"https://hostel.example.edu"}, cfg.AllowedOrigins)
}

func TestProductionGuards(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEED_DEMO_DATA", "false")

	_, err := config.Load()
	require.Error(t, err, "production must refuse the dev JWT secret")

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)

	t.Setenv("SEED_DEMO_DATA", "true")
	_, err = config.Load()
	require.Error(t, err, "production must refuse demo seed data")
}
