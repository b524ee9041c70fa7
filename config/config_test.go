package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "9090", cfg.Handlers.Prometheus.Port)
	assert.Equal(t, 5, cfg.Planner.MaxRetries)
	assert.Equal(t, 30*time.Minute, cfg.Planner.ActivityCacheTTL)
	assert.Contains(t, cfg.Cors.AllowedOrigins, "http://localhost:5173")
	assert.False(t, cfg.PostgresEnabled())
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Setenv("TRIPWEAVE_REPOSITORIES_POSTGRES_HOST", "db.internal")
	t.Setenv("TRIPWEAVE_PLANNER_MAXRETRIES", "2")

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Repositories.Postgres.Host)
	assert.Equal(t, 2, cfg.Planner.MaxRetries)
	assert.True(t, cfg.PostgresEnabled())
}
