package database

import (
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivek13121/TripWeave/config"
)

func TestNewDatabaseConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("builds a postgresql url", func(t *testing.T) {
		var cfg config.Config
		cfg.Repositories.Postgres.Host = "localhost"
		cfg.Repositories.Postgres.Port = "5433"
		cfg.Repositories.Postgres.Username = "trip"
		cfg.Repositories.Postgres.Password = "s3cret"
		cfg.Repositories.Postgres.DB = "tripweave"

		dbCfg, err := NewDatabaseConfig(&cfg, logger)
		require.NoError(t, err)

		u, err := url.Parse(dbCfg.ConnectionURL)
		require.NoError(t, err)
		assert.Equal(t, "postgresql", u.Scheme)
		assert.Equal(t, "localhost:5433", u.Host)
		assert.Equal(t, "/tripweave", u.Path)
		assert.Equal(t, "disable", u.Query().Get("sslmode"))
		pw, _ := u.User.Password()
		assert.Equal(t, "s3cret", pw)
	})

	t.Run("rejects missing host", func(t *testing.T) {
		_, err := NewDatabaseConfig(&config.Config{}, logger)
		assert.Error(t, err)
		_, err = NewDatabaseConfig(nil, logger)
		assert.Error(t, err)
	})
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
