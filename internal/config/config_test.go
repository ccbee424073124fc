package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/carbon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 30*time.Second, cfg.DBHealthCheck)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STORE", StoreMemory)
	t.Setenv("LISTEN_ADDR", ":9999")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, StoreMemory, cfg.Store)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/carbon")
	t.Setenv("STORE", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("warn", "json", &buf)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("dropped")
	log.Warn().Str("k", "v").Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"k":"v"`)

	assert.Equal(t, zerolog.InfoLevel, NewLogger("bogus", "console", &buf).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger("", "json", &buf).GetLevel())
}
