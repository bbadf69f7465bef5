package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "career-compass")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "career-compass", cfg.App.AppName)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.False(t, cfg.Log.JSON)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost", cfg.Cache.Host)
	assert.Equal(t, "6379", cfg.Cache.Port)
	assert.Equal(t, 600*time.Second, cfg.Cache.TTL)
	assert.Equal(t, CatalogSourceStatic, cfg.Catalog.Source)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_DEBUG", "1")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "careers")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_CONNECT_TIMEOUT", "5")
	t.Setenv("DB_POOL_MAX_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Debug)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 3, cfg.Cache.DB)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, int32(8), cfg.Database.PoolMaxConns)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_PostgresSourceNeedsDatabase(t *testing.T) {
	setRequired(t)
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LOG_JSON", "maybe"},
		{"REDIS_DB", "-1"},
		{"REDIS_TTL", "ten"},
		{"CATALOG_SOURCE", "mongo"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.ErrorIs(t, err, errInvalidEnv)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "careers")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_SSL_MODE", "")

	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "disable", cfg.DBSSLMode)

	t.Setenv("DB_NAME", "")
	_, err = LoadDatabase()
	require.ErrorIs(t, err, errMissingRequiredEnv)
}
