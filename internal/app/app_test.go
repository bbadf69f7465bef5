package app

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"career-compass/internal/config"
	"career-compass/internal/database/dbtest"
	"career-compass/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticConfig() config.Config {
	return config.Config{
		App:     config.AppConfig{AppName: "career-compass", Environment: "test", HTTPPort: "0"},
		Cache:   config.CacheConfig{Enabled: false},
		Catalog: config.CatalogConfig{Source: config.CatalogSourceStatic},
	}
}

func TestBootstrap_StaticCatalog(t *testing.T) {
	a, cleanup, err := Bootstrap(context.Background(), staticConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cleanup()) })

	assert.Nil(t, a.Container.DB)
	assert.Len(t, a.Container.Engine.Catalog().Roles(), 20)

	resp, err := a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, false, env.Data["cache_available"])
	assert.Equal(t, "static", env.Data["catalog_source"])
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Len(t, c.Roles(), 20)

	_, err = LoadCatalog(context.Background(), config.CatalogSourcePostgres, &dbtest.FakeDB{})
	require.ErrorIs(t, err, repository.ErrCatalogEmpty)

	_, err = LoadCatalog(context.Background(), "mongo", nil)
	require.Error(t, err)
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "8080", want: ":8080"},
		{in: " :9000 ", want: ":9000"},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ListenAddr(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
