package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "catalogo-api", cfg.App.Name)
	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.SeedDemo)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "catalogo", cfg.Redis.KeyPrefix)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "3s")
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, config.StoreRedis, cfg.Store.Driver)
	assert.False(t, cfg.Store.SeedDemo)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_TimeoutEnSegundos(t *testing.T) {
	t.Setenv("HTTP_REQUEST_TIMEOUT", "7")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.HTTP.RequestTimeout)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongodb")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_TimeoutInvalido(t *testing.T) {
	t.Setenv("HTTP_REQUEST_TIMEOUT", "pronto")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "s3cr#t", DBName: "catalogo", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:s3cr%23t@db:5432/catalogo?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://otro@host/x"
	assert.Equal(t, "postgres://otro@host/x", db.ConnectionString())
}
