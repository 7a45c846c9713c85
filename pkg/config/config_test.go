package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todoman/todoman/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("Should load defaults when no environment is set", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
		assert.Equal(t, "todos", cfg.Database.Name)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Contains(t, cfg.Server.CORSAllowedOrigins, "http://localhost:5173")
	})
	t.Run("Should override defaults from TODO_ environment variables", func(t *testing.T) {
		t.Setenv("TODO_SERVER_PORT", "9000")
		t.Setenv("TODO_DB_NAME", "todos_test")
		t.Setenv("TODO_LOG_LEVEL", "debug")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "todos_test", cfg.Database.Name)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
	t.Run("Should split CORS origins on commas", func(t *testing.T) {
		t.Setenv("TODO_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	})
	t.Run("Should prefer an explicit connection string", func(t *testing.T) {
		t.Setenv("TODO_DB_CONN_STRING", "postgres://u:p@db:5432/todos")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db:5432/todos", cfg.Database.DSN())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("Should assemble a DSN from individual fields", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Host: "localhost", Port: "5432", User: "postgres",
			Password: "secret", Name: "todos", SSLMode: "disable",
		}
		assert.Equal(
			t,
			"host=localhost port=5432 user=postgres password=secret dbname=todos sslmode=disable",
			cfg.DSN(),
		)
	})
}
