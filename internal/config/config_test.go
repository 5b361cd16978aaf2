package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/studentregistration/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "studentregistration", cfg.Database.DBName)
	assert.Equal(t, "http://localhost:8080", cfg.Web.APIBaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "7070"
database:
  dbname: registry_test
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "registry_test", cfg.Database.DBName)
	// Untouched fields keep their defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("SEED_ENABLED", "true")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 42, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadConfigRejectsBadLifetime(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
