package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/league-registry/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearSecrets(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_POSTGRES_USER", "APP_POSTGRES_PASSWORD", "APP_POSTGRES_DB",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	// Minimal YAML; secrets will come from ENV
	path := writeTempConfig(t, `
app:
  name: league-registry
  version: 0.1.0
  env: test
  port: 18080

logger:
  level: info
  format: json
  time_format: rfc3339

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5

http:
  shutdown_timeout: 3
  allowed_origins: ["https://stats.example.com"]
`)
	clearSecrets(t)
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 3, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"https://stats.example.com"}, cfg.HTTP.AllowedOrigins)

	// defaults fill what the file leaves out
	assert.Equal(t, int32(1), cfg.Postgres.MinConns)
	assert.Equal(t, 10, cfg.HTTP.ReadTimeout)
}

func TestConfigLoad_FallbackSecretNames(t *testing.T) {
	path := writeTempConfig(t, "app:\n  port: 8080\n")
	clearSecrets(t)
	t.Setenv("POSTGRES_USER", "pguser")
	t.Setenv("DB_PASSWORD", "dbpass")
	t.Setenv("DB_NAME", "leagues")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pguser", cfg.Postgres.User)
	assert.Equal(t, "dbpass", cfg.Postgres.Password)
	assert.Equal(t, "leagues", cfg.Postgres.DBName)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	path := writeTempConfig(t, `
app:
  port: 18080
postgres:
  host: localhost
`)
	clearSecrets(t)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestConfigLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
