package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Status.Server.Port)
	assert.Equal(t, 8002, cfg.Telemetry.Server.Port)
	assert.Equal(t, 8000, cfg.Users.Server.Port)
	assert.Equal(t, "sqlite", cfg.Telemetry.Database.Driver)
	assert.Equal(t, "./satellite_telemetry.db", cfg.Telemetry.Database.DSN)
	assert.Equal(t, 10.0, cfg.Status.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Status.Server.RateLimitBurst)
	assert.Equal(t, 30*time.Second, cfg.Users.CacheTTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "satellite.telemetry", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers, "brokers are only defaulted when kafka is enabled")
	assert.ElementsMatch(t, []string{"http://localhost:8080", "http://127.0.0.1:8080"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
telemetry:
  server:
    port: 9102
  database:
    driver: postgres
    dsn: postgres://u:p@db:5432/telemetry
users:
  cache_ttl_seconds: 5
kafka:
  enabled: true
simulation:
  seed: 42
`))
	require.NoError(t, err)

	assert.Equal(t, 9102, cfg.Telemetry.Server.Port)
	assert.Equal(t, "postgres", cfg.Telemetry.Database.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/telemetry", cfg.Telemetry.Database.DSN)
	assert.Equal(t, 5*time.Second, cfg.Users.CacheTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "status: [unterminated\n"))
	assert.Error(t, err)
}
