package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "fieldsync-client.db", cfg.Storage.Path)
	assert.Equal(t, 3, cfg.Sync.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.PacingInterval())
	assert.Equal(t, 10*time.Second, cfg.ProbeInterval())
	assert.Equal(t, time.Second, cfg.Stabilization())
	assert.False(t, cfg.Monitoring.Enabled)
	assert.Equal(t, ":9090", cfg.Monitoring.ListenAddr)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: https://sync.example.com
  timeout_seconds: 5
storage:
  path: /var/lib/fieldsync/client.db
sync:
  max_attempts: 5
  pacing_ms: 250
network:
  probe_interval_seconds: 30
  stabilization_ms: 2000
monitoring:
  enabled: true
  listen_addr: ":9100"
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://sync.example.com", cfg.Server.URL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "/var/lib/fieldsync/client.db", cfg.Storage.Path)
	assert.Equal(t, 5, cfg.Sync.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.PacingInterval())
	assert.Equal(t, 30*time.Second, cfg.ProbeInterval())
	assert.Equal(t, 2*time.Second, cfg.Stabilization())
	assert.True(t, cfg.Monitoring.Enabled)
	assert.Equal(t, ":9100", cfg.Monitoring.ListenAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: https://sync.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://sync.example.com", cfg.Server.URL)
	assert.Equal(t, 3, cfg.Sync.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.PacingInterval())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FIELDSYNC_SERVER_URL", "https://env.example.com")
	t.Setenv("FIELDSYNC_DB_PATH", "/tmp/env.db")
	t.Setenv("FIELDSYNC_LOG_LEVEL", "warn")
	t.Setenv("FIELDSYNC_METRICS_ADDR", ":9200")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Server.URL)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ":9200", cfg.Monitoring.ListenAddr)
	assert.True(t, cfg.Monitoring.Enabled)
}

func TestEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: https://file.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("FIELDSYNC_SERVER_URL", "https://env.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Server.URL)
}
