package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum())
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8081
log_level: debug
scheduler:
  round_robin:
    time_quantum: 4
cache:
  ttl: 30s
redis:
  addr: localhost:6379
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum())
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	t.Setenv("SCHEDULER_PORT", "7000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RoundRobinTimeQuantum())
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoadClampsQuantum(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.RoundRobinTimeQuantum())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSlogLevelFallback(t *testing.T) {
	cfg := &SchedulerConfig{LogLevel: "loud"}
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
