package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", cfg.Timezone)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.Equal(t, "rich365.db", filepath.Base(cfg.DBPath))
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /tmp/r.db
log_level: debug
cache:
  size: 8
http:
  addr: 127.0.0.1:9000
  cors_origins:
    - https://rich365.ai
    - http://localhost:3000
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://rich365.ai", "http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rich365.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/file.db\n"), 0o644))
	t.Setenv("RICH365_DB_PATH", "/tmp/env.db")
	t.Setenv("RICH365_HTTP_ADDR", ":9999")
	t.Setenv("RICH365_HTTP_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad timezone", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("RICH365_TIMEZONE", "Mars/Olympus")
		_, err := Load("")
		assert.ErrorContains(t, err, "timezone")
	})
	t.Run("negative cache", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("RICH365_CACHE_SIZE", "-1")
		_, err := Load("")
		assert.ErrorContains(t, err, "cache.size")
	})
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "verbose"}.SlogLevel())
}
