package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "auto", cfg.Analysis.DefaultLang)
	assert.False(t, cfg.Remote.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caesar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  read_timeout: 5s
analysis:
  default_lang: fr
remote:
  enabled: true
  base_url: http://analyze.internal/analyze
  timeout: 2s
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "5s", cfg.Server.ReadTimeout)
	// Unset fields keep their defaults.
	assert.Equal(t, "60s", cfg.Server.WriteTimeout)
	assert.Equal(t, "fr", cfg.Analysis.DefaultLang)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, "http://analyze.internal/analyze", cfg.Remote.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GOCAESAR_ADDR", ":7070")
	t.Setenv("GOCAESAR_DEFAULT_LANG", "fr")
	t.Setenv("GOCAESAR_REMOTE_URL", "http://remote/analyze")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "fr", cfg.Analysis.DefaultLang)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, "http://remote/analyze", cfg.Remote.BaseURL)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, Duration("5s", time.Second))
	assert.Equal(t, time.Second, Duration("", time.Second))
	assert.Equal(t, time.Second, Duration("nonsense", time.Second))
	assert.Equal(t, time.Second, Duration("-3s", time.Second))
}
