package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ":9090"
	cfg.Messages.Path = "messages.yaml"
	cfg.Audit.Enabled = true

	path := filepath.Join(t.TempDir(), "payflow.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Server.Addr, got.Server.Addr)
	assert.Equal(t, cfg.Server.ShutdownTimeout, got.Server.ShutdownTimeout)
	assert.Equal(t, cfg.Logging.Level, got.Logging.Level)
	assert.Equal(t, cfg.Messages.Path, got.Messages.Path)
	assert.True(t, got.Audit.Enabled)
	assert.Equal(t, cfg.Audit.Dir, got.Audit.Dir)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, "logs", cfg.Audit.Dir)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "payflow.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "8080")
	assert.Contains(t, contents, "shutdown_timeout: 10")
	assert.Contains(t, contents, "level: info")
}
