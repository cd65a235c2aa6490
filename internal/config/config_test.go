package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bufpoolctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadHappyPath(t *testing.T) {
	path := writeConfig(t, `
storage:
  page_file: /tmp/pages.db
  frames: 16
  strategy: lru
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pages.db", cfg.Storage.PageFile)
	assert.Equal(t, 16, cfg.Storage.Frames)
	assert.Equal(t, "lru", cfg.Storage.Strategy)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDefaultsLogLevel(t *testing.T) {
	path := writeConfig(t, `
storage:
  page_file: /tmp/pages.db
  frames: 4
  strategy: fifo
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRejectsNonPositiveFrames(t *testing.T) {
	path := writeConfig(t, `
storage:
  page_file: /tmp/pages.db
  frames: 0
  strategy: fifo
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingPageFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  frames: 4
  strategy: fifo
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
