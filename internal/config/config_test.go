package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "http://localhost:9090", cfg.Backend.URL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Backend.QueryInterval)
	assert.Equal(t, 250, cfg.UI.RefreshRateMS)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Equal(t, 60, cfg.History.Retention)
	assert.NotEmpty(t, cfg.Backend.NodeQueries.CPU)
	assert.NotEmpty(t, cfg.Backend.ServiceQueries.Status)

	// Defaults must validate cleanly
	assert.NoError(t, Validate(cfg))
}

func TestLoadValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := `version: 1
backend:
  url: http://prometheus.lab:30090
  timeout: 8s
  query_interval: 15s
nodes:
  - name: atlas
    address: 192.168.1.10
    show_gpu: true
  - name: hermes
    address: 192.168.1.11
ui:
  refresh_rate_ms: 500
  theme: nord
  filter:
    namespace: homelab
history:
  retention: 120
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://prometheus.lab:30090", cfg.Backend.URL)
	assert.Equal(t, 8*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Backend.QueryInterval)
	assert.Equal(t, 500, cfg.UI.RefreshRateMS)
	assert.Equal(t, "nord", cfg.UI.Theme)
	assert.Equal(t, "homelab", cfg.UI.Filter.Namespace)
	assert.Equal(t, 120, cfg.History.Retention)

	require.Len(t, cfg.Nodes, 2)
	assert.Equal(t, "atlas", cfg.Nodes[0].Name)
	assert.True(t, cfg.Nodes[0].ShowGPU)
	assert.Equal(t, "hermes", cfg.Nodes[1].Name)

	// Unspecified sections keep defaults
	assert.NotEmpty(t, cfg.Backend.NodeQueries.CPU)
	assert.Equal(t, []int{50, 50}, cfg.UI.MainSplit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("backend: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestFindExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestIsKnownTheme(t *testing.T) {
	for _, name := range Themes {
		assert.True(t, IsKnownTheme(name), "theme %q should be known", name)
	}
	assert.False(t, IsKnownTheme("hotdog-stand"))
	assert.False(t, IsKnownTheme(""))
}
