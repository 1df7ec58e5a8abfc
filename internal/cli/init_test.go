package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigil/internal/config"
)

func TestWriteConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)

	cfg := config.DefaultConfig()
	cfg.Backend.URL = "http://prometheus.lan:9090"
	cfg.UI.Theme = "nord"
	cfg.Nodes = []config.NodeSeed{{Name: "atlas", Address: "10.0.0.5"}}

	require.NoError(t, writeConfig(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://prometheus.lan:9090", loaded.Backend.URL)
	assert.Equal(t, "nord", loaded.UI.Theme)
	require.Len(t, loaded.Nodes, 1)
	assert.Equal(t, "atlas", loaded.Nodes[0].Name)
}

func TestWriteConfigIncludesHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)

	require.NoError(t, writeConfig(path, config.DefaultConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# vigil configuration")
}
