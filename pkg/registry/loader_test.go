package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpconf/mcpconf/pkg/schema"
	"github.com/mcpconf/mcpconf/pkg/types"
)

func TestLoader_SaveLoadYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	loader := NewLoader(path)

	reg := New()
	entry := testEntry(types.DeploymentLocal)
	entry.Config.Env = map[string]string{"API_KEY": "secret"}
	reg.AddServer("alpha", entry)
	reg.AddToCategory("data", "alpha")

	require.NoError(t, loader.Save(reg))

	loaded, err := loader.Load()
	require.NoError(t, err)

	got, ok := loaded.GetServer("alpha")
	require.True(t, ok)
	assert.Equal(t, "Test Server", got.Name)
	assert.Equal(t, types.TransportStdio, got.Config.Transport)
	assert.Equal(t, map[string]string{"API_KEY": "secret"}, got.Config.Env)
	assert.Equal(t, map[string][]string{"data": {"alpha"}}, loaded.Categories())
}

func TestLoader_SaveLoadJSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "registry.json")
	loader := NewLoader(path)

	reg := New()
	reg.AddServer("alpha", testEntry(types.DeploymentRemote))
	require.NoError(t, loader.Save(reg))

	loaded, err := loader.Load()
	require.NoError(t, err)

	got, ok := loaded.GetServer("alpha")
	require.True(t, ok)
	assert.Equal(t, types.DeploymentRemote, got.Deployment)
	// JSON numbers decode as float64; timeout still lands as an int default
	assert.Equal(t, types.DefaultTimeout, got.Config.Timeout)
}

func TestLoader_EmptyYAMLFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0600))

	loaded, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "1.0", loaded.Document().Version)
	assert.Empty(t, loaded.ListServers("", ""))
}

func TestLoader_LoadOrInit(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	reg, err := NewLoader(path).LoadOrInit()
	require.NoError(t, err)
	assert.Equal(t, "1.0", reg.Document().Version)
}

func TestLoader_MissingFileIsAnError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestLoader_InvalidEntryFailsLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	doc := `version: "1.0"
servers:
  broken:
    name: Broken
    description: Missing version and config
    deployment: local
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	_, err := NewLoader(path).Load()
	require.Error(t, err)

	var verr *schema.EntryValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "broken", verr.ID)
}

func TestLoader_LoadRawYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	doc := `version: "1.0"
servers:
  alpha:
    name: Alpha
    description: A server
    version: 1.0.0
    deployment: local
    config:
      transport: stdio
      command: python
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	raw, err := NewLoader(path).LoadRaw()
	require.NoError(t, err)
	assert.NoError(t, schema.ValidateDocument(raw))
}

func TestLoader_SaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	loader := NewLoader(filepath.Join(dir, "registry.yaml"))

	reg := New()
	reg.AddServer("alpha", testEntry(types.DeploymentLocal))
	require.NoError(t, loader.Save(reg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "registry.yaml", entries[0].Name())
}
