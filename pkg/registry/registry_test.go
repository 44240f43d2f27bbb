package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpconf/mcpconf/pkg/types"
)

func testEntry(deployment types.DeploymentType) *types.Entry {
	return &types.Entry{
		Name:        "Test Server",
		Description: "A test server",
		Version:     "1.0.0",
		Deployment:  deployment,
		Config: &types.Config{
			Transport: types.TransportStdio,
			Command:   "python",
			Timeout:   types.DefaultTimeout,
		},
	}
}

func TestRegistry_AddGetRemove(t *testing.T) {
	t.Parallel()
	reg := New()

	reg.AddServer("alpha", testEntry(types.DeploymentLocal))
	entry, ok := reg.GetServer("alpha")
	require.True(t, ok)
	assert.Equal(t, "Test Server", entry.Name)

	// Last write wins
	replacement := testEntry(types.DeploymentLocal)
	replacement.Name = "Replacement"
	reg.AddServer("alpha", replacement)
	entry, _ = reg.GetServer("alpha")
	assert.Equal(t, "Replacement", entry.Name)

	assert.True(t, reg.RemoveServer("alpha"))
	assert.False(t, reg.RemoveServer("alpha"))
	_, ok = reg.GetServer("alpha")
	assert.False(t, ok)
}

func TestRegistry_ListServers(t *testing.T) {
	t.Parallel()
	reg := New()
	reg.AddServer("zeta", testEntry(types.DeploymentLocal))
	reg.AddServer("alpha", testEntry(types.DeploymentRemote))
	reg.AddServer("mid", testEntry(types.DeploymentLocal))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.ListServers("", ""))
	assert.Equal(t, []string{"mid", "zeta"}, reg.ListServers("local", ""))
	assert.Equal(t, []string{"alpha"}, reg.ListServers("remote", ""))
	assert.Empty(t, reg.ListServers("orbital", ""))
}

func TestRegistry_ListServersByCategory(t *testing.T) {
	t.Parallel()
	reg := New()
	reg.AddServer("alpha", testEntry(types.DeploymentLocal))
	reg.AddServer("beta", testEntry(types.DeploymentLocal))
	reg.AddToCategory("data", "alpha")
	// Dangling identifier: filtered out, never an error
	reg.AddToCategory("data", "ghost")

	assert.Equal(t, []string{"alpha"}, reg.ListServers("", "data"))
	assert.Empty(t, reg.ListServers("", "unknown-category"))
}

func TestRegistry_SearchServers(t *testing.T) {
	t.Parallel()
	reg := New()

	weather := testEntry(types.DeploymentLocal)
	weather.Name = "Weather Provider"
	weather.Capabilities = &types.Capabilities{Tools: []string{"get_forecast"}}
	reg.AddServer("weather", weather)

	files := testEntry(types.DeploymentLocal)
	files.Description = "Filesystem access"
	reg.AddServer("files", files)

	assert.Equal(t, []string{"weather"}, reg.SearchServers("WEATHER"))
	assert.Equal(t, []string{"files"}, reg.SearchServers("filesystem"))
	assert.Equal(t, []string{"weather"}, reg.SearchServers("forecast"))
	assert.Empty(t, reg.SearchServers("database"))
}

func TestRegistry_Categories(t *testing.T) {
	t.Parallel()
	reg := New()
	reg.AddToCategory("data", "alpha")
	reg.AddToCategory("data", "alpha") // repeat is a no-op
	reg.AddToCategory("data", "beta")

	assert.Equal(t, map[string][]string{"data": {"alpha", "beta"}}, reg.Categories())

	assert.True(t, reg.RemoveFromCategory("data", "alpha"))
	assert.False(t, reg.RemoveFromCategory("data", "alpha"))
	assert.False(t, reg.RemoveFromCategory("missing", "alpha"))

	// Emptied categories are dropped
	assert.True(t, reg.RemoveFromCategory("data", "beta"))
	assert.Empty(t, reg.Categories())
}

func TestRegistry_ValidateServer(t *testing.T) {
	t.Parallel()
	reg := New()
	reg.AddServer("alpha", testEntry(types.DeploymentLocal))

	assert.Empty(t, reg.ValidateServer("alpha"))
	assert.Equal(t, "Server not found", reg.ValidateServer("missing")["server"])
}

func TestRegistry_ConvertByID(t *testing.T) {
	t.Parallel()
	reg := New()
	reg.AddServer("alpha", testEntry(types.DeploymentLocal))

	result, err := reg.ToClaudeDesktop("alpha")
	require.NoError(t, err)
	assert.Contains(t, result, "mcpServers")

	line, err := reg.ToHostsLine("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha local stdio python", line)

	_, err = reg.ToDXTManifest("alpha")
	assert.NoError(t, err)

	// Transport mismatch propagates the converter error
	_, err = reg.ToGithubMCP("alpha")
	assert.Error(t, err)
}

func TestRegistry_ConvertByID_NotFound(t *testing.T) {
	t.Parallel()
	reg := New()

	var nferr *NotFoundError
	_, err := reg.ToClaudeDesktop("missing")
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "missing", nferr.ID)

	_, err = reg.ToGithubMCP("missing")
	assert.ErrorAs(t, err, &nferr)
	_, err = reg.ToDXTManifest("missing")
	assert.ErrorAs(t, err, &nferr)
	_, err = reg.ToHostsLine("missing")
	assert.ErrorAs(t, err, &nferr)
}

func TestRegistry_ImportClaudeDesktop(t *testing.T) {
	t.Parallel()
	reg := New()

	result := reg.ImportClaudeDesktop(map[string]any{
		"mcpServers": map[string]any{
			"weather": map[string]any{
				"command": "python",
				"args":    []any{"weather.py"},
			},
			"broken": map[string]any{"comment": "no command, no url"},
		},
	})

	assert.Equal(t, []string{"weather"}, result.Added)
	assert.Contains(t, result.Skipped, "broken")

	entry, ok := reg.GetServer("weather")
	require.True(t, ok)
	assert.Equal(t, "Weather", entry.Name)
	assert.Equal(t, types.DeploymentLocal, entry.Deployment)
	assert.Equal(t, types.TransportStdio, entry.Config.Transport)

	_, ok = reg.GetServer("broken")
	assert.False(t, ok)
}

func TestRegistry_ImportClaudeDesktop_EmptyDocument(t *testing.T) {
	t.Parallel()
	reg := New()
	result := reg.ImportClaudeDesktop(map[string]any{})
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Skipped)
}
