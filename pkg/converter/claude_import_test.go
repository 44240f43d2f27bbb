package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mcpconf/mcpconf/pkg/schema"
)

func TestFromClaudeDesktop_StdioEntry(t *testing.T) {
	t.Parallel()
	entries := FromClaudeDesktop(map[string]any{
		"mcpServers": map[string]any{
			"weather": map[string]any{
				"command": "python",
				"args":    []any{"weather.py"},
			},
		},
	})

	require.Contains(t, entries, "weather")
	entry := entries["weather"]
	assert.Equal(t, "Weather", entry["name"])
	assert.Equal(t, ImportedDescription, entry["description"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "local", entry["deployment"])

	config := entry["config"].(map[string]any)
	assert.Equal(t, "stdio", config["transport"])
	assert.Equal(t, "python", config["command"])
	assert.Equal(t, []any{"weather.py"}, config["args"])
}

func TestFromClaudeDesktop_NameDerivation(t *testing.T) {
	t.Parallel()
	entries := FromClaudeDesktop(map[string]any{
		"mcpServers": map[string]any{
			"my-weather-server": map[string]any{"command": "node"},
		},
	})
	assert.Equal(t, "My Weather Server", entries["my-weather-server"]["name"])
}

func TestFromClaudeDesktop_URLTransportDetection(t *testing.T) {
	t.Parallel()
	entries := FromClaudeDesktop(map[string]any{
		"mcpServers": map[string]any{
			"secure": map[string]any{
				"url":     "https://api.example.com",
				"headers": map[string]any{"Authorization": "Bearer x"},
			},
			"plain": map[string]any{"url": "http://localhost:8080"},
		},
	})

	secure := entries["secure"]
	assert.Equal(t, "remote", secure["deployment"])
	assert.Equal(t, "https", secure["config"].(map[string]any)["transport"])

	plain := entries["plain"]
	assert.Equal(t, "http", plain["config"].(map[string]any)["transport"])
}

func TestFromClaudeDesktop_MissingKeyYieldsEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, FromClaudeDesktop(map[string]any{}))
	assert.Empty(t, FromClaudeDesktop(map[string]any{"mcpServers": "bogus"}))
}

func TestFromClaudeDesktop_EntryWithoutCommandOrURLFailsValidation(t *testing.T) {
	t.Parallel()
	entries := FromClaudeDesktop(map[string]any{
		"mcpServers": map[string]any{
			"broken": map[string]any{"comment": "nothing useful"},
		},
	})

	require.Contains(t, entries, "broken")
	errs := schema.ValidateEntry(entries["broken"])
	assert.Contains(t, errs, "config.transport")
}

// TestClaudeDesktopRoundTrip checks that an entry imported from the
// Claude Desktop dialect and parsed into the canonical model exports
// back to the same structural subset.
func TestClaudeDesktopRoundTrip(t *testing.T) {
	t.Parallel()
	original := map[string]any{
		"mcpServers": map[string]any{
			"test-server": map[string]any{
				"command": "python",
				"args":    []any{"server.py", "--verbose"},
				"env":     map[string]any{"API_KEY": "secret"},
			},
		},
	}

	imported := FromClaudeDesktop(original)
	entry, err := schema.ParseEntry(imported["test-server"])
	require.NoError(t, err)

	exported := ToClaudeDesktop(entry, "test-server")
	assert.Empty(t, cmp.Diff(jsonNormalize(t, original), jsonNormalize(t, exported)))
}

// TestClaudeDesktopRoundTrip_Property drives the round trip with
// generated server configs.
func TestClaudeDesktopRoundTrip_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(r *rapid.T) {
		id := rapid.StringMatching(`[a-z]{2,8}(-[a-z]{2,8}){0,2}`).Draw(r, "id")

		serverConfig := map[string]any{}
		if rapid.Bool().Draw(r, "stdio") {
			serverConfig["command"] = rapid.SampledFrom([]string{"python", "node", "uvx", "deno"}).Draw(r, "command")
			if rapid.Bool().Draw(r, "hasArgs") {
				args := rapid.SliceOfN(rapid.StringMatching(`[a-z./-]{1,12}`), 1, 4).Draw(r, "args")
				serverConfig["args"] = toAny(args)
			}
			if rapid.Bool().Draw(r, "hasEnv") {
				env := rapid.MapOfN(
					rapid.StringMatching(`[A-Z]{2,8}(_KEY|_TOKEN)?`),
					rapid.StringMatching(`[a-zA-Z0-9]{1,16}`),
					1, 3,
				).Draw(r, "env")
				serverConfig["env"] = toAnyValues(env)
			}
		} else {
			scheme := rapid.SampledFrom([]string{"http", "https"}).Draw(r, "scheme")
			serverConfig["url"] = scheme + "://" + rapid.StringMatching(`[a-z]{3,10}\.example\.com/mcp`).Draw(r, "host")
			if rapid.Bool().Draw(r, "hasHeaders") {
				serverConfig["headers"] = map[string]any{
					"Authorization": "Bearer " + rapid.StringMatching(`[a-z0-9]{4,12}`).Draw(r, "token"),
				}
			}
		}

		original := map[string]any{"mcpServers": map[string]any{id: serverConfig}}

		imported := FromClaudeDesktop(original)
		entry, err := schema.ParseEntry(imported[id])
		if err != nil {
			r.Fatalf("imported entry failed to parse: %v", err)
		}

		exported := ToClaudeDesktop(entry, id)
		if diff := cmp.Diff(jsonNormalize(t, original), jsonNormalize(t, exported)); diff != "" {
			r.Fatalf("round trip mismatch (-original +exported):\n%s", diff)
		}
	})
}

func toAny(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func toAnyValues(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
