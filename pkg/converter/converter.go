// Package converter maps canonical registry entries to and from the
// configuration dialects of external client tools. Every function is
// stateless and pure; fields absent from the source entry are omitted
// from the output rather than emitted as nulls or empty collections.
package converter

import (
	"fmt"

	"github.com/mcpconf/mcpconf/pkg/types"
)

// pythonCommands are the launch commands that classify a stdio server
// as a python runtime in DXT manifests; anything else is node.
var pythonCommands = map[string]bool{
	"python":  true,
	"python3": true,
	"uv":      true,
	"uvx":     true,
}

// ToClaudeDesktop converts an entry to the Claude Desktop
// configuration shape: {"mcpServers": {<id>: {...}}}. Stdio entries
// carry command/args/env, http(s) entries carry url/headers. It never
// fails; transports with no representable fields produce an empty
// server config.
func ToClaudeDesktop(entry *types.Entry, id string) map[string]any {
	serverConfig := map[string]any{}

	switch entry.Config.Transport {
	case types.TransportStdio:
		if entry.Config.Command != "" {
			serverConfig["command"] = entry.Config.Command
		}
		if len(entry.Config.Args) > 0 {
			serverConfig["args"] = append([]string(nil), entry.Config.Args...)
		}
		if len(entry.Config.Env) > 0 {
			serverConfig["env"] = copyStringMap(entry.Config.Env)
		}
	case types.TransportHTTP, types.TransportHTTPS:
		if entry.Config.URL != "" {
			serverConfig["url"] = entry.Config.URL
		}
		if len(entry.Config.Headers) > 0 {
			serverConfig["headers"] = copyStringMap(entry.Config.Headers)
		}
	}

	return map[string]any{
		"mcpServers": map[string]any{id: serverConfig},
	}
}

// ToGithubMCP converts an entry to the GitHub MCP server shape:
// {"servers": {<id>: {"type": "http", ...}}}. Only http and https
// transports are representable.
func ToGithubMCP(entry *types.Entry, id string) (map[string]any, error) {
	switch entry.Config.Transport {
	case types.TransportHTTP, types.TransportHTTPS:
	default:
		return nil, &UnsupportedTransportError{Format: FormatGithubMCP, Transport: entry.Config.Transport}
	}

	serverConfig := map[string]any{
		"type": "http",
		"url":  entry.Config.URL,
	}
	if len(entry.Config.Headers) > 0 {
		serverConfig["headers"] = copyStringMap(entry.Config.Headers)
	}

	return map[string]any{
		"servers": map[string]any{id: serverConfig},
	}, nil
}

// ToDXTManifest converts a stdio entry to a DXT packaging manifest.
// The server runtime is classified from the launch command; commands
// outside the python set fall back to node.
func ToDXTManifest(entry *types.Entry, id string) (map[string]any, error) {
	if entry.Config.Transport != types.TransportStdio {
		return nil, &UnsupportedTransportError{Format: FormatDXT, Transport: entry.Config.Transport}
	}

	runtimeType := "node"
	if pythonCommands[entry.Config.Command] {
		runtimeType = "python"
	}

	mcpConfig := map[string]any{}
	if entry.Config.Command != "" {
		mcpConfig["command"] = entry.Config.Command
	}
	if len(entry.Config.Args) > 0 {
		mcpConfig["args"] = append([]string(nil), entry.Config.Args...)
	}
	if len(entry.Config.Env) > 0 {
		mcpConfig["env"] = copyStringMap(entry.Config.Env)
	}

	manifest := map[string]any{
		"dxt_version":  "1.0",
		"name":         id,
		"display_name": entry.Name,
		"version":      entry.Version,
		"description":  entry.Description,
		"server": map[string]any{
			"type":       runtimeType,
			"mcp_config": mcpConfig,
		},
	}

	if entry.License != "" {
		manifest["license"] = entry.License
	}
	if entry.SourceURL != "" {
		manifest["repository"] = entry.SourceURL
	}

	if entry.Capabilities != nil && len(entry.Capabilities.Tools) > 0 {
		tools := make([]map[string]string, 0, len(entry.Capabilities.Tools))
		for _, tool := range entry.Capabilities.Tools {
			tools = append(tools, map[string]string{
				"name":        tool,
				"description": fmt.Sprintf("Tool: %s", tool),
			})
		}
		manifest["tools"] = tools
	}

	compat := map[string]any{}
	if entry.Compatibility != nil && entry.Compatibility.ClaudeDesktop != "" {
		compat["claude_desktop"] = entry.Compatibility.ClaudeDesktop
	}
	if entry.Requirements != nil && len(entry.Requirements.Platforms) > 0 {
		compat["platforms"] = append([]string(nil), entry.Requirements.Platforms...)
	}
	if len(compat) > 0 {
		manifest["compatibility"] = compat
	}

	return manifest, nil
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
