package schema

import (
	"github.com/mcpconf/mcpconf/pkg/types"
)

// EntryToRaw converts a canonical Entry back into the raw document
// shape. Optional fields and empty collections are omitted entirely so
// the output never carries nulls or empty stubs; the timeout is
// omitted when it still holds the default.
func EntryToRaw(entry *types.Entry) map[string]any {
	config := map[string]any{
		"transport": string(entry.Config.Transport),
	}
	if entry.Config.Command != "" {
		config["command"] = entry.Config.Command
	}
	if len(entry.Config.Args) > 0 {
		config["args"] = toAnySlice(entry.Config.Args)
	}
	if entry.Config.URL != "" {
		config["url"] = entry.Config.URL
	}
	if len(entry.Config.Headers) > 0 {
		config["headers"] = toAnyMap(entry.Config.Headers)
	}
	if len(entry.Config.Env) > 0 {
		config["env"] = toAnyMap(entry.Config.Env)
	}
	if entry.Config.WorkingDir != "" {
		config["working_dir"] = entry.Config.WorkingDir
	}
	if entry.Config.Timeout != 0 && entry.Config.Timeout != types.DefaultTimeout {
		config["timeout"] = entry.Config.Timeout
	}

	raw := map[string]any{
		"name":        entry.Name,
		"description": entry.Description,
		"version":     entry.Version,
		"deployment":  string(entry.Deployment),
		"config":      config,
	}

	if entry.License != "" {
		raw["license"] = entry.License
	}
	if entry.SourceURL != "" {
		raw["source_url"] = entry.SourceURL
	}

	if entry.Capabilities != nil {
		caps := map[string]any{}
		if len(entry.Capabilities.Tools) > 0 {
			caps["tools"] = toAnySlice(entry.Capabilities.Tools)
		}
		if len(entry.Capabilities.Resources) > 0 {
			caps["resources"] = toAnySlice(entry.Capabilities.Resources)
		}
		if len(entry.Capabilities.Prompts) > 0 {
			caps["prompts"] = toAnySlice(entry.Capabilities.Prompts)
		}
		if len(caps) > 0 {
			raw["capabilities"] = caps
		}
	}

	if entry.Requirements != nil {
		reqs := map[string]any{}
		if len(entry.Requirements.Platforms) > 0 {
			reqs["platforms"] = toAnySlice(entry.Requirements.Platforms)
		}
		if len(entry.Requirements.Runtimes) > 0 {
			reqs["runtimes"] = toAnyMap(entry.Requirements.Runtimes)
		}
		if len(entry.Requirements.Dependencies) > 0 {
			reqs["dependencies"] = toAnySlice(entry.Requirements.Dependencies)
		}
		if entry.Requirements.Network != nil {
			reqs["network"] = *entry.Requirements.Network
		}
		if len(reqs) > 0 {
			raw["requirements"] = reqs
		}
	}

	if entry.Security != nil {
		sec := map[string]any{}
		if entry.Security.RequiresAuth {
			sec["requires_auth"] = true
		}
		if len(entry.Security.Permissions) > 0 {
			sec["permissions"] = toAnySlice(entry.Security.Permissions)
		}
		if entry.Security.Sandbox {
			sec["sandbox"] = true
		}
		if len(sec) > 0 {
			raw["security"] = sec
		}
	}

	if entry.Compatibility != nil {
		compat := map[string]any{}
		if entry.Compatibility.ClaudeDesktop != "" {
			compat["claude_desktop"] = entry.Compatibility.ClaudeDesktop
		}
		if entry.Compatibility.Mcpconf != "" {
			compat["mcpconf"] = entry.Compatibility.Mcpconf
		}
		if len(compat) > 0 {
			raw["compatibility"] = compat
		}
	}

	return raw
}

// RegistryToRaw converts a canonical registry into the raw document
// shape suitable for serialization.
func RegistryToRaw(reg *types.Registry) map[string]any {
	servers := make(map[string]any, len(reg.Servers))
	for id, entry := range reg.Servers {
		servers[id] = EntryToRaw(entry)
	}

	raw := map[string]any{
		"version": reg.Version,
		"servers": servers,
	}
	if len(reg.Categories) > 0 {
		categories := make(map[string]any, len(reg.Categories))
		for name, members := range reg.Categories {
			categories[name] = toAnySlice(members)
		}
		raw["categories"] = categories
	}
	return raw
}

func toAnySlice(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func toAnyMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
