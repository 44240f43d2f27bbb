package schema

import (
	"fmt"
	"sort"

	"github.com/mcpconf/mcpconf/pkg/types"
)

// ParseEntry builds a canonical Entry from a raw record. It validates
// the record itself and fails with an *EntryValidationError on any
// violation, so malformed input can never produce a partially
// populated Entry.
func ParseEntry(raw map[string]any) (*types.Entry, error) {
	if errs := ValidateEntry(raw); len(errs) > 0 {
		return nil, &EntryValidationError{Errors: errs}
	}

	config, ok := raw["config"].(map[string]any)
	if !ok {
		// Present but not record-shaped; ValidateEntry tolerates this,
		// parsing cannot.
		return nil, &EntryValidationError{Errors: ValidationErrors{
			"config": "Config must be a mapping",
		}}
	}

	entry := &types.Entry{
		Name:        stringField(raw, "name"),
		Description: stringField(raw, "description"),
		Version:     stringField(raw, "version"),
		Deployment:  types.DeploymentType(stringField(raw, "deployment")),
		Config: &types.Config{
			Transport:  types.TransportType(stringField(config, "transport")),
			Command:    stringField(config, "command"),
			Args:       stringSliceField(config, "args"),
			URL:        stringField(config, "url"),
			Headers:    stringMapField(config, "headers"),
			Env:        stringMapField(config, "env"),
			WorkingDir: stringField(config, "working_dir"),
			Timeout:    intField(config, "timeout", types.DefaultTimeout),
		},
		License:   stringField(raw, "license"),
		SourceURL: stringField(raw, "source_url"),
	}

	if caps, ok := raw["capabilities"].(map[string]any); ok {
		entry.Capabilities = &types.Capabilities{
			Tools:     stringSliceField(caps, "tools"),
			Resources: stringSliceField(caps, "resources"),
			Prompts:   stringSliceField(caps, "prompts"),
		}
	}

	if reqs, ok := raw["requirements"].(map[string]any); ok {
		entry.Requirements = &types.Requirements{
			Platforms:    stringSliceField(reqs, "platforms"),
			Runtimes:     stringMapField(reqs, "runtimes"),
			Dependencies: stringSliceField(reqs, "dependencies"),
			Network:      boolPtrField(reqs, "network"),
		}
	}

	if sec, ok := raw["security"].(map[string]any); ok {
		entry.Security = &types.Security{
			RequiresAuth: boolField(sec, "requires_auth"),
			Permissions:  stringSliceField(sec, "permissions"),
			Sandbox:      boolField(sec, "sandbox"),
		}
	}

	if compat, ok := raw["compatibility"].(map[string]any); ok {
		entry.Compatibility = &types.Compatibility{
			ClaudeDesktop: stringField(compat, "claude_desktop"),
			Mcpconf:       stringField(compat, "mcpconf"),
		}
	}

	return entry, nil
}

// ParseRegistry parses a whole raw registry document. The parse is
// all-or-nothing: the first entry that fails validation aborts it with
// an *EntryValidationError naming that entry. Entries are checked in
// sorted identifier order so the failure is deterministic. Categories
// are copied verbatim without referential checks.
func ParseRegistry(raw map[string]any) (*types.Registry, error) {
	version, ok := raw["version"]
	if !ok {
		return nil, &MissingFieldError{Field: "version"}
	}

	rawServers, ok := raw["servers"]
	if !ok {
		return nil, &MissingFieldError{Field: "servers"}
	}

	serverDocs, ok := rawServers.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("registry servers section must be a mapping")
	}

	ids := make([]string, 0, len(serverDocs))
	for id := range serverDocs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	servers := make(map[string]*types.Entry, len(serverDocs))
	for _, id := range ids {
		entryDoc, ok := serverDocs[id].(map[string]any)
		if !ok {
			return nil, &EntryValidationError{ID: id, Errors: ValidationErrors{
				"entry": "Entry must be a mapping",
			}}
		}
		entry, err := ParseEntry(entryDoc)
		if err != nil {
			if verr, isValidation := err.(*EntryValidationError); isValidation {
				verr.ID = id
			}
			return nil, err
		}
		servers[id] = entry
	}

	return &types.Registry{
		Version:    fmt.Sprintf("%v", version),
		Servers:    servers,
		Categories: categoriesField(raw),
	}, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringSliceField(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}

func stringMapField(m map[string]any, key string) map[string]string {
	entries, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

// intField tolerates the numeric types the standard decoders produce:
// yaml.v3 yields int, encoding/json yields float64.
func intField(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func boolPtrField(m map[string]any, key string) *bool {
	b, ok := m[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

func categoriesField(raw map[string]any) map[string][]string {
	rawCategories, ok := raw["categories"].(map[string]any)
	if !ok {
		return nil
	}
	categories := make(map[string][]string, len(rawCategories))
	for name, members := range rawCategories {
		categories[name] = toStringSlice(members)
	}
	return categories
}

func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		// Already decoded as []string, e.g. when built in memory
		if ss, ok := v.([]string); ok {
			return ss
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}
