package converter

import (
	"strings"
	"unicode"
)

// ImportedDescription marks entries created from a Claude Desktop
// configuration.
const ImportedDescription = "Imported from Claude Desktop configuration"

// FromClaudeDesktop converts a Claude Desktop configuration document
// into raw registry entries keyed by identifier. A document without an
// "mcpServers" key yields an empty result, not an error.
//
// Entries with a command become local stdio servers; entries with a
// url become remote http(s) servers. An entry with neither produces a
// config without a transport, which downstream validation rejects.
func FromClaudeDesktop(doc map[string]any) map[string]map[string]any {
	entries := map[string]map[string]any{}

	servers, ok := doc["mcpServers"].(map[string]any)
	if !ok {
		return entries
	}

	for id, rawServer := range servers {
		serverConfig, _ := rawServer.(map[string]any)

		config := map[string]any{}
		deployment := "remote"

		if command, ok := serverConfig["command"]; ok {
			deployment = "local"
			config["transport"] = "stdio"
			config["command"] = command
			if args, ok := serverConfig["args"]; ok {
				config["args"] = args
			}
			if env, ok := serverConfig["env"]; ok {
				config["env"] = env
			}
		} else if rawURL, ok := serverConfig["url"]; ok {
			url, _ := rawURL.(string)
			transport := "http"
			if strings.HasPrefix(url, "https") {
				transport = "https"
			}
			config["transport"] = transport
			config["url"] = url
			if headers, ok := serverConfig["headers"]; ok {
				config["headers"] = headers
			}
		}

		entries[id] = map[string]any{
			"name":        titleCase(strings.ReplaceAll(id, "-", " ")),
			"description": ImportedDescription,
			"version":     "1.0.0",
			"deployment":  deployment,
			"config":      config,
		}
	}

	return entries
}

// titleCase upper-cases the first rune of each space-separated word
// and lower-cases the rest.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
