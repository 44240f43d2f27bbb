package converter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcpconf/mcpconf/pkg/types"
)

// ToHostsLine renders an entry as a single hosts-file style line:
//
//	<id> <deployment> <transport> <endpoint> [<options>]
//
// The endpoint is the command (with args joined by ":") for stdio
// entries, the url otherwise, or the literal "unknown". Options carry
// an auth hint, the env key names, and the sandbox flag. Env keys are
// emitted in sorted order so the line is deterministic.
func ToHostsLine(entry *types.Entry, id string) string {
	parts := []string{id, string(entry.Deployment), string(entry.Config.Transport)}

	endpoint := "unknown"
	switch {
	case entry.Config.Transport == types.TransportStdio && entry.Config.Command != "":
		endpoint = entry.Config.Command
		if len(entry.Config.Args) > 0 {
			endpoint = fmt.Sprintf("%s:%s", entry.Config.Command, strings.Join(entry.Config.Args, ":"))
		}
	case entry.Config.URL != "":
		endpoint = entry.Config.URL
	}
	parts = append(parts, endpoint)

	var options []string

	if auth, ok := entry.Config.Headers["Authorization"]; ok {
		if strings.HasPrefix(auth, "Bearer") {
			options = append(options, "auth=bearer")
		} else {
			options = append(options, "auth=key")
		}
	} else if hasCredentialEnv(entry.Config.Env) {
		options = append(options, "auth=key")
	}

	if len(entry.Config.Env) > 0 {
		options = append(options, fmt.Sprintf("env=%s", strings.Join(sortedKeys(entry.Config.Env), ",")))
	}

	if entry.Security != nil && entry.Security.Sandbox {
		options = append(options, "sandbox=true")
	}

	if len(options) > 0 {
		parts = append(parts, strings.Join(options, " "))
	}

	return strings.Join(parts, " ")
}

// hasCredentialEnv reports whether any env key looks like a credential.
func hasCredentialEnv(env map[string]string) bool {
	for key := range env {
		if strings.HasSuffix(key, "KEY") || strings.HasSuffix(key, "TOKEN") {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
