// Package schema validates raw registry documents and parses them into
// the canonical model
package schema

import (
	"fmt"

	"github.com/mcpconf/mcpconf/pkg/types"
)

// requiredFields are the top-level keys every entry must carry.
var requiredFields = []string{"name", "description", "version", "deployment", "config"}

// ValidateEntry checks one raw entry record against the schema rules
// and returns every violation found, keyed by field path. All rules are
// applied independently; an empty result means the record is acceptable
// for parsing.
//
// When "config" is present but not itself a mapping, the transport
// rules are skipped and no additional error is reported for it; the
// malformed value is caught by ParseEntry instead.
func ValidateEntry(raw map[string]any) ValidationErrors {
	errs := ValidationErrors{}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			errs[field] = fmt.Sprintf("Required field '%s' is missing", field)
		}
	}

	if v, ok := raw["deployment"]; ok {
		s, _ := v.(string)
		if !types.DeploymentType(s).IsValid() {
			errs["deployment"] = fmt.Sprintf("Invalid deployment type: %v", v)
		}
	}

	config, ok := raw["config"].(map[string]any)
	if !ok {
		return errs
	}

	rawTransport, ok := config["transport"]
	if !ok {
		errs["config.transport"] = "Transport type is required in config"
	} else {
		s, _ := rawTransport.(string)
		if !types.TransportType(s).IsValid() {
			errs["config.transport"] = fmt.Sprintf("Invalid transport type: %v", rawTransport)
		}
	}

	transport, _ := rawTransport.(string)
	switch types.TransportType(transport) {
	case types.TransportStdio:
		if _, ok := config["command"]; !ok {
			errs["config.command"] = "Command is required for stdio transport"
		}
	case types.TransportHTTP, types.TransportHTTPS:
		if _, ok := config["url"]; !ok {
			errs["config.url"] = "URL is required for HTTP transport"
		}
	}

	return errs
}
