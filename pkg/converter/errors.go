package converter

import (
	"fmt"

	"github.com/mcpconf/mcpconf/pkg/types"
)

// Format names used in errors and by the CLI.
const (
	FormatClaudeDesktop = "claude-desktop"
	FormatGithubMCP     = "github-mcp"
	FormatDXT           = "dxt"
	FormatHosts         = "hosts"
)

// UnsupportedTransportError indicates an entry's transport is
// incompatible with the requested output format. The message is the
// same for every mismatch, websocket included.
type UnsupportedTransportError struct {
	Format    string
	Transport types.TransportType
}

func (e *UnsupportedTransportError) Error() string {
	return fmt.Sprintf("%s format does not support %s transport", e.Format, e.Transport)
}
