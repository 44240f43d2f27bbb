// mcpconf manages a registry of MCP server definitions and converts
// them between client configuration formats.
package main

import (
	"os"

	"github.com/mcpconf/mcpconf/cmd/mcpconf/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
