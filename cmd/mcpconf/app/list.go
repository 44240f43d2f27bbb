package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpconf/mcpconf/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		deployment, _ := cmd.Flags().GetString("deployment")
		category, _ := cmd.Flags().GetString("category")
		detailed, _ := cmd.Flags().GetBool("detailed")

		reg, err := openRegistry()
		if err != nil {
			return err
		}

		ids := reg.ListServers(deployment, category)
		if len(ids) == 0 {
			cmd.Println("No servers found.")
			return nil
		}

		if !detailed {
			cmd.Printf("%-20s %-8s %-10s %s\n", "NAME", "DEPLOY", "TRANSPORT", "DESCRIPTION")
			cmd.Println(strings.Repeat("-", 70))
		}

		for i, id := range ids {
			entry, ok := reg.GetServer(id)
			if !ok {
				continue
			}
			cmd.Println(formatServerInfo(id, entry, detailed))
			if detailed && i < len(ids)-1 {
				cmd.Println()
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("deployment", "", "filter by deployment type (local, remote, hybrid)")
	listCmd.Flags().String("category", "", "filter by category")
	listCmd.Flags().BoolP("detailed", "d", false, "show detailed information")
	rootCmd.AddCommand(listCmd)
}

// formatServerInfo renders one server either as a table row or as a
// detailed multi-line block.
func formatServerInfo(id string, entry *types.Entry, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("%-20s %-8s %-8s %s",
			id, entry.Deployment, entry.Config.Transport, entry.Description)
	}

	lines := []string{
		fmt.Sprintf("Server: %s", id),
		fmt.Sprintf("Name: %s", entry.Name),
		fmt.Sprintf("Description: %s", entry.Description),
		fmt.Sprintf("Version: %s", entry.Version),
		fmt.Sprintf("Deployment: %s", entry.Deployment),
		fmt.Sprintf("Transport: %s", entry.Config.Transport),
	}

	if entry.License != "" {
		lines = append(lines, fmt.Sprintf("License: %s", entry.License))
	}
	if entry.SourceURL != "" {
		lines = append(lines, fmt.Sprintf("Source: %s", entry.SourceURL))
	}

	lines = append(lines, "", "Configuration:")
	if entry.Config.Command != "" {
		lines = append(lines, fmt.Sprintf("  Command: %s", entry.Config.Command))
	}
	if len(entry.Config.Args) > 0 {
		lines = append(lines, fmt.Sprintf("  Args: %s", strings.Join(entry.Config.Args, " ")))
	}
	if entry.Config.URL != "" {
		lines = append(lines, fmt.Sprintf("  URL: %s", entry.Config.URL))
	}
	if len(entry.Config.Env) > 0 {
		lines = append(lines, "  Environment:")
		for _, key := range sortedKeys(entry.Config.Env) {
			lines = append(lines, fmt.Sprintf("    %s: %s", key, entry.Config.Env[key]))
		}
	}

	if entry.Capabilities != nil {
		lines = append(lines, "", "Capabilities:")
		if len(entry.Capabilities.Tools) > 0 {
			lines = append(lines, fmt.Sprintf("  Tools: %s", strings.Join(entry.Capabilities.Tools, ", ")))
		}
		if len(entry.Capabilities.Resources) > 0 {
			lines = append(lines, fmt.Sprintf("  Resources: %s", strings.Join(entry.Capabilities.Resources, ", ")))
		}
		if len(entry.Capabilities.Prompts) > 0 {
			lines = append(lines, fmt.Sprintf("  Prompts: %s", strings.Join(entry.Capabilities.Prompts, ", ")))
		}
	}

	if entry.Requirements != nil {
		lines = append(lines, "", "Requirements:")
		if len(entry.Requirements.Platforms) > 0 {
			lines = append(lines, fmt.Sprintf("  Platforms: %s", strings.Join(entry.Requirements.Platforms, ", ")))
		}
		for _, runtime := range sortedKeys(entry.Requirements.Runtimes) {
			lines = append(lines, fmt.Sprintf("  %s: %s", runtime, entry.Requirements.Runtimes[runtime]))
		}
	}

	return strings.Join(lines, "\n")
}
