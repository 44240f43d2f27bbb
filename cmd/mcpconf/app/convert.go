package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpconf/mcpconf/pkg/converter"
)

var convertCmd = &cobra.Command{
	Use:   "convert <server> <claude|github|dxt|hosts>",
	Short: "Convert a server to a client configuration format",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, format := args[0], args[1]
		output, _ := cmd.Flags().GetString("output")

		reg, err := openRegistry()
		if err != nil {
			return err
		}

		var result map[string]any
		switch format {
		case "claude", converter.FormatClaudeDesktop:
			result, err = reg.ToClaudeDesktop(id)
		case "github", converter.FormatGithubMCP:
			result, err = reg.ToGithubMCP(id)
		case converter.FormatDXT:
			result, err = reg.ToDXTManifest(id)
		case converter.FormatHosts:
			line, hostsErr := reg.ToHostsLine(id)
			if hostsErr != nil {
				return hostsErr
			}
			cmd.Println(line)
			return nil
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}

		if output != "" {
			if err := writeStructured(output, result); err != nil {
				return err
			}
			cmd.Printf("Configuration written to %s\n", output)
			return nil
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		cmd.Println(string(data))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(convertCmd)
}
