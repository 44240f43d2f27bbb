package app

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcpconf/mcpconf/pkg/registry"
)

var importCmd = &cobra.Command{
	Use:   "import <config>",
	Short: "Import servers from a Claude Desktop configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")

		doc, err := readStructured(args[0])
		if err != nil {
			return err
		}

		loader := registryLoader()
		reg, err := loader.LoadOrInit(registry.WithLogger(logger))
		if err != nil {
			return err
		}

		result := reg.ImportClaudeDesktop(doc)

		skipped := make([]string, 0, len(result.Skipped))
		for id := range result.Skipped {
			skipped = append(skipped, id)
		}
		sort.Strings(skipped)
		for _, id := range skipped {
			cmd.Printf("Warning: skipping server '%s' due to validation errors: %s\n",
				id, result.Skipped[id].Join())
		}

		if save {
			if err := loader.Save(reg); err != nil {
				return err
			}
			cmd.Printf("Imported %d servers and saved to registry.\n", len(result.Added))
			return nil
		}

		cmd.Printf("Imported %d servers (not saved, use --save to persist).\n", len(result.Added))
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("save", false, "save to registry after import")
	rootCmd.AddCommand(importCmd)
}
