package app

import (
	"github.com/spf13/cobra"

	"github.com/mcpconf/mcpconf/pkg/registry"
)

var showCmd = &cobra.Command{
	Use:   "show <server>",
	Short: "Show server details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		entry, ok := reg.GetServer(args[0])
		if !ok {
			return &registry.NotFoundError{ID: args[0]}
		}

		cmd.Println(formatServerInfo(args[0], entry, true))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
