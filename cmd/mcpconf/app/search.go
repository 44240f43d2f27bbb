package app

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search servers by name, description, or capabilities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		results := reg.SearchServers(args[0])
		if len(results) == 0 {
			cmd.Printf("No servers found matching '%s'.\n", args[0])
			return nil
		}

		cmd.Printf("Found %d servers:\n", len(results))
		cmd.Printf("%-20s %-8s %-10s %s\n", "NAME", "DEPLOY", "TRANSPORT", "DESCRIPTION")
		cmd.Println(strings.Repeat("-", 70))
		for _, id := range results {
			if entry, ok := reg.GetServer(id); ok {
				cmd.Println(formatServerInfo(id, entry, false))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
