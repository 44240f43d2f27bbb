package app

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and their servers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		categories := reg.Categories()
		if len(categories) == 0 {
			cmd.Println("No categories defined.")
			return nil
		}

		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			cmd.Printf("%s: %s\n", name, strings.Join(categories[name], ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
