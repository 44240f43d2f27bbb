package app

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcpconf/mcpconf/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [server]",
	Short: "Validate server configurations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useSchema, _ := cmd.Flags().GetBool("schema")
		if useSchema {
			raw, err := registryLoader().LoadRaw()
			if err != nil {
				return err
			}
			if err := schema.ValidateDocument(raw); err != nil {
				return err
			}
			cmd.Println("Registry document conforms to schema.")
			return nil
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			id := args[0]
			errs := reg.ValidateServer(id)
			if len(errs) > 0 {
				printValidationErrors(cmd, id, errs)
				return fmt.Errorf("server '%s' is invalid", id)
			}
			cmd.Printf("Server '%s' is valid.\n", id)
			return nil
		}

		allValid := true
		for _, id := range reg.ListServers("", "") {
			errs := reg.ValidateServer(id)
			if len(errs) > 0 {
				allValid = false
				printValidationErrors(cmd, id, errs)
			}
		}
		if !allValid {
			return fmt.Errorf("registry contains invalid servers")
		}
		cmd.Println("All servers are valid.")
		return nil
	},
}

func printValidationErrors(cmd *cobra.Command, id string, errs schema.ValidationErrors) {
	cmd.Printf("Validation errors for '%s':\n", id)
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		cmd.Printf("  %s: %s\n", field, errs[field])
	}
}

func init() {
	validateCmd.Flags().Bool("schema", false, "validate the whole registry document against the JSON schema")
	rootCmd.AddCommand(validateCmd)
}
