package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the "validate" command.
func newValidateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the configuration document is a mapping",
		Long: `Validate the loaded configuration. The document is valid when it was
loaded successfully and its top-level value is a mapping.

Exits nonzero when the configuration is missing or not a mapping.

Examples:
  confman -f dev_config.json validate
  confman -f app.yaml validate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			valid := app.Store.Validate()

			if app.JSON {
				if err := json.NewEncoder(app.Out).Encode(map[string]any{
					"path":  app.Store.Path(),
					"valid": valid,
				}); err != nil {
					return err
				}
				if !valid {
					return fmt.Errorf("configuration is not valid")
				}
				return nil
			}

			if !valid {
				return fmt.Errorf("configuration is not valid: %s", app.Store.Path())
			}
			fmt.Fprintln(app.Out, app.SuccessColor("Configuration file is valid."))
			return nil
		},
	}

	return cmd
}
