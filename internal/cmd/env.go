package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newEnvCmd creates the "env" command.
func newEnvCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Describe the active environment",
		Long: `Print which environment this store represents. The tag is set with
the global --env flag and has no effect on any other operation.

Examples:
  confman -f dev_config.json env
  confman -f prod_config.json --env production env`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			env := app.Store.Environment()

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"environment": env.String(),
					"description": env.Describe(),
				})
			}

			fmt.Fprintln(app.Out, env.Describe())
			return nil
		},
	}

	return cmd
}
