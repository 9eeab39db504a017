package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newSaveCmd creates the "save" command.
func newSaveCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Re-save the current document to disk",
		Long: `Serialize the loaded document back to its file. This rewrites the
file in canonical form (4-space-indented JSON or block-style YAML)
without changing any values.

Examples:
  confman -f dev_config.json save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.Store.Save(); err != nil {
				return fmt.Errorf("saving configuration: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"path": app.Store.Path(),
				})
			}

			fmt.Fprintln(app.Out, app.SuccessColor(fmt.Sprintf("Saved %s", app.Store.Path())))
			return nil
		},
	}

	return cmd
}
