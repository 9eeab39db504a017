package cmd

import (
	"encoding/json"
	"fmt"

	"confman/internal/confstore"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newSetCmd creates the "set" command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <keypath> <value>",
		Short: "Update a configuration value and persist it",
		Long: `Set the value at a dotted key path and write the document back to
disk. The key must already exist; set never creates keys. The value is
parsed as a YAML scalar, so numbers, booleans, and null arrive typed.

Examples:
  confman -f dev_config.json set database.port 1111
  confman -f app.yaml set features.beta true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			keys := confstore.SplitKeys(args[0])
			value := parseScalar(args[1])

			if err := app.Store.UpdateValue(keys, value); err != nil {
				return fmt.Errorf("updating %s: %w", args[0], err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"key":   args[0],
					"value": value,
				})
			}

			fmt.Fprintln(app.Out, app.SuccessColor(fmt.Sprintf("Set %s = %v", args[0], value)))
			return nil
		},
	}

	return cmd
}

// parseScalar interprets a CLI argument as a YAML scalar so "1111" becomes
// an int and "true" a bool. Anything that fails to parse stays a string.
func parseScalar(arg string) any {
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}
