package cmd

import (
	"encoding/json"
	"fmt"

	"confman/internal/confstore"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newGetCmd creates the "get" command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [keypath]",
		Short: "Print a configuration value or the whole document",
		Long: `Print the value at a dotted key path, or the whole document when no
path is given.

Examples:
  confman -f dev_config.json get
  confman -f dev_config.json get database.port`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return printDocument(app)
			}

			keys := confstore.SplitKeys(args[0])
			value, err := app.Store.Get(keys)
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"key":   args[0],
					"value": value,
				})
			}

			return printValue(app, value)
		},
	}

	return cmd
}

// printDocument renders the whole loaded document.
func printDocument(app *App) error {
	doc, ok := app.Store.Raw()
	if !ok {
		return confstore.ErrNoDocument
	}

	if app.JSON {
		return json.NewEncoder(app.Out).Encode(doc)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	_, err = app.Out.Write(data)
	return err
}

// printValue renders a single value. Scalars print bare; composite values
// print as block YAML.
func printValue(app *App, value any) error {
	switch value.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("rendering value: %w", err)
		}
		_, err = app.Out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(app.Out, value)
		return err
	}
}
