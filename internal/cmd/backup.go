package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newBackupCmd creates the "backup" command.
func newBackupCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a timestamped backup of the configuration file",
		Long: `Copy the configuration file into a new backup_<timestamp> directory
under the backup root. Opening the file already creates one backup;
this command creates another on demand.

Examples:
  confman -f dev_config.json backup
  confman -f app.yaml --backups /var/backups/app backup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			dir, err := app.Store.Backup()
			if err != nil {
				return fmt.Errorf("creating backup: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"path":   app.Store.Path(),
					"backup": dir,
				})
			}

			fmt.Fprintln(app.Out, app.SuccessColor(fmt.Sprintf("Backup created at %s", dir)))
			return nil
		},
	}

	return cmd
}
