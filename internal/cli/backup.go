package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomFit/internal/project"
)

// backupCommand creates the backup command group for the app config and
// room templates.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up or restore settings and templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write settings and templates to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], cfg, store); err != nil {
				return err
			}
			c.printSuccess("Backed up settings and %d templates", len(store.Templates))
			c.printFile(args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Restore settings and templates from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(c.configPath(), backup.Config); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if err := project.SaveTemplates(c.templatePath(), backup.Templates); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}
			loggerFromContext(cmd.Context()).Debug("restored backup", "version", backup.Version, "created", backup.CreatedAt)
			c.printSuccess("Restored settings and %d templates", len(backup.Templates.Templates))
			return nil
		},
	})

	return cmd
}
