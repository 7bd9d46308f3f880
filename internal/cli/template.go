package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/project"
)

// templateCommand creates the template command group. Templates keep a
// room's dimensions, type, style and budget for reuse.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save and reuse room configurations",
	}

	cmd.AddCommand(c.templateSaveCommand())
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateNewCommand())
	cmd.AddCommand(c.templateDeleteCommand())

	return cmd
}

func (c *CLI) loadTemplates() (model.TemplateStore, error) {
	store, err := project.LoadTemplates(c.templatePath())
	if err != nil {
		return model.TemplateStore{}, fmt.Errorf("load templates: %w", err)
	}
	return store, nil
}

func (c *CLI) templateSaveCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save <project> <name>",
		Short: "Save the room configuration of a project as a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.LoadProject(args[0])
			if err != nil {
				return err
			}
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}

			replaced := false
			if existing := store.FindByName(args[1]); existing != nil {
				store.Remove(existing.ID)
				replaced = true
			}
			store.Add(model.NewRoomTemplate(args[1], description, p.Config, p.Settings))
			if err := project.SaveTemplates(c.templatePath(), store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}

			if replaced {
				c.printSuccess("Replaced template %q", args[1])
			} else {
				c.printSuccess("Saved template %q", args[1])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "template description")
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			if len(store.Templates) == 0 {
				c.printInfo("No templates saved")
				return nil
			}

			rows := make([][]string, len(store.Templates))
			for i, t := range store.Templates {
				budget := "none"
				if t.Config.Budget > 0 {
					budget = money(t.Config.Budget)
				}
				rows[i] = []string{
					t.Name,
					t.Config.Room.String(),
					t.Config.Type.DisplayName(),
					string(t.Config.Style),
					budget,
					t.Description,
				}
			}
			c.printTable([]string{"Name", "Room", "Type", "Style", "Budget", "Description"}, rows)
			return nil
		},
	}
}

func (c *CLI) templateNewCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new <template> <project-name>",
		Short: "Start an empty project from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			t := store.FindByName(args[0])
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}

			if output == "" {
				output = args[1]
			}
			output = project.WithExtension(output)
			if err := c.saveProject(output, t.ToProject(args[1])); err != nil {
				return fmt.Errorf("save project: %w", err)
			}
			c.printSuccess("Created %q from template %q", args[1], t.Name)
			c.printFile(output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output project file (default: <project-name>.roomfit)")
	return cmd
}

func (c *CLI) templateDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			t := store.FindByName(args[0])
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			store.Remove(t.ID)
			if err := project.SaveTemplates(c.templatePath(), store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}
			c.printSuccess("Deleted template %q", args[0])
			return nil
		},
	}
}
