package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomFit/internal/design"
	"github.com/piwi3910/RoomFit/internal/model"
)

// editFunc changes one item of an open design and returns a message for
// the user.
type editFunc func(d *design.Design, itemID string) (string, error)

// runEdit opens the project, applies fn to the referenced item and saves
// the project back in place.
func (c *CLI) runEdit(cmd *cobra.Command, path, ref string, fn editFunc) error {
	logger := loggerFromContext(cmd.Context())

	d, p, err := c.openDesign(path)
	if err != nil {
		return err
	}
	itemID, err := resolveItem(d, ref)
	if err != nil {
		return err
	}

	msg, err := fn(d, itemID)
	if err != nil {
		return err
	}
	if err := c.saveProject(path, d.Project(p.Name)); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	logger.Debug("project updated", "path", path, "item", itemID)

	c.printSuccess("%s", msg)
	return nil
}

// moveCommand creates the move command. Positions are given in feet from
// the top-left corner of the room.
func (c *CLI) moveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <project> <item> <x-ft> <y-ft>",
		Short: "Move an item to a position in feet from the top-left corner",
		Long: `Move an item to a position in feet from the top-left corner of the room.

The item is kept inside the room walls; overlapping other items is allowed
but reported. <item> is a furniture id or its number in 'roomfit summary'.
Negative positions are accepted and clamped to the wall, so flags must come
before the arguments.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			xFt, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[2], err)
			}
			yFt, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[3], err)
			}
			return c.runEdit(cmd, args[0], args[1], func(d *design.Design, id string) (string, error) {
				s := d.Settings
				if err := d.Move(id, xFt*s.UnitsPerFoot, yFt*s.UnitsPerFoot); err != nil {
					return "", err
				}
				item, _ := d.Find(id)
				for _, other := range overlapping(d, *item) {
					c.printWarning("%s now overlaps %s", item.Product.Name, other.Product.Name)
				}
				return fmt.Sprintf("Moved %s to (%s ft, %s ft)", item.Product.Name, feet(s, item.X), feet(s, item.Y)), nil
			})
		},
	}
	// Stop flag parsing at the first argument so "-1" is a coordinate.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// rotateCommand creates the rotate command.
func (c *CLI) rotateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate <project> <item> <degrees>",
		Short: "Set the rotation of an item in degrees",
		Long: `Set the rotation of an item in degrees.

Angles are normalized to 0-360, so -90 is stored as 270. Quarter turns swap
the item's width and depth in the overlap check and in every export.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid angle %q: %w", args[2], err)
			}
			return c.runEdit(cmd, args[0], args[1], func(d *design.Design, id string) (string, error) {
				if err := d.Rotate(id, deg); err != nil {
					return "", err
				}
				item, _ := d.Find(id)
				for _, other := range overlapping(d, *item) {
					c.printWarning("%s now overlaps %s", item.Product.Name, other.Product.Name)
				}
				return fmt.Sprintf("Rotated %s to %.0f degrees", item.Product.Name, item.Rotation), nil
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// swapCommand creates the swap command that replaces an item's product.
func (c *CLI) swapCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "swap <project> <item> <product-id>",
		Short: "Replace an item with another product, keeping its position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			product, err := cat.Get(args[2])
			if err != nil {
				return err
			}
			return c.runEdit(cmd, args[0], args[1], func(d *design.Design, id string) (string, error) {
				item, _ := d.Find(id)
				old := item.Product
				newID, err := d.Swap(id, product)
				if err != nil {
					return "", err
				}
				if product.Category != old.Category {
					c.printWarning("%s is a %s, replacing a %s", product.Name, product.Category, old.Category)
				}
				return fmt.Sprintf("Swapped %s for %s (%s)", old.Name, product.Name, newID), nil
			})
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog CSV or XLSX file (default: built-in)")
	return cmd
}

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <project> <item>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the plan",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd, args[0], args[1], func(d *design.Design, id string) (string, error) {
				item, _ := d.Find(id)
				name := item.Product.Name
				if err := d.Remove(id); err != nil {
					return "", err
				}
				return fmt.Sprintf("Removed %s, %d items left", name, len(d.Furniture)), nil
			})
		},
	}
}

// overlapping returns the other items whose floor area intersects item's.
// Rotated items are measured the way the exports draw them.
func overlapping(d *design.Design, item model.FurnitureItem) []model.FurnitureItem {
	box := item.Box(d.Settings)
	var out []model.FurnitureItem
	for _, other := range d.Furniture {
		if other.ID != item.ID && box.Overlaps(other.Box(d.Settings), 0) {
			out = append(out, other)
		}
	}
	return out
}
