package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomFit/internal/catalog"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/project"
)

// catalogCommand creates the catalog command group.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and import product catalogs",
	}

	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogImportCommand())

	return cmd
}

// catalogListCommand creates the "catalog list" subcommand.
func (c *CLI) catalogListCommand() *cobra.Command {
	var (
		catalogPath string
		category    string
		style       string
		roomType    string
		maxPrice    float64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			var st model.Style
			if style != "" {
				if st, err = parseStyle(style); err != nil {
					return err
				}
			}
			var rt model.RoomType
			if roomType != "" {
				if rt, err = parseRoomType(roomType); err != nil {
					return err
				}
			}
			cf := model.ParseCategory(category)

			var rows [][]string
			for _, p := range cat.All() {
				if category != "" && p.Category != cf {
					continue
				}
				if st != "" && !p.HasStyle(st) {
					continue
				}
				if rt != "" && !p.FitsRoom(rt) {
					continue
				}
				if maxPrice > 0 && p.Price > maxPrice {
					continue
				}
				rows = append(rows, []string{
					p.ID,
					p.Name,
					p.Retailer.DisplayName(),
					p.Category.String(),
					fmt.Sprintf("%.0f x %.0f in", p.WidthIn, p.DepthIn),
					money(p.Price),
				})
			}

			if len(rows) == 0 {
				c.printInfo("No products match")
				return nil
			}
			c.printTable([]string{"ID", "Name", "Retailer", "Category", "Size", "Price"}, rows)
			c.printDetail("%d of %d products", len(rows), cat.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog CSV or XLSX file (default: built-in)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	cmd.Flags().StringVarP(&style, "style", "s", "", "only this style")
	cmd.Flags().StringVarP(&roomType, "room", "r", "", "only products for this room type")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "only products at or below this price")
	return cmd
}

// catalogImportCommand creates the "catalog import" subcommand. It checks a
// catalog file and can make it the default for later commands.
func (c *CLI) catalogImportCommand() *cobra.Command {
	var setDefault bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a CSV or XLSX catalog file",
		Long: `Validate a CSV or XLSX catalog file and report row errors and warnings.

Columns are matched by header name (id, retailer, name, category, price,
width, depth, height, styles, room types, ...). With --set-default the file
becomes the catalog used by every command that has no --catalog flag.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := catalog.ImportFile(args[0])

			for _, w := range result.Warnings {
				c.printWarning("%s", w)
			}
			for _, e := range result.Errors {
				c.printWarning("%s", e)
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%s: %d rows with errors", args[0], len(result.Errors))
			}
			if len(result.Products) == 0 {
				return fmt.Errorf("%s: no products", args[0])
			}
			c.printSuccess("%d products in %s", len(result.Products), args[0])

			if setDefault {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				cfg, err := c.loadConfig()
				if err != nil {
					return err
				}
				cfg.CatalogPath = abs
				if err := project.SaveAppConfig(c.configPath(), cfg); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
				c.printDetail("Default catalog set to %s", abs)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&setDefault, "set-default", false, "use this catalog by default")
	return cmd
}
