package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// summaryCommand creates the summary command that prints the plan and its cost.
func (c *CLI) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <project>",
		Short: "Show the furniture, positions and cost of a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, p, err := c.openDesign(args[0])
			if err != nil {
				return err
			}

			c.printTitle("%s", p.Name)
			c.printKeyValue("Room", fmt.Sprintf("%s %s", p.Room(), p.Config.Type.DisplayName()))
			if p.Config.Style != "" {
				c.printKeyValue("Style", string(p.Config.Style))
			}
			if p.Config.Country != "" {
				c.printKeyValue("Country", string(p.Config.Country))
			}

			s := d.Settings
			rows := make([][]string, len(d.Furniture))
			for i, item := range d.Furniture {
				rows[i] = []string{
					strconv.Itoa(i + 1),
					item.Product.Name,
					item.Product.Retailer.DisplayName(),
					item.Product.Category.String(),
					fmt.Sprintf("%s, %s", feet(s, item.X), feet(s, item.Y)),
					money(item.Product.Price),
					item.ID,
				}
			}
			c.printTable([]string{"#", "Item", "Retailer", "Category", "Position (ft)", "Price", "ID"}, rows)

			summary := d.Summary()
			for _, rs := range summary.ByRetailer {
				c.printKeyValue(rs.Retailer.DisplayName(), fmt.Sprintf("%s (%d items)", money(rs.Subtotal), rs.Items))
			}
			c.printKeyValue("Total", money(summary.Total))
			if summary.HasBudget() {
				c.printKeyValue("Budget", fmt.Sprintf("%s (%.0f%% used)", money(summary.Budget), summary.PercentUsed))
				if summary.OverBudget {
					c.printWarning("Over budget by %s", money(-summary.Remaining))
				} else {
					c.printKeyValue("Remaining", money(summary.Remaining))
				}
			}
			for _, u := range d.Unplaced {
				c.printWarning("%s did not fit (%s)", u.Product.Name, u.Reason)
			}
			return nil
		},
	}
}

// alternativesCommand lists catalog products that could replace an item.
func (c *CLI) alternativesCommand() *cobra.Command {
	var (
		catalogPath string
		maxPrice    float64
	)

	cmd := &cobra.Command{
		Use:   "alternatives <project> <item>",
		Short: "List products of the same category that could replace an item",
		Long: `List products of the same category that could replace an item.

By default alternatives are limited to the project budget; --max-price
sets a different limit and 0 lists every price.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, p, err := c.openDesign(args[0])
			if err != nil {
				return err
			}
			id, err := resolveItem(d, args[1])
			if err != nil {
				return err
			}
			item, _ := d.Find(id)

			cat, err := c.loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			limit := p.Config.Budget
			if cmd.Flags().Changed("max-price") {
				limit = maxPrice
			}

			alts := cat.Alternatives(item.Product, limit)
			if len(alts) == 0 {
				c.printInfo("No alternatives for %s", item.Product.Name)
				return nil
			}

			c.printTitle("Alternatives for %s (%s)", item.Product.Name, money(item.Product.Price))
			rows := make([][]string, len(alts))
			for i, a := range alts {
				rows[i] = []string{
					a.ID,
					a.Name,
					a.Retailer.DisplayName(),
					fmt.Sprintf("%.0f x %.0f in", a.WidthIn, a.DepthIn),
					money(a.Price),
					fmt.Sprintf("%+.2f", a.Price-item.Product.Price),
				}
			}
			c.printTable([]string{"ID", "Name", "Retailer", "Size", "Price", "Difference"}, rows)
			c.printDetail("roomfit swap %s %s <product-id>", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog CSV or XLSX file (default: built-in)")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "price limit (default: project budget)")
	return cmd
}
