package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
)

// compareCommand re-runs a project's products under alternative spacing
// settings so the user can see what tighter packing would fit.
func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <project>",
		Short: "Compare how many items fit under different spacing settings",
		Long: `Compare how many items fit under different spacing settings.

The placed and unplaced products of the project are laid out again under
the current settings, half padding, a finer search step and no wall
margin. The project file is not changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := c.openDesign(args[0])
			if err != nil {
				return err
			}

			items := compareItems(p)
			if len(items) == 0 {
				c.printInfo("Nothing to compare in %s", args[0])
				return nil
			}

			results := engine.CompareScenarios(engine.BuildDefaultScenarios(p.Settings), p.Room(), items)

			rows := make([][]string, len(results))
			for i, r := range results {
				rows[i] = []string{
					r.Scenario.Name,
					strconv.Itoa(r.Placed),
					strconv.Itoa(r.Dropped),
					fmt.Sprintf("%.1f%%", r.CoveragePercent),
				}
			}
			c.printTitle("%d items in %s", len(items), p.Room())
			c.printTable([]string{"Scenario", "Placed", "Unplaced", "Coverage"}, rows)
			return nil
		},
	}
}

// compareItems lists the project's furniture followed by its unplaced
// products, capped at the layout item limit.
func compareItems(p model.Project) []model.LayoutItem {
	var items []model.LayoutItem
	for _, f := range p.Furniture {
		items = append(items, f.Product.LayoutItem(f.ID))
	}
	for i, u := range p.Unplaced {
		items = append(items, u.Product.LayoutItem(fmt.Sprintf("unplaced-%d", i+1)))
	}
	if limit := p.Settings.MaxItems; limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
