package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomFit/internal/catalog"
	"github.com/piwi3910/RoomFit/internal/design"
	"github.com/piwi3910/RoomFit/internal/importer"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/project"
)

// errNoProducts is returned when neither --items nor the catalog yields
// anything to place.
var errNoProducts = errors.New("no products to lay out")

type layoutOptions struct {
	name     string
	width    float64
	length   float64
	height   float64
	roomDXF  string
	dxfUnits string
	roomType string
	style    string
	budget   float64
	country  string
	catalog  string
	items    []string
	maxItems int
	output   string

	budgetSet bool
}

// layoutCommand creates the layout command that builds a new plan.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out furniture in a room and save the plan",
		Long: `Lay out furniture in a room and save the plan as a .roomfit project.

Products are taken from --items in the given order. Without --items the
catalog recommends products for the room type and style within the budget.
At most --max-items products are placed (8 by default).

With --room-dxf the room size is read from a DXF floor plan instead of
--width and --length.`,
		Example: `  roomfit layout --width 12 --length 14 --type bedroom --style modern -o guest.roomfit
  roomfit layout --width 10 --length 11 --items ikea-malm-bed,ikea-hemnes-nightstand -o small.roomfit
  roomfit layout --room-dxf plan.dxf --dxf-units mm --type office -o office.roomfit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.budgetSet = cmd.Flags().Changed("budget")
			return c.runLayout(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "project name (default: output file name)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "room width in feet")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "room length in feet")
	cmd.Flags().Float64Var(&opts.height, "height", 8, "ceiling height in feet")
	cmd.Flags().StringVar(&opts.roomDXF, "room-dxf", "", "read the room size from a DXF floor plan")
	cmd.Flags().StringVar(&opts.dxfUnits, "dxf-units", "in", "drawing units of --room-dxf: in, ft, mm, cm or m")
	cmd.Flags().StringVarP(&opts.roomType, "type", "t", string(model.RoomBedroom), "room type: "+joinValues(model.RoomTypes))
	cmd.Flags().StringVarP(&opts.style, "style", "s", string(model.StyleModern), "design style: "+joinValues(model.Styles))
	cmd.Flags().Float64Var(&opts.budget, "budget", 0, "budget in dollars, 0 for none (default: from config)")
	cmd.Flags().StringVar(&opts.country, "country", "", "storefront country, recorded with the plan: "+joinValues(model.Countries)+" (default: from config)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "catalog CSV or XLSX file (default: built-in)")
	cmd.Flags().StringSliceVar(&opts.items, "items", nil, "comma-separated product ids to place, in order")
	cmd.Flags().IntVar(&opts.maxItems, "max-items", 0, "maximum number of items to place (default: from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output project file")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsRequiredTogether("width", "length")
	cmd.MarkFlagsMutuallyExclusive("room-dxf", "width")

	return cmd
}

// runLayout builds a design from the options, lays it out and saves it.
func (c *CLI) runLayout(ctx context.Context, opts layoutOptions) error {
	logger := loggerFromContext(ctx)

	room, err := c.layoutRoom(opts)
	if err != nil {
		return err
	}
	if !room.Valid() {
		return fmt.Errorf("room dimensions must be positive, got %s", room)
	}
	roomType, err := parseRoomType(opts.roomType)
	if err != nil {
		return err
	}
	style, err := parseStyle(opts.style)
	if err != nil {
		return err
	}
	var country model.Country
	if opts.country != "" {
		if country, err = parseCountry(opts.country); err != nil {
			return err
		}
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	settings := model.DefaultSettings()
	cfg.ApplyToSettings(&settings)
	if opts.maxItems > 0 {
		settings.MaxItems = opts.maxItems
	}

	d := design.New(settings)
	cfg.ApplyToRoomConfig(&d.Config)
	d.SetType(roomType)
	d.SetStyle(style)
	d.SetRoom(room)
	if opts.budgetSet {
		d.SetBudget(opts.budget)
	}
	if country != "" {
		d.SetCountry(country)
	}

	cat, err := c.loadCatalog(opts.catalog)
	if err != nil {
		return err
	}
	products, err := selectProducts(cat, opts.items, roomType, style, d.Config.Budget)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result := d.Generate(products)
	prog.done(fmt.Sprintf("Laid out %d products", len(products)))
	for _, drop := range result.Dropped {
		logger.Debug("item dropped", "item", drop.ItemID, "reason", drop.Reason)
	}

	output := project.WithExtension(opts.output)
	name := opts.name
	if name == "" {
		name = projectName(output)
	}
	p := d.Project(name)
	if err := c.saveProject(output, p); err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	c.printSuccess("Placed %d of %d items in a %s %s", len(result.Placements), len(result.Placements)+len(result.Dropped), room, roomType.DisplayName())
	for _, u := range p.Unplaced {
		c.printWarning("%s did not fit (%s)", u.Product.Name, u.Reason)
	}
	summary := d.Summary()
	c.printDetail("Total %s, floor covered %.1f%%", money(summary.Total), result.Coverage())
	if summary.OverBudget {
		c.printWarning("Over budget by %s", money(-summary.Remaining))
	}
	c.printFile(output)
	return nil
}

// layoutRoom returns the room from --room-dxf when given, otherwise from
// --width and --length.
func (c *CLI) layoutRoom(opts layoutOptions) (model.Room, error) {
	if opts.roomDXF == "" {
		return model.Room{WidthFt: opts.width, LengthFt: opts.length, HeightFt: opts.height}, nil
	}

	unit, err := importer.ParseUnit(opts.dxfUnits)
	if err != nil {
		return model.Room{}, err
	}
	imported, err := importer.ImportRoomDXF(opts.roomDXF, unit)
	if err != nil {
		return model.Room{}, err
	}
	for _, w := range imported.Warnings {
		c.Logger.Warn(w, "file", opts.roomDXF)
	}
	c.Logger.Debug("room read from drawing", "file", opts.roomDXF, "entities", imported.Entities)

	room := imported.Room
	room.HeightFt = opts.height
	return room, nil
}

// selectProducts resolves explicit product ids, or asks the catalog for a
// recommendation when none are given.
func selectProducts(cat *catalog.Catalog, ids []string, roomType model.RoomType, style model.Style, budget float64) ([]model.Product, error) {
	if len(ids) == 0 {
		products := cat.Recommend(roomType, style, budget)
		if len(products) == 0 {
			return nil, fmt.Errorf("%w: nothing in the catalog matches a %s %s room", errNoProducts, style, roomType)
		}
		return products, nil
	}

	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		p, err := cat.Get(id)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if len(products) == 0 {
		return nil, errNoProducts
	}
	return products, nil
}

// projectName derives a display name from a project file path.
func projectName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
