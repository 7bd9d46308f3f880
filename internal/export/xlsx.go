package export

import (
	"fmt"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by ExportShoppingList.
const (
	ShoppingSheet  = "Shopping List"
	PlacementSheet = "Placements"
	UnplacedSheet  = "Unplaced"
)

// ExportShoppingList writes an Excel workbook with the shopping list and
// totals on the first sheet and the item positions in feet on the second.
// A third sheet lists items the layout could not fit, when there are any.
func ExportShoppingList(path string, p model.Project) error {
	if len(p.Furniture) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ShoppingSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeShoppingSheet(f, headerStyle, p); err != nil {
		return err
	}
	if err := writePlacementSheet(f, headerStyle, p); err != nil {
		return err
	}
	if len(p.Unplaced) > 0 {
		if err := writeUnplacedSheet(f, headerStyle, p.Unplaced); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeShoppingSheet(f *excelize.File, headerStyle int, p model.Project) error {
	headers := []interface{}{"Item", "Retailer", "Category", "Width (in)", "Depth (in)", "Price", "Currency", "URL"}
	if err := writeHeader(f, ShoppingSheet, headerStyle, headers); err != nil {
		return err
	}

	row := 2
	for _, item := range p.Furniture {
		values := []interface{}{
			item.Product.Name,
			item.Product.Retailer.DisplayName(),
			item.Product.Category.String(),
			item.Product.WidthIn,
			item.Product.DepthIn,
			item.Product.Price,
			item.Product.Currency,
			item.Product.ProductURL,
		}
		if err := writeRow(f, ShoppingSheet, row, values); err != nil {
			return err
		}
		row++
	}

	summary := model.Summarize(p.Furniture, p.Config.Budget)
	row++
	totals := [][]interface{}{{"Total", summary.Total}}
	if summary.HasBudget() {
		totals = append(totals,
			[]interface{}{"Budget", summary.Budget},
			[]interface{}{"Remaining", summary.Remaining})
	}
	for _, values := range totals {
		if err := writeRow(f, ShoppingSheet, row, values); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(ShoppingSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style %s: %w", cell, err)
		}
		row++
	}

	if err := f.SetColWidth(ShoppingSheet, "A", "A", 40); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return f.SetColWidth(ShoppingSheet, "H", "H", 50)
}

func writePlacementSheet(f *excelize.File, headerStyle int, p model.Project) error {
	if _, err := f.NewSheet(PlacementSheet); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", PlacementSheet, err)
	}
	headers := []interface{}{"Item ID", "Item", "X (ft)", "Y (ft)", "Width (ft)", "Depth (ft)", "Rotation"}
	if err := writeHeader(f, PlacementSheet, headerStyle, headers); err != nil {
		return err
	}

	for i, item := range p.Furniture {
		w, d := item.PlacedFootprint(p.Settings)
		values := []interface{}{
			item.ID,
			item.Product.Name,
			roundFeet(p.Settings.UnitsToFeet(item.X)),
			roundFeet(p.Settings.UnitsToFeet(item.Y)),
			roundFeet(p.Settings.UnitsToFeet(w)),
			roundFeet(p.Settings.UnitsToFeet(d)),
			item.Rotation,
		}
		if err := writeRow(f, PlacementSheet, i+2, values); err != nil {
			return err
		}
	}
	return f.SetColWidth(PlacementSheet, "A", "B", 32)
}

func writeUnplacedSheet(f *excelize.File, headerStyle int, unplaced []model.UnplacedItem) error {
	if _, err := f.NewSheet(UnplacedSheet); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", UnplacedSheet, err)
	}
	headers := []interface{}{"Item", "Width (in)", "Depth (in)", "Reason"}
	if err := writeHeader(f, UnplacedSheet, headerStyle, headers); err != nil {
		return err
	}
	for i, u := range unplaced {
		values := []interface{}{u.Product.Name, u.Product.WidthIn, u.Product.DepthIn, reasonLabel(u.Reason)}
		if err := writeRow(f, UnplacedSheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []interface{}) error {
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header of %q: %w", sheet, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	return nil
}
