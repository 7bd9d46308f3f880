// Package export writes furnished room plans to PDF, spreadsheet and CAD
// files: a scaled floor plan with a cost summary, printable QR placement
// tags, a shopping list workbook and a DXF floor plan.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/RoomFit/internal/model"
)

// ErrNothingToExport is returned when a project has no furniture.
var ErrNothingToExport = errors.New("no furniture to export")

// itemColor represents an RGB color for a furniture item.
type itemColor struct {
	R, G, B int
}

// itemColors cycles through a fixed palette so adjacent items differ.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF with the floor plan on the first page and the
// cost summary, shopping list and unplaced items on the second.
func ExportPDF(path string, p model.Project) error {
	if len(p.Furniture) == 0 {
		return ErrNothingToExport
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderFloorPlanPage(pdf, p)

	pdf.AddPage()
	renderSummaryPage(pdf, p)

	return pdf.OutputFileAndClose(path)
}

// renderFloorPlanPage draws the room and every furniture item to scale.
func renderFloorPlanPage(pdf *fpdf.Fpdf, p model.Project) {
	room := p.Room()
	roomW, roomL := room.Units(p.Settings)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: %s (%s)", p.Name, p.Config.Type.DisplayName(), room)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	result := model.LayoutResult{RoomWidth: roomW, RoomLength: roomL, Placements: placements(p)}
	stats := fmt.Sprintf("Items: %d | Unplaced: %d | Floor covered: %.1f%% | Total: $%.2f",
		len(p.Furniture), len(p.Unplaced), result.Coverage(), model.Summarize(p.Furniture, 0).Total)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/roomW, drawHeight/roomL)
	canvasW := roomW * scale
	canvasH := roomL * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Floor
	pdf.SetFillColor(245, 240, 230)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.8)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	drawFootGrid(pdf, p.Settings.UnitsPerFoot*scale, offsetX, offsetY, canvasW, canvasH)

	for i, item := range p.Furniture {
		col := itemColors[i%len(itemColors)]
		w, d := item.PlacedFootprint(p.Settings)
		iw := w * scale
		ih := d * scale
		ix := offsetX + item.X*scale
		iy := offsetY + item.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(ix, iy, iw, ih, "FD")

		if iw > 15 && ih > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(iw, ih))
			pdf.SetTextColor(0, 0, 0)

			label := item.Product.Name
			dims := fmt.Sprintf("%.0f\" x %.0f\"", item.Product.WidthIn, item.Product.DepthIn)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < iw-2 {
				pdf.SetXY(ix+(iw-labelW)/2, iy+ih/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ih > 14 && dimsW < iw-2 {
				pdf.SetXY(ix+(iw-dimsW)/2, iy+ih/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, room, offsetX, offsetY, canvasW, canvasH)
	drawItemsLegend(pdf, p.Furniture, offsetY+canvasH+5)
}

// drawFootGrid draws light lines every foot across the floor.
func drawFootGrid(pdf *fpdf.Fpdf, step, offsetX, offsetY, canvasW, canvasH float64) {
	if step <= 0 {
		return
	}
	pdf.SetDrawColor(220, 215, 205)
	pdf.SetLineWidth(0.1)
	for x := step; x < canvasW; x += step {
		pdf.Line(offsetX+x, offsetY, offsetX+x, offsetY+canvasH)
	}
	for y := step; y < canvasH; y += step {
		pdf.Line(offsetX, offsetY+y, offsetX+canvasW, offsetY+y)
	}
}

// drawDimensionAnnotations adds width and length labels outside the room rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, room model.Room, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.1f ft", room.WidthFt)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	lengthLabel := fmt.Sprintf("%.1f ft", room.LengthFt)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX-3-lLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend renders a compact legend of the furniture below the plan.
func drawItemsLegend(pdf *fpdf.Fpdf, items []model.FurnitureItem, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Furniture:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, item := range items {
		col := itemColors[i%len(itemColors)]
		label := fmt.Sprintf("%s ($%.0f)", item.Product.Name, item.Product.Price)
		if item.Rotation != 0 {
			label += fmt.Sprintf(" rot %.0f", item.Rotation)
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the cost summary, the shopping list and any
// items the layout could not fit.
func renderSummaryPage(pdf *fpdf.Fpdf, p model.Project) {
	summary := model.Summarize(p.Furniture, p.Config.Budget)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cost Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Items", fmt.Sprintf("%d", summary.ItemCount)},
		{"Total", fmt.Sprintf("$%.2f", summary.Total)},
		{"Budget", budgetLabel(summary)},
	}
	if summary.HasBudget() {
		summaryItems = append(summaryItems,
			struct {
				label string
				value string
			}{"Remaining", fmt.Sprintf("$%.2f (%.0f%% used)", summary.Remaining, summary.PercentUsed)})
	}
	for _, rs := range summary.ByRetailer {
		summaryItems = append(summaryItems,
			struct {
				label string
				value string
			}{rs.Retailer.DisplayName(), fmt.Sprintf("$%.2f (%d items)", rs.Subtotal, rs.Items)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if summary.OverBudget {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(120, 6, fmt.Sprintf("Over budget by $%.2f", -summary.Remaining), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Shopping List", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{85, 30, 30, 40, 45, 35}
	headers := []string{"Item", "Retailer", "Category", "Size (in)", "Position (ft)", "Price"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, item := range p.Furniture {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		rowData := []string{
			item.Product.Name,
			item.Product.Retailer.DisplayName(),
			item.Product.Category.String(),
			fmt.Sprintf("%.0f x %.0f", item.Product.WidthIn, item.Product.DepthIn),
			fmt.Sprintf("%.1f, %.1f", p.Settings.UnitsToFeet(item.X), p.Settings.UnitsToFeet(item.Y)),
			fmt.Sprintf("$%.2f", item.Product.Price),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(p.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Items that did not fit", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, u := range p.Unplaced {
			if y > pageHeight-marginBottom-5 {
				pdf.AddPage()
				y = marginTop
			}
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %.0f x %.0f in (%s)", u.Product.Name, u.Product.WidthIn, u.Product.DepthIn, reasonLabel(u.Reason))
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RoomFit - Furniture Layout Planner", "", 0, "C", false, 0, "")
}

// placements converts the furniture positions back into layout placements.
func placements(p model.Project) []model.Placement {
	out := make([]model.Placement, len(p.Furniture))
	for i, item := range p.Furniture {
		w, d := item.PlacedFootprint(p.Settings)
		out[i] = model.Placement{ItemID: item.ID, X: item.X, Y: item.Y, Width: w, Depth: d, Rotation: item.Rotation}
	}
	return out
}

func budgetLabel(s model.CostSummary) string {
	if !s.HasBudget() {
		return "No budget"
	}
	return fmt.Sprintf("$%.2f", s.Budget)
}

func reasonLabel(r model.DropReason) string {
	switch r {
	case model.DropTooLarge:
		return "too large for the room"
	case model.DropNoSpace:
		return "no free space left"
	default:
		return string(r)
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
