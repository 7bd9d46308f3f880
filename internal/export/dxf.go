package export

import (
	"fmt"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerRoom      = "ROOM"
	LayerFurniture = "FURNITURE"
	LayerLabels    = "LABELS"
)

// dxfTextHeight is the label height in inches.
const dxfTextHeight = 3.0

// ExportDXF writes the floor plan as a DXF drawing in inches with the
// origin at the bottom-left corner of the room. The room outline and
// every furniture footprint are drawn as four LINE entities each, and
// each footprint carries its product name as TEXT on the LABELS layer.
func ExportDXF(path string, p model.Project) error {
	if len(p.Furniture) == 0 {
		return ErrNothingToExport
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		col  color.ColorNumber
	}{
		{LayerRoom, color.White},
		{LayerFurniture, color.Cyan},
		{LayerLabels, color.Yellow},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.col, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	perInch := p.Settings.UnitsPerInch()
	if perInch <= 0 {
		return fmt.Errorf("invalid layout scale: %v units per foot", p.Settings.UnitsPerFoot)
	}
	roomW, roomL := p.Room().Units(p.Settings)
	roomWIn := roomW / perInch
	roomLIn := roomL / perInch

	if err := d.ChangeLayer(LayerRoom); err != nil {
		return err
	}
	if err := drawRect(d, 0, 0, roomWIn, roomLIn); err != nil {
		return fmt.Errorf("failed to draw room outline: %w", err)
	}

	for _, item := range p.Furniture {
		w, dep := item.PlacedFootprint(p.Settings)
		x := item.X / perInch
		wIn := w / perInch
		dIn := dep / perInch
		// Layout y grows away from the top wall; CAD y grows upward.
		y := roomLIn - item.Y/perInch - dIn

		if err := d.ChangeLayer(LayerFurniture); err != nil {
			return err
		}
		if err := drawRect(d, x, y, wIn, dIn); err != nil {
			return fmt.Errorf("failed to draw %q: %w", item.Product.Name, err)
		}

		if err := d.ChangeLayer(LayerLabels); err != nil {
			return err
		}
		if _, err := d.Text(item.Product.Name, x+1, y+dIn/2, 0, dxfTextHeight); err != nil {
			return fmt.Errorf("failed to label %q: %w", item.Product.Name, err)
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle with its lower-left corner at (x, y).
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i, c := range corners {
		n := corners[(i+1)%len(corners)]
		if _, err := d.Line(c[0], c[1], 0, n[0], n[1], 0); err != nil {
			return err
		}
	}
	return nil
}
