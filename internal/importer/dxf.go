// Package importer reads room dimensions from CAD floor plans.
package importer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ErrNoGeometry is returned when a drawing has no lines or polylines.
var ErrNoGeometry = errors.New("no lines or polylines in drawing")

// Unit is the length of one drawing unit in feet.
type Unit float64

const (
	Inches      Unit = 1.0 / 12
	Feet        Unit = 1
	Millimeters Unit = 1 / 304.8
	Centimeters Unit = 1 / 30.48
	Meters      Unit = 1 / 0.3048
)

// ParseUnit accepts in, ft, mm, cm and m.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inch", "inches":
		return Inches, nil
	case "ft", "feet", "foot":
		return Feet, nil
	case "mm":
		return Millimeters, nil
	case "cm":
		return Centimeters, nil
	case "m":
		return Meters, nil
	default:
		return 0, fmt.Errorf("unknown drawing unit %q (want in, ft, mm, cm or m)", s)
	}
}

// RoomImport is the outcome of reading a floor plan.
type RoomImport struct {
	Room     model.Room
	Entities int      // lines and polylines that contributed to the outline
	Warnings []string // entities that were skipped
}

// ImportRoomDXF reads a DXF floor plan and returns the room as the bounding
// box of every LINE and LWPOLYLINE in the drawing. Furniture drawn inside
// the walls does not change the result.
func ImportRoomDXF(path string, unit Unit) (RoomImport, error) {
	var result RoomImport
	if unit <= 0 {
		return result, fmt.Errorf("invalid drawing unit %v", float64(unit))
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		return result, fmt.Errorf("cannot open DXF file: %w", err)
	}

	box := newBounds()
	skipped := make(map[string]int)
	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.Line:
			box.add(e.Start[0], e.Start[1])
			box.add(e.End[0], e.End[1])
			result.Entities++

		case *entity.LwPolyline:
			if len(e.Vertices) < 2 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			for _, v := range e.Vertices {
				box.add(v[0], v[1])
			}
			result.Entities++

		default:
			skipped[fmt.Sprintf("%T", ent)]++
		}
	}
	for kind, n := range skipped {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d %s entities", n, strings.TrimPrefix(kind, "*entity.")))
	}

	if result.Entities == 0 {
		return result, fmt.Errorf("%s: %w", path, ErrNoGeometry)
	}

	width := (box.maxX - box.minX) * float64(unit)
	length := (box.maxY - box.minY) * float64(unit)
	if width < 0.01 || length < 0.01 {
		return result, fmt.Errorf("%s: degenerate outline (%.2f x %.2f ft)", path, width, length)
	}

	result.Room = model.Room{WidthFt: roundFeet(width), LengthFt: roundFeet(length)}
	return result, nil
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func newBounds() bounds {
	return bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

func (b *bounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

// roundFeet drops floating point noise from unit conversion.
func roundFeet(v float64) float64 {
	return math.Round(v*1000) / 1000
}
