package engine

import (
	"math"

	"github.com/piwi3910/RoomFit/internal/model"
)

// offset is a ring cell measured in search steps from the anchor.
type offset struct {
	dx, dy int
}

// ringOffsets returns the cells on the perimeter of the square ring k steps
// from the centre, ordered by dx then dy. Ring 0 is the centre itself.
//
// Only the two outer columns contribute a full column of cells; every
// other column contributes its top and bottom cell.
func ringOffsets(k int) []offset {
	if k <= 0 {
		return []offset{{0, 0}}
	}
	cells := make([]offset, 0, 8*k)
	for dx := -k; dx <= k; dx++ {
		if dx == -k || dx == k {
			for dy := -k; dy <= k; dy++ {
				cells = append(cells, offset{dx, dy})
			}
			continue
		}
		cells = append(cells, offset{dx, -k}, offset{dx, k})
	}
	return cells
}

// findPosition tries the anchor, then expanding rings around it, then a
// full grid scan. It returns false when every candidate overlaps.
func (r *run) findPosition(ax, ay, w, d float64) (float64, float64, bool) {
	if !r.overlaps(model.Box{X: ax, Y: ay, Width: w, Height: d}) {
		return ax, ay, true
	}
	if x, y, ok := r.ringSearch(ax, ay, w, d); ok {
		return x, y, true
	}
	return r.gridScan(w, d)
}

// ringSearch walks square rings around the anchor, one search step wider
// each time, while the ring radius stays below the longer room side.
// Candidates are clamped into the room before testing.
func (r *run) ringSearch(ax, ay, w, d float64) (float64, float64, bool) {
	step := r.settings.SearchStep
	limit := math.Max(r.roomW, r.roomL)

	for k := 1; float64(k)*step < limit; k++ {
		for _, o := range ringOffsets(k) {
			x := r.clampX(ax+float64(o.dx)*step, w)
			y := r.clampY(ay+float64(o.dy)*step, d)
			if !r.overlaps(model.Box{X: x, Y: y, Width: w, Height: d}) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// gridScan tries every grid cell whose origin lies strictly inside the
// usable range, column by column with y innermost.
func (r *run) gridScan(w, d float64) (float64, float64, bool) {
	step := r.settings.SearchStep
	margin := r.settings.Margin
	maxX := r.roomW - w - margin
	maxY := r.roomL - d - margin

	for i := 0; margin+float64(i)*step < maxX; i++ {
		x := margin + float64(i)*step
		for j := 0; margin+float64(j)*step < maxY; j++ {
			y := margin + float64(j)*step
			if !r.overlaps(model.Box{X: x, Y: y, Width: w, Height: d}) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
