// Package engine computes collision-free 2D floor plans for a list of
// furniture items. Each item gets a category-driven preferred anchor; when
// the anchor is taken the engine searches outward in square rings and
// finally scans the whole room on a grid. Items that still do not fit are
// dropped and reported with a reason.
package engine

import (
	"github.com/piwi3910/RoomFit/internal/model"
)

// Engine runs the furniture layout algorithm. It holds no state between
// calls and is safe for concurrent use.
type Engine struct {
	Settings model.LayoutSettings
}

// New returns an Engine using settings. Non-positive scale or step values
// fall back to the defaults so the search always terminates.
func New(settings model.LayoutSettings) *Engine {
	defaults := model.DefaultSettings()
	if settings.UnitsPerFoot <= 0 {
		settings.UnitsPerFoot = defaults.UnitsPerFoot
	}
	if settings.SearchStep <= 0 {
		settings.SearchStep = defaults.SearchStep
	}
	if settings.Padding < 0 {
		settings.Padding = 0
	}
	if settings.Margin < 0 {
		settings.Margin = 0
	}
	return &Engine{Settings: settings}
}

// Layout places items in the room in input order. The returned placements
// keep that order; items that cannot be placed are listed in Dropped.
func (e *Engine) Layout(room model.Room, items []model.LayoutItem) model.LayoutResult {
	roomW, roomL := room.Units(e.Settings)
	r := newRun(e.Settings, roomW, roomL)

	result := model.LayoutResult{
		RoomWidth:  roomW,
		RoomLength: roomL,
		Placements: make([]model.Placement, 0, len(items)),
	}

	for i, item := range items {
		w := e.Settings.InchesToUnits(item.WidthIn)
		d := e.Settings.InchesToUnits(item.DepthIn)

		ax, ay := r.anchor(item.Category, i, w, d)

		if !r.fits(w, d) {
			result.Dropped = append(result.Dropped, model.Drop{ItemID: item.ID, Index: i, Reason: model.DropTooLarge})
			continue
		}

		x, y, ok := r.findPosition(ax, ay, w, d)
		if !ok {
			result.Dropped = append(result.Dropped, model.Drop{ItemID: item.ID, Index: i, Reason: model.DropNoSpace})
			continue
		}

		r.placed = append(r.placed, model.Box{X: x, Y: y, Width: w, Height: d})
		result.Placements = append(result.Placements, model.Placement{
			ItemID: item.ID,
			X:      x,
			Y:      y,
			Width:  w,
			Depth:  d,
		})
	}

	return result
}

// run is the state of a single Layout call: the boxes committed so far and
// how many items of each category have been seen. It is append-only.
type run struct {
	settings      model.LayoutSettings
	roomW, roomL  float64
	placed        []model.Box
	categoryCount map[model.Category]int
}

func newRun(settings model.LayoutSettings, roomW, roomL float64) *run {
	return &run{
		settings:      settings,
		roomW:         roomW,
		roomL:         roomL,
		categoryCount: make(map[model.Category]int),
	}
}

// anchor computes the clamped preferred position for the index-th input
// item and bumps the category counter. The counter advances even when the
// item is later dropped.
func (r *run) anchor(category model.Category, index int, w, d float64) (float64, float64) {
	catIndex := r.categoryCount[category]
	r.categoryCount[category] = catIndex + 1

	x, y := anchorFor(category)(anchorInput{
		roomW:    r.roomW,
		roomL:    r.roomL,
		w:        w,
		d:        d,
		catIndex: catIndex,
		index:    index,
	})
	return r.clampX(x, w), r.clampY(y, d)
}

// fits reports whether a w x d footprint fits inside the room margins at all.
func (r *run) fits(w, d float64) bool {
	inset := 2 * r.settings.Margin
	return w <= r.roomW-inset && d <= r.roomL-inset
}

func (r *run) clampX(x, w float64) float64 {
	return clamp(x, r.settings.Margin, r.roomW-w-r.settings.Margin)
}

func (r *run) clampY(y, d float64) float64 {
	return clamp(y, r.settings.Margin, r.roomL-d-r.settings.Margin)
}

// clamp bounds v to [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// overlaps reports whether b comes within padding of any placed box.
func (r *run) overlaps(b model.Box) bool {
	for _, p := range r.placed {
		if b.Overlaps(p, r.settings.Padding) {
			return true
		}
	}
	return false
}
