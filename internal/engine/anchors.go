package engine

import "github.com/piwi3910/RoomFit/internal/model"

// Offsets of the preferred positions from the walls, in layout units.
const (
	wallOffset      = 20 // beds, desks, dressers, nightstands, lamps, shelves
	sofaWallOffset  = 30 // sofas sit a little further off the bottom wall
	chairSideOffset = 40
	chairTopOffset  = 60
	gridOrigin      = 30 // first cell of the fallback grid for other categories
	gridColumns     = 3
	gridRows        = 4
)

// anchorInput is everything an anchor rule may look at.
type anchorInput struct {
	roomW, roomL float64 // room size in layout units
	w, d         float64 // item footprint in layout units
	catIndex     int     // items of the same category seen before this one
	index        int     // position of the item in the input list
}

// anchorFunc returns the unclamped preferred top-left corner for an item.
type anchorFunc func(in anchorInput) (x, y float64)

// anchorRules maps each category to its preferred position.
var anchorRules = map[model.Category]anchorFunc{
	model.CategoryBed:        bedAnchor,
	model.CategorySofa:       sofaAnchor,
	model.CategoryDesk:       deskAnchor,
	model.CategoryDresser:    dresserAnchor,
	model.CategoryNightstand: nightstandAnchor,
	model.CategoryChair:      chairAnchor,
	model.CategoryTable:      centerAnchor,
	model.CategoryRug:        centerAnchor,
	model.CategoryLighting:   lightingAnchor,
	model.CategoryBookshelf:  topRightAnchor,
	model.CategoryStorage:    topRightAnchor,
}

// anchorFor returns the rule for category, or the grid rule when the
// category has none.
func anchorFor(category model.Category) anchorFunc {
	if fn, ok := anchorRules[category]; ok {
		return fn
	}
	return gridAnchor
}

// bedAnchor centres the bed against the top wall.
func bedAnchor(in anchorInput) (float64, float64) {
	return (in.roomW - in.w) / 2, wallOffset
}

// sofaAnchor centres the sofa near the bottom wall.
func sofaAnchor(in anchorInput) (float64, float64) {
	return (in.roomW - in.w) / 2, in.roomL - in.d - sofaWallOffset
}

func deskAnchor(in anchorInput) (float64, float64) {
	return wallOffset, wallOffset
}

// dresserAnchor puts the dresser's top edge at the vertical middle of the left wall.
func dresserAnchor(in anchorInput) (float64, float64) {
	return wallOffset, in.roomL / 2
}

// nightstandAnchor alternates left and right along the top wall, so a pair
// flanks a centred bed.
func nightstandAnchor(in anchorInput) (float64, float64) {
	if in.catIndex%2 == 0 {
		return wallOffset, wallOffset
	}
	return in.roomW - in.w - wallOffset, wallOffset
}

func chairAnchor(in anchorInput) (float64, float64) {
	return in.roomW - in.w - chairSideOffset, chairTopOffset
}

func centerAnchor(in anchorInput) (float64, float64) {
	return (in.roomW - in.w) / 2, (in.roomL - in.d) / 2
}

// lightingAnchor cycles lamps through the corners: top-left, top-right,
// bottom-left, bottom-right.
func lightingAnchor(in anchorInput) (float64, float64) {
	corners := [4][2]float64{
		{wallOffset, wallOffset},
		{in.roomW - in.w - wallOffset, wallOffset},
		{wallOffset, in.roomL - in.d - wallOffset},
		{in.roomW - in.w - wallOffset, in.roomL - in.d - wallOffset},
	}
	c := corners[in.catIndex%len(corners)]
	return c[0], c[1]
}

func topRightAnchor(in anchorInput) (float64, float64) {
	return in.roomW - in.w - wallOffset, wallOffset
}

// gridAnchor spreads uncategorised items over a 3-column grid by their
// position in the input list.
func gridAnchor(in anchorInput) (float64, float64) {
	col := in.index % gridColumns
	row := in.index / gridColumns
	x := gridOrigin + float64(col)*(in.roomW/gridColumns-wallOffset)
	y := gridOrigin + float64(row)*(in.roomL/gridRows)
	return x, y
}
