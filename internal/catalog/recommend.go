package catalog

import (
	"math"
	"sort"

	"github.com/piwi3910/RoomFit/internal/model"
)

// essentialCategories lists, per room type, the categories a furnished
// room should have one of, in picking order.
var essentialCategories = map[model.RoomType][]model.Category{
	model.RoomBedroom: {model.CategoryBed, model.CategoryNightstand, model.CategoryDresser, model.CategoryLighting, model.CategoryRug, model.CategoryChair},
	model.RoomLiving:  {model.CategorySofa, model.CategoryTable, model.CategoryChair, model.CategoryLighting, model.CategoryRug, model.CategoryStorage, model.CategoryBookshelf},
	model.RoomOffice:  {model.CategoryDesk, model.CategoryChair, model.CategoryBookshelf, model.CategoryLighting, model.CategoryStorage},
	model.RoomDen:     {model.CategorySofa, model.CategoryChair, model.CategoryTable, model.CategoryLighting, model.CategoryRug, model.CategoryStorage},
	model.RoomDining:  {model.CategoryTable, model.CategoryChair, model.CategoryLighting, model.CategoryStorage, model.CategoryRug},
	model.RoomKitchen: {model.CategoryTable, model.CategoryChair, model.CategoryLighting, model.CategoryStorage},
}

var fallbackCategories = []model.Category{model.CategorySofa, model.CategoryChair, model.CategoryTable, model.CategoryLighting}

// targetSpend is the share of the budget the second pass tries to reach.
const targetSpend = 0.6

// EssentialCategories returns the categories Recommend fills first for roomType.
func EssentialCategories(roomType model.RoomType) []model.Category {
	if cats, ok := essentialCategories[roomType]; ok {
		return cats
	}
	return fallbackCategories
}

// Recommend picks products for a room of the given type and style within
// budget (zero means no budget). It first takes the most expensive
// affordable product of each essential category, then adds the most
// expensive remaining products until 60% of the budget is spent. Bedrooms
// with a single nightstand get a second one when one is affordable.
func (c *Catalog) Recommend(roomType model.RoomType, style model.Style, budget float64) []model.Product {
	matching := c.filter(func(p model.Product) bool {
		return p.FitsRoom(roomType) && p.HasStyle(style)
	})
	byPrice := append([]model.Product(nil), matching...)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].Price > byPrice[j].Price
	})

	var selected []model.Product
	used := make(map[string]bool)
	var spent float64
	remaining := func() float64 {
		if budget <= 0 {
			return math.Inf(1)
		}
		return budget - spent
	}
	take := func(p model.Product) {
		selected = append(selected, p)
		used[p.ID] = true
		spent += p.Price
	}

	for _, category := range EssentialCategories(roomType) {
		for _, p := range byPrice {
			if p.Category == category && !used[p.ID] && p.Price <= remaining() {
				take(p)
				break
			}
		}
	}

	target := math.Inf(1)
	if budget > 0 {
		target = budget * targetSpend
	}
	for _, p := range byPrice {
		if spent >= target {
			break
		}
		if !used[p.ID] && p.Price <= remaining() {
			take(p)
		}
	}

	if roomType == model.RoomBedroom && countCategory(selected, model.CategoryNightstand) == 1 {
		for _, p := range matching {
			if p.Category == model.CategoryNightstand && !used[p.ID] && p.Price <= remaining() {
				take(p)
				break
			}
		}
	}

	return selected
}

func countCategory(products []model.Product, category model.Category) int {
	n := 0
	for _, p := range products {
		if p.Category == category {
			n++
		}
	}
	return n
}
