package model

// RetailerSubtotal is the share of a furnishing plan bought from one retailer.
type RetailerSubtotal struct {
	Retailer Retailer `json:"retailer"`
	Items    int      `json:"items"`
	Subtotal float64  `json:"subtotal"`
}

// CostSummary holds the running cost of a furnished room against its budget.
type CostSummary struct {
	Total       float64            `json:"total"`
	Budget      float64            `json:"budget"`    // 0 = no budget
	Remaining   float64            `json:"remaining"` // negative when over budget
	OverBudget  bool               `json:"over_budget"`
	ItemCount   int                `json:"item_count"`
	ByRetailer  []RetailerSubtotal `json:"by_retailer"`
	PercentUsed float64            `json:"percent_used"` // 0 when there is no budget
}

// HasBudget reports whether a budget limit applies.
func (c CostSummary) HasBudget() bool {
	return c.Budget > 0
}

// Summarize totals the furniture prices and compares them to the budget.
// Retailer subtotals are listed in the order each retailer first appears.
func Summarize(items []FurnitureItem, budget float64) CostSummary {
	summary := CostSummary{
		Budget:     budget,
		ItemCount:  len(items),
		ByRetailer: []RetailerSubtotal{},
	}

	index := make(map[Retailer]int)
	for _, item := range items {
		price := item.Product.Price
		summary.Total += price

		i, ok := index[item.Product.Retailer]
		if !ok {
			i = len(summary.ByRetailer)
			index[item.Product.Retailer] = i
			summary.ByRetailer = append(summary.ByRetailer, RetailerSubtotal{Retailer: item.Product.Retailer})
		}
		summary.ByRetailer[i].Items++
		summary.ByRetailer[i].Subtotal += price
	}
	summary.Total = roundTo(summary.Total, 2)

	if budget > 0 {
		summary.Remaining = roundTo(budget-summary.Total, 2)
		summary.OverBudget = summary.Total > budget
		summary.PercentUsed = summary.Total / budget * 100.0
	}
	return summary
}
