package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func furnished(prices map[Retailer][]float64, order []Retailer) []FurnitureItem {
	var items []FurnitureItem
	for _, r := range order {
		for _, p := range prices[r] {
			items = append(items, FurnitureItem{ID: string(r), Product: Product{Retailer: r, Price: p}})
		}
	}
	return items
}

func TestSummarizeUnderBudget(t *testing.T) {
	items := furnished(map[Retailer][]float64{
		RetailerIKEA:    {199, 79, 79},
		RetailerWayfair: {179},
	}, []Retailer{RetailerIKEA, RetailerWayfair})

	s := Summarize(items, 1000)

	assert.Equal(t, 536.0, s.Total)
	assert.Equal(t, 464.0, s.Remaining)
	assert.False(t, s.OverBudget)
	assert.True(t, s.HasBudget())
	assert.Equal(t, 4, s.ItemCount)
	assert.InDelta(t, 53.6, s.PercentUsed, 1e-9)

	require.Len(t, s.ByRetailer, 2)
	assert.Equal(t, RetailerIKEA, s.ByRetailer[0].Retailer)
	assert.Equal(t, 3, s.ByRetailer[0].Items)
	assert.Equal(t, 357.0, s.ByRetailer[0].Subtotal)
	assert.Equal(t, RetailerWayfair, s.ByRetailer[1].Retailer)
}

func TestSummarizeOverBudget(t *testing.T) {
	items := furnished(map[Retailer][]float64{RetailerAmazon: {699, 450}}, []Retailer{RetailerAmazon})

	s := Summarize(items, 1000)

	assert.True(t, s.OverBudget)
	assert.Equal(t, -149.0, s.Remaining)
}

func TestSummarizeNoBudget(t *testing.T) {
	items := furnished(map[Retailer][]float64{RetailerIKEA: {10000}}, []Retailer{RetailerIKEA})

	s := Summarize(items, 0)

	assert.False(t, s.HasBudget())
	assert.False(t, s.OverBudget)
	assert.Zero(t, s.Remaining)
	assert.Zero(t, s.PercentUsed)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 2000)
	assert.Zero(t, s.Total)
	assert.Equal(t, 2000.0, s.Remaining)
	assert.NotNil(t, s.ByRetailer)
}

func TestSummarizeRoundsToCents(t *testing.T) {
	items := furnished(map[Retailer][]float64{RetailerIKEA: {0.1, 0.2}}, []Retailer{RetailerIKEA})
	s := Summarize(items, 0)
	assert.Equal(t, 0.3, s.Total)
	assert.False(t, math.IsNaN(s.PercentUsed))
}
