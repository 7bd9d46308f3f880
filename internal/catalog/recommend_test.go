package catalog

import (
	"testing"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		roomType model.RoomType
		style    model.Style
		budget   float64
		want     []string
	}{
		{
			name:     "essentials reach the spend target",
			roomType: model.RoomBedroom,
			style:    model.StyleModern,
			budget:   1000,
			want:     []string{"wayfair-platform-bed", "amazon-nightstand", "amazon-floor-lamp", "wayfair-area-rug", "wayfair-accent-chair"},
		},
		{
			name:     "tight budget stops after the bed",
			roomType: model.RoomBedroom,
			style:    model.StyleModern,
			budget:   300,
			want:     []string{"wayfair-platform-bed"},
		},
		{
			name:     "second pass tops up to 60 percent",
			roomType: model.RoomOffice,
			style:    model.StyleModern,
			budget:   2000,
			want: []string{
				"amazon-standing-desk", "ikea-markus-chair", "wayfair-bookcase", "ikea-hektar-lamp",
				"ikea-bekant-desk", "amazon-desk-chair", "amazon-bookcase", "ikea-micke-desk", "ikea-kallax-shelf",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Recommend(tt.roomType, tt.style, tt.budget)
			assert.Equal(t, tt.want, ids(got))

			if tt.budget > 0 {
				var spent float64
				for _, p := range got {
					spent += p.Price
				}
				assert.LessOrEqual(t, spent, tt.budget)
			}
		})
	}
}

func TestRecommend_NoBudgetTakesEverythingMatching(t *testing.T) {
	c := Default()

	got := c.Recommend(model.RoomBedroom, model.StyleContemporary, 0)
	assert.Len(t, got, len(c.ForRoom(model.RoomBedroom, model.StyleContemporary)))
	// Essentials come first, in category order.
	assert.Equal(t, []string{"wayfair-platform-bed", "ikea-hemnes-nightstand", "ikea-malm-dresser"}, ids(got[:3]))
}

func TestRecommend_PairsNightstands(t *testing.T) {
	c := New([]model.Product{
		{ID: "bed", Category: model.CategoryBed, Price: 300, Styles: []model.Style{model.StyleModern}, RoomTypes: []model.RoomType{model.RoomBedroom}},
		{ID: "ns-a", Category: model.CategoryNightstand, Price: 80, Styles: []model.Style{model.StyleModern}, RoomTypes: []model.RoomType{model.RoomBedroom}},
		{ID: "ns-b", Category: model.CategoryNightstand, Price: 60, Styles: []model.Style{model.StyleModern}, RoomTypes: []model.RoomType{model.RoomBedroom}},
	})

	// 380 already exceeds 60% of 600, so only the pairing rule adds ns-b.
	got := c.Recommend(model.RoomBedroom, model.StyleModern, 600)
	assert.Equal(t, []string{"bed", "ns-a", "ns-b"}, ids(got))
}

func TestRecommend_NoMatches(t *testing.T) {
	assert.Empty(t, Default().Recommend(model.RoomKitchen, model.StyleTraditional, 0))
}

func TestEssentialCategories_Fallback(t *testing.T) {
	assert.Equal(t, fallbackCategories, EssentialCategories(model.RoomType("garage")))
	assert.Equal(t, model.CategoryDesk, EssentialCategories(model.RoomOffice)[0])
}
