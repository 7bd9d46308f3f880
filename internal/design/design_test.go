package design

import (
	"strings"
	"testing"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	malmBed = model.Product{
		ID: "ikea-malm-bed", Retailer: model.RetailerIKEA, Name: "MALM Bed Frame High",
		Category: model.CategoryBed, Price: 199, WidthIn: 66, DepthIn: 83,
	}
	platformBed = model.Product{
		ID: "wayfair-platform-bed", Retailer: model.RetailerWayfair, Name: "Upholstered Platform Bed",
		Category: model.CategoryBed, Price: 259, WidthIn: 64, DepthIn: 86,
	}
	hemnesNightstand = model.Product{
		ID: "ikea-hemnes-nightstand", Retailer: model.RetailerIKEA, Name: "HEMNES Nightstand",
		Category: model.CategoryNightstand, Price: 79, WidthIn: 18, DepthIn: 14,
	}
)

func bedroomDesign() *Design {
	d := New(model.DefaultSettings())
	d.SetType(model.RoomBedroom)
	d.SetRoom(model.Room{WidthFt: 12, LengthFt: 14})
	return d
}

func TestNew(t *testing.T) {
	d := New(model.DefaultSettings())

	assert.Equal(t, StepRoom, d.Step)
	assert.Equal(t, 5000.0, d.Config.Budget)
	assert.Equal(t, model.CountryUS, d.Config.Country)
	assert.Empty(t, d.Furniture)
	assert.False(t, d.CanUndo())
}

func TestGenerate_PlacesProducts(t *testing.T) {
	d := bedroomDesign()

	result := d.Generate([]model.Product{malmBed, hemnesNightstand})

	assert.Equal(t, StepLayout, d.Step)
	require.Len(t, result.Placements, 2)
	require.Len(t, d.Furniture, 2)
	require.NotNil(t, d.Result)

	bed := d.Furniture[0]
	assert.True(t, strings.HasPrefix(bed.ID, "ikea-malm-bed-"))
	assert.Equal(t, 97.5, bed.X)
	assert.Equal(t, 20.0, bed.Y)
	assert.Equal(t, 20.0, d.Furniture[1].X)
	assert.True(t, d.CanUndo())
}

func TestGenerate_DropsWhatDoesNotFit(t *testing.T) {
	d := bedroomDesign()

	result := d.Generate([]model.Product{malmBed, platformBed})

	require.Len(t, d.Furniture, 1)
	assert.Equal(t, malmBed.ID, d.Furniture[0].Product.ID)
	require.Len(t, result.Dropped, 1)
	assert.Equal(t, model.DropNoSpace, result.Dropped[0].Reason)
	assert.True(t, strings.HasPrefix(result.Dropped[0].ItemID, "wayfair-platform-bed-"))
	assert.Equal(t, []model.UnplacedItem{{Product: platformBed, Reason: model.DropNoSpace}}, d.Unplaced)
}

func TestGenerate_CapsItemCount(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MaxItems = 2
	d := New(settings)

	result := d.Generate([]model.Product{hemnesNightstand, hemnesNightstand, hemnesNightstand})

	assert.Equal(t, 2, len(result.Placements)+len(result.Dropped))
}

func TestGenerate_FallbackRoom(t *testing.T) {
	d := New(model.DefaultSettings())

	result := d.Generate([]model.Product{malmBed})

	assert.Equal(t, 360.0, result.RoomWidth)
	assert.Equal(t, 420.0, result.RoomLength)
	assert.Equal(t, model.FallbackRoom, d.Room())
}

func TestMove_ClampsToRoom(t *testing.T) {
	d := bedroomDesign()
	d.Generate([]model.Product{malmBed})
	id := d.Furniture[0].ID

	require.NoError(t, d.Move(id, 1000, -50))

	item, err := d.Find(id)
	require.NoError(t, err)
	assert.Equal(t, 195.0, item.X)
	assert.Equal(t, 0.0, item.Y)

	require.NoError(t, d.Move(id, 42, 64))
	assert.Equal(t, 42.0, d.Furniture[0].X)
	assert.Equal(t, 64.0, d.Furniture[0].Y)
}

func TestMove_ClampsTurnedItem(t *testing.T) {
	d := bedroomDesign()
	d.Generate([]model.Product{malmBed})
	id := d.Furniture[0].ID
	require.NoError(t, d.Rotate(id, 90))

	require.NoError(t, d.Move(id, 1000, 1000))
	assert.Equal(t, 152.5, d.Furniture[0].X)
	assert.Equal(t, 255.0, d.Furniture[0].Y)
}

func TestMove_Errors(t *testing.T) {
	d := New(model.DefaultSettings())
	d.Add(model.NewFurnitureItem(malmBed, 0, 0))

	err := d.Move(d.Furniture[0].ID, 10, 10)
	assert.ErrorIs(t, err, ErrNoRoom)

	d.SetRoom(model.Room{WidthFt: 12, LengthFt: 14})
	err = d.Move("missing", 10, 10)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSwap_KeepsPosition(t *testing.T) {
	d := bedroomDesign()
	d.Generate([]model.Product{malmBed})
	oldID := d.Furniture[0].ID
	require.NoError(t, d.Select(oldID))

	newID, err := d.Swap(oldID, platformBed)
	require.NoError(t, err)

	assert.NotEqual(t, oldID, newID)
	assert.True(t, strings.HasPrefix(newID, "wayfair-platform-bed-"))
	item, err := d.Find(newID)
	require.NoError(t, err)
	assert.Equal(t, platformBed, item.Product)
	assert.Equal(t, 97.5, item.X)
	assert.Equal(t, 20.0, item.Y)
	assert.Equal(t, newID, d.SelectedID)

	_, err = d.Find(oldID)
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = d.Swap(oldID, malmBed)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRotate_Normalises(t *testing.T) {
	d := bedroomDesign()
	d.Add(model.NewFurnitureItem(hemnesNightstand, 0, 0))
	id := d.Furniture[0].ID

	require.NoError(t, d.Rotate(id, -90))
	assert.Equal(t, 270.0, d.Furniture[0].Rotation)

	require.NoError(t, d.Rotate(id, 450))
	assert.Equal(t, 90.0, d.Furniture[0].Rotation)

	assert.ErrorIs(t, d.Rotate("missing", 90), ErrItemNotFound)
}

func TestGenerate_UndoRestoresPreviousLayout(t *testing.T) {
	d := bedroomDesign()
	d.Generate([]model.Product{malmBed, platformBed})
	d.NextStep()
	firstResult := d.Result
	require.Len(t, d.Unplaced, 1)

	d.Generate([]model.Product{hemnesNightstand})
	assert.Empty(t, d.Unplaced)
	assert.Equal(t, StepLayout, d.Step)

	require.True(t, d.Undo())
	require.Len(t, d.Furniture, 1)
	assert.Equal(t, malmBed.ID, d.Furniture[0].Product.ID)
	assert.Equal(t, []model.UnplacedItem{{Product: platformBed, Reason: model.DropNoSpace}}, d.Unplaced)
	assert.Same(t, firstResult, d.Result)
	assert.Equal(t, StepRefine, d.Step)

	require.True(t, d.Undo())
	assert.Empty(t, d.Furniture)
	assert.Empty(t, d.Unplaced)
	assert.Nil(t, d.Result)
	assert.Equal(t, StepRoom, d.Step)

	require.True(t, d.Redo())
	assert.Equal(t, firstResult, d.Result)
	assert.Equal(t, StepRefine, d.Step)
}

func TestRemove_ClearsSelectionAndUndoes(t *testing.T) {
	d := bedroomDesign()
	d.Generate([]model.Product{malmBed, hemnesNightstand})
	id := d.Furniture[1].ID
	require.NoError(t, d.Select(id))

	require.NoError(t, d.Remove(id))
	assert.Len(t, d.Furniture, 1)
	assert.Empty(t, d.SelectedID)
	assert.Nil(t, d.Selected())

	require.True(t, d.Undo())
	assert.Len(t, d.Furniture, 2)
	assert.Equal(t, id, d.SelectedID)
	require.NotNil(t, d.Selected())
	assert.Equal(t, hemnesNightstand.ID, d.Selected().Product.ID)

	require.True(t, d.Redo())
	assert.Len(t, d.Furniture, 1)

	assert.ErrorIs(t, d.Remove("missing"), ErrItemNotFound)
}

func TestSelect(t *testing.T) {
	d := bedroomDesign()
	d.Generate([]model.Product{malmBed})

	assert.ErrorIs(t, d.Select("missing"), ErrItemNotFound)
	require.NoError(t, d.Select(d.Furniture[0].ID))
	require.NoError(t, d.Select(""))
	assert.Empty(t, d.SelectedID)
}

func TestSteps_Clamped(t *testing.T) {
	d := New(model.DefaultSettings())

	d.PrevStep()
	assert.Equal(t, StepRoom, d.Step)

	for i := 0; i < 6; i++ {
		d.NextStep()
	}
	assert.Equal(t, StepSummary, d.Step)

	d.SetStep(0)
	assert.Equal(t, StepRoom, d.Step)
	d.SetStep(3)
	assert.Equal(t, StepRefine, d.Step)
}

func TestCosts(t *testing.T) {
	d := bedroomDesign()
	d.SetBudget(250)
	d.Generate([]model.Product{malmBed, hemnesNightstand})

	assert.Equal(t, 278.0, d.TotalCost())
	s := d.Summary()
	assert.Equal(t, 278.0, s.Total)
	assert.True(t, s.OverBudget)
	assert.Equal(t, -28.0, s.Remaining)

	d.SetBudget(-10)
	assert.Equal(t, 0.0, d.Config.Budget)
	assert.False(t, d.Summary().HasBudget())
}

func TestReset(t *testing.T) {
	d := bedroomDesign()
	d.SetBudget(1200)
	d.Generate([]model.Product{malmBed})

	d.Reset()

	assert.Equal(t, model.DefaultRoomConfig(), d.Config)
	assert.Empty(t, d.Furniture)
	assert.Nil(t, d.Result)
	assert.Equal(t, StepRoom, d.Step)
	assert.False(t, d.CanUndo())
}

func TestProjectRoundTrip(t *testing.T) {
	d := bedroomDesign()
	d.SetStyle(model.StyleModern)
	d.Generate([]model.Product{malmBed, hemnesNightstand})

	p := d.Project("Guest room")
	assert.Equal(t, "Guest room", p.Name)
	require.NotNil(t, p.Result)

	restored := FromProject(p)
	assert.Equal(t, d.Config, restored.Config)
	assert.Equal(t, d.Furniture, restored.Furniture)
	assert.Equal(t, StepRefine, restored.Step)
	assert.False(t, restored.CanUndo())
}

func TestZeroDesignIsUsable(t *testing.T) {
	var d Design
	d.Add(model.NewFurnitureItem(malmBed, 0, 0))

	assert.True(t, d.CanUndo())
	assert.True(t, d.Undo())
	assert.Empty(t, d.Furniture)
}
