// Package design holds the state of one room being furnished: the room
// configuration, the furniture currently in it, the selected item and the
// wizard step. Every mutation goes through a method so it can be undone.
package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
)

var (
	// ErrItemNotFound is returned when a furniture id is not in the design.
	ErrItemNotFound = errors.New("furniture item not found")
	// ErrNoRoom is returned by operations that need room dimensions before
	// they have been set.
	ErrNoRoom = errors.New("room dimensions not set")
)

// Wizard steps.
const (
	StepRoom    = 1 // room type, dimensions, style, budget
	StepLayout  = 2 // generated floor plan
	StepRefine  = 3 // move, swap, remove
	StepSummary = 4 // shopping list
)

// Design is the furnishing state of a single room.
type Design struct {
	Config     model.RoomConfig
	Furniture  []model.FurnitureItem
	SelectedID string
	Step       int
	Settings   model.LayoutSettings

	// Result is the outcome of the last Generate call. Positions in it go
	// stale once furniture is moved; Furniture is authoritative.
	Result *model.LayoutResult
	// Unplaced lists the products the last Generate call had to leave out.
	Unplaced []model.UnplacedItem

	history *History
}

// New returns an empty design at step 1 with the default room config.
func New(settings model.LayoutSettings) *Design {
	return &Design{
		Config:    model.DefaultRoomConfig(),
		Furniture: []model.FurnitureItem{},
		Step:      StepRoom,
		Settings:  settings,
		history:   NewHistory(),
	}
}

// FromProject restores a design from a saved project. The wizard resumes
// at the refine step when the project already has furniture.
func FromProject(p model.Project) *Design {
	d := New(p.Settings)
	d.Config = p.Config
	if p.Furniture != nil {
		d.Furniture = p.Furniture
	}
	d.Result = p.Result
	d.Unplaced = p.Unplaced
	if len(d.Furniture) > 0 {
		d.Step = StepRefine
	}
	return d
}

// Project packages the design for saving.
func (d *Design) Project(name string) model.Project {
	return model.Project{
		Name:      name,
		Config:    d.Config,
		Furniture: copyFurniture(d.Furniture),
		Unplaced:  d.Unplaced,
		Settings:  d.Settings,
		Result:    d.Result,
	}
}

func (d *Design) SetType(t model.RoomType) {
	d.Config.Type = t
}

func (d *Design) SetStyle(s model.Style) {
	d.Config.Style = s
}

func (d *Design) SetCountry(c model.Country) {
	d.Config.Country = c
}

// SetBudget sets the budget in dollars; zero or less means no budget.
func (d *Design) SetBudget(budget float64) {
	d.Config.Budget = math.Max(budget, 0)
}

func (d *Design) SetRoom(room model.Room) {
	d.Config.Room = room
}

// Room returns the configured room, or the 12 x 14 ft fallback when no
// dimensions have been entered.
func (d *Design) Room() model.Room {
	return d.Config.EffectiveRoom()
}

// Generate lays out products in the room, replacing the current furniture.
// At most Settings.MaxItems products are considered, in the given order.
// Products the engine could not place are left out of the furniture and
// listed in the returned result's Dropped slice. Undo restores the
// furniture, unplaced list, result and step from before the call.
func (d *Design) Generate(products []model.Product) model.LayoutResult {
	if limit := d.Settings.MaxItems; limit > 0 && len(products) > limit {
		products = products[:limit]
	}

	items := make([]model.FurnitureItem, len(products))
	layoutItems := make([]model.LayoutItem, len(products))
	for i, p := range products {
		items[i] = model.NewFurnitureItem(p, 0, 0)
		layoutItems[i] = p.LayoutItem(items[i].ID)
	}

	result := engine.New(d.Settings).Layout(d.Room(), layoutItems)

	placed := make([]model.FurnitureItem, 0, len(result.Placements))
	for _, item := range items {
		if p, ok := result.Find(item.ID); ok {
			item.X = p.X
			item.Y = p.Y
			placed = append(placed, item)
		}
	}
	var unplaced []model.UnplacedItem
	for _, drop := range result.Dropped {
		unplaced = append(unplaced, model.UnplacedItem{Product: products[drop.Index], Reason: drop.Reason})
	}

	d.push("Generate Layout")
	d.Furniture = placed
	d.Unplaced = unplaced
	d.SelectedID = ""
	d.Result = &result
	d.Step = StepLayout
	return result
}

// Find returns the furniture item with the given id.
func (d *Design) Find(id string) (*model.FurnitureItem, error) {
	i := d.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", id, ErrItemNotFound)
	}
	return &d.Furniture[i], nil
}

// Add appends an item to the room as-is.
func (d *Design) Add(item model.FurnitureItem) {
	d.push("Add " + item.Product.Name)
	d.Furniture = append(d.Furniture, item)
}

// Remove deletes an item, clearing the selection if it pointed at it.
func (d *Design) Remove(id string) error {
	i := d.index(id)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrItemNotFound)
	}
	d.push("Remove " + d.Furniture[i].Product.Name)
	d.Furniture = append(d.Furniture[:i:i], d.Furniture[i+1:]...)
	if d.SelectedID == id {
		d.SelectedID = ""
	}
	return nil
}

// Move drags an item to (x, y) in layout units. The position is clamped so
// the unrotated footprint stays inside the room walls.
func (d *Design) Move(id string, x, y float64) error {
	if !d.Config.Room.Valid() {
		return fmt.Errorf("move %q: %w", id, ErrNoRoom)
	}
	i := d.index(id)
	if i < 0 {
		return fmt.Errorf("move %q: %w", id, ErrItemNotFound)
	}

	roomW, roomL := d.Config.Room.Units(d.Settings)
	w, dep := d.Furniture[i].PlacedFootprint(d.Settings)

	d.push("Move " + d.Furniture[i].Product.Name)
	d.Furniture[i].X = math.Max(0, math.Min(x, roomW-w))
	d.Furniture[i].Y = math.Max(0, math.Min(y, roomL-dep))
	return nil
}

// Rotate sets an item's rotation, normalised to [0, 360) degrees.
func (d *Design) Rotate(id string, degrees float64) error {
	i := d.index(id)
	if i < 0 {
		return fmt.Errorf("rotate %q: %w", id, ErrItemNotFound)
	}
	d.push("Rotate " + d.Furniture[i].Product.Name)
	r := math.Mod(degrees, 360)
	if r < 0 {
		r += 360
	}
	d.Furniture[i].Rotation = r
	return nil
}

// Swap replaces the product of an item, keeping its position and rotation.
// The item gets a new id derived from the new product; the new id is
// returned and the selection follows it.
func (d *Design) Swap(id string, product model.Product) (string, error) {
	i := d.index(id)
	if i < 0 {
		return "", fmt.Errorf("swap %q: %w", id, ErrItemNotFound)
	}
	d.push("Swap " + d.Furniture[i].Product.Name)
	newID := model.NewItemID(product.ID)
	d.Furniture[i].ID = newID
	d.Furniture[i].Product = product
	if d.SelectedID == id {
		d.SelectedID = newID
	}
	return newID, nil
}

// Select marks an item as selected. An empty id clears the selection.
func (d *Design) Select(id string) error {
	if id != "" && d.index(id) < 0 {
		return fmt.Errorf("select %q: %w", id, ErrItemNotFound)
	}
	d.SelectedID = id
	return nil
}

// Selected returns the selected item, or nil.
func (d *Design) Selected() *model.FurnitureItem {
	if i := d.index(d.SelectedID); i >= 0 {
		return &d.Furniture[i]
	}
	return nil
}

// SetStep jumps to a wizard step, clamped to 1..4.
func (d *Design) SetStep(step int) {
	d.Step = min(max(step, StepRoom), StepSummary)
}

func (d *Design) NextStep() {
	d.SetStep(d.Step + 1)
}

func (d *Design) PrevStep() {
	d.SetStep(d.Step - 1)
}

// TotalCost is the sum of the prices of all furniture in the room.
func (d *Design) TotalCost() float64 {
	var total float64
	for _, f := range d.Furniture {
		total += f.Product.Price
	}
	return total
}

// Summary returns the cost breakdown against the configured budget.
func (d *Design) Summary() model.CostSummary {
	return model.Summarize(d.Furniture, d.Config.Budget)
}

// Reset returns the design to its initial state and clears the history.
func (d *Design) Reset() {
	d.Config = model.DefaultRoomConfig()
	d.Furniture = []model.FurnitureItem{}
	d.SelectedID = ""
	d.Step = StepRoom
	d.Result = nil
	d.Unplaced = nil
	d.hist().Clear()
}

// Undo restores the furniture as it was before the last change.
func (d *Design) Undo() bool {
	s, ok := d.hist().Undo(d.snapshot(""))
	if ok {
		d.restore(s)
	}
	return ok
}

// Redo reapplies the last undone change.
func (d *Design) Redo() bool {
	s, ok := d.hist().Redo(d.snapshot(""))
	if ok {
		d.restore(s)
	}
	return ok
}

func (d *Design) CanUndo() bool {
	return d.hist().CanUndo()
}

func (d *Design) CanRedo() bool {
	return d.hist().CanRedo()
}

func (d *Design) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range d.Furniture {
		if d.Furniture[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Design) snapshot(label string) Snapshot {
	s := MakeSnapshot(d.Furniture, d.SelectedID, label)
	if d.Unplaced != nil {
		s.Unplaced = append([]model.UnplacedItem(nil), d.Unplaced...)
	}
	s.Result = d.Result
	s.Step = d.Step
	return s
}

func (d *Design) push(label string) {
	d.hist().Push(d.snapshot(label))
}

// hist lazily creates the history so a zero Design is usable.
func (d *Design) hist() *History {
	if d.history == nil {
		d.history = NewHistory()
	}
	return d.history
}

func (d *Design) restore(s Snapshot) {
	d.Furniture = s.Furniture
	if d.Furniture == nil {
		d.Furniture = []model.FurnitureItem{}
	}
	d.SelectedID = s.SelectedID
	d.Unplaced = s.Unplaced
	d.Result = s.Result
	d.Step = s.Step
}
