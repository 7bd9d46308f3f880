package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Room holds the floor dimensions in feet. Height is informational only.
type Room struct {
	WidthFt  float64 `json:"width"`
	LengthFt float64 `json:"length"`
	HeightFt float64 `json:"height,omitempty"`
}

// Units returns the room size in layout units.
func (r Room) Units(s LayoutSettings) (width, length float64) {
	return r.WidthFt * s.UnitsPerFoot, r.LengthFt * s.UnitsPerFoot
}

// Valid reports whether both floor dimensions are positive.
func (r Room) Valid() bool {
	return r.WidthFt > 0 && r.LengthFt > 0
}

func (r Room) String() string {
	return fmt.Sprintf("%.1f x %.1f ft", r.WidthFt, r.LengthFt)
}

// Product is a catalog entry. Footprint dimensions are in inches.
type Product struct {
	ID         string     `json:"id"`
	Retailer   Retailer   `json:"retailer"`
	ExternalID string     `json:"external_id,omitempty"`
	Name       string     `json:"name"`
	Category   Category   `json:"category"`
	Price      float64    `json:"price"`
	Currency   string     `json:"currency"`
	WidthIn    float64    `json:"width"`
	DepthIn    float64    `json:"depth"`
	HeightIn   float64    `json:"height,omitempty"`
	Styles     []Style    `json:"styles"`
	RoomTypes  []RoomType `json:"room_types"`
	Color      string     `json:"color,omitempty"`
	ProductURL string     `json:"product_url,omitempty"`
}

// HasStyle reports whether the product is tagged with style s.
func (p Product) HasStyle(s Style) bool {
	for _, st := range p.Styles {
		if st == s {
			return true
		}
	}
	return false
}

// FitsRoom reports whether the product is tagged for room type rt.
func (p Product) FitsRoom(rt RoomType) bool {
	for _, r := range p.RoomTypes {
		if r == rt {
			return true
		}
	}
	return false
}

// LayoutItem converts the product into an engine input with the given id.
func (p Product) LayoutItem(id string) LayoutItem {
	return LayoutItem{
		ID:       id,
		Category: p.Category,
		WidthIn:  p.WidthIn,
		DepthIn:  p.DepthIn,
	}
}

// LayoutItem is one entry of the ordered list handed to the layout engine.
type LayoutItem struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	WidthIn  float64  `json:"width"` // inches
	DepthIn  float64  `json:"depth"` // inches
}

// Box is an axis-aligned rectangle in layout units.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Overlaps reports whether b and o are closer than padding on both axes.
// A padding of zero is a plain intersection test; touching edges do not overlap.
func (b Box) Overlaps(o Box, padding float64) bool {
	return b.X < o.X+o.Width+padding && b.X+b.Width+padding > o.X &&
		b.Y < o.Y+o.Height+padding && b.Y+b.Height+padding > o.Y
}

// Area returns Width*Height.
func (b Box) Area() float64 {
	return b.Width * b.Height
}

// Placement is the engine's output for one item: a top-left position in
// layout units. Rotation is always 0 when produced by the engine.
type Placement struct {
	ItemID   string  `json:"item_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"` // layout units
	Depth    float64 `json:"depth"` // layout units
	Rotation float64 `json:"rotation"`
}

// Box returns the unpadded rectangle covered by the placement.
func (p Placement) Box() Box {
	return Box{X: p.X, Y: p.Y, Width: p.Width, Height: p.Depth}
}

// DropReason explains why the engine could not place an item.
type DropReason string

const (
	DropTooLarge DropReason = "too_large" // footprint exceeds the room interior
	DropNoSpace  DropReason = "no_space"  // no free position left
)

// Drop records an input item that was omitted from the layout.
type Drop struct {
	ItemID string     `json:"item_id"`
	Index  int        `json:"index"`
	Reason DropReason `json:"reason"`
}

// UnplacedItem is a product the layout engine could not fit into the room.
type UnplacedItem struct {
	Product Product    `json:"product"`
	Reason  DropReason `json:"reason"`
}

// LayoutResult holds the placements of one engine run. Placements keep the
// input order of the items that fit; everything else is listed in Dropped.
type LayoutResult struct {
	RoomWidth  float64     `json:"room_width"`  // layout units
	RoomLength float64     `json:"room_length"` // layout units
	Placements []Placement `json:"placements"`
	Dropped    []Drop      `json:"dropped,omitempty"`
}

// Coverage returns the percentage of the floor area covered by placements.
func (r LayoutResult) Coverage() float64 {
	total := r.RoomWidth * r.RoomLength
	if total <= 0 {
		return 0
	}
	var used float64
	for _, p := range r.Placements {
		used += p.Box().Area()
	}
	return used / total * 100.0
}

// Find returns the placement for itemID.
func (r LayoutResult) Find(itemID string) (Placement, bool) {
	for _, p := range r.Placements {
		if p.ItemID == itemID {
			return p, true
		}
	}
	return Placement{}, false
}

// LayoutSettings holds the scale and spacing constants used by the engine.
type LayoutSettings struct {
	UnitsPerFoot float64 `json:"units_per_foot"` // layout units per foot
	Padding      float64 `json:"padding"`        // minimum gap between items
	Margin       float64 `json:"margin"`         // inset from the walls
	SearchStep   float64 `json:"search_step"`    // ring and grid step
	MaxItems     int     `json:"max_items"`      // cap applied by callers before layout
}

// DefaultSettings returns the stock scale: 30 units per foot, 10 unit
// padding and margin, 30 unit search step, 8 items per layout.
func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		UnitsPerFoot: 30,
		Padding:      10,
		Margin:       10,
		SearchStep:   30,
		MaxItems:     8,
	}
}

// UnitsPerInch derives the inch scale from UnitsPerFoot (2.5 by default).
func (s LayoutSettings) UnitsPerInch() float64 {
	return s.UnitsPerFoot / 12
}

// InchesToUnits converts a footprint dimension to layout units.
func (s LayoutSettings) InchesToUnits(in float64) float64 {
	return in / 12 * s.UnitsPerFoot
}

// UnitsToFeet converts layout units back to feet.
func (s LayoutSettings) UnitsToFeet(u float64) float64 {
	if s.UnitsPerFoot == 0 {
		return 0
	}
	return u / s.UnitsPerFoot
}

// FurnitureItem is a product placed in the room. Positions are in layout
// units, rotation in degrees.
type FurnitureItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// NewFurnitureItem wraps a product with a fresh item id derived from the
// product id.
func NewFurnitureItem(p Product, x, y float64) FurnitureItem {
	return FurnitureItem{
		ID:      NewItemID(p.ID),
		Product: p,
		X:       x,
		Y:       y,
	}
}

// NewItemID returns "<productID>-<8 hex chars>".
func NewItemID(productID string) string {
	return productID + "-" + uuid.New().String()[:8]
}

// Footprint returns the item's unrotated size in layout units.
func (f FurnitureItem) Footprint(s LayoutSettings) (width, depth float64) {
	return s.InchesToUnits(f.Product.WidthIn), s.InchesToUnits(f.Product.DepthIn)
}

// PlacedFootprint returns the size the item covers on the floor. Quarter
// turns swap width and depth; other angles keep the unrotated footprint.
func (f FurnitureItem) PlacedFootprint(s LayoutSettings) (width, depth float64) {
	w, d := f.Footprint(s)
	if quarterTurn(f.Rotation) {
		return d, w
	}
	return w, d
}

// Box returns the floor rectangle covered by the item in layout units.
func (f FurnitureItem) Box(s LayoutSettings) Box {
	w, d := f.PlacedFootprint(s)
	return Box{X: f.X, Y: f.Y, Width: w, Height: d}
}

func quarterTurn(rotation float64) bool {
	r := math.Mod(math.Round(rotation), 180)
	return r == 90 || r == -90
}

// RoomConfig is the user's description of the room being furnished.
// A Budget of zero means no budget.
type RoomConfig struct {
	Type    RoomType `json:"type"`
	Room    Room     `json:"dimensions"`
	Style   Style    `json:"style"`
	Budget  float64  `json:"budget"`
	Country Country  `json:"country"`
}

// DefaultRoomConfig mirrors a fresh session: no room yet, $5000 budget, US.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		Budget:  5000,
		Country: CountryUS,
	}
}

// EffectiveRoom returns the configured room, or FallbackRoom when no
// dimensions are set.
func (c RoomConfig) EffectiveRoom() Room {
	if c.Room.Valid() {
		return c.Room
	}
	return FallbackRoom
}

// FallbackRoom is used when a layout is requested before dimensions are known.
var FallbackRoom = Room{WidthFt: 12, LengthFt: 14}

// Project ties everything together for save/load.
type Project struct {
	Name      string          `json:"name"`
	Config    RoomConfig      `json:"config"`
	Furniture []FurnitureItem `json:"furniture"`
	Unplaced  []UnplacedItem  `json:"unplaced,omitempty"`
	Settings  LayoutSettings  `json:"settings"`
	Result    *LayoutResult   `json:"result,omitempty"`
}

// Room returns the room the project is laid out in.
func (p Project) Room() Room {
	return p.Config.EffectiveRoom()
}

func NewProject() Project {
	return Project{
		Name:      "Untitled",
		Config:    DefaultRoomConfig(),
		Furniture: []FurnitureItem{},
		Settings:  DefaultSettings(),
	}
}

// roundTo rounds v to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
