package model

import (
	"encoding/json"
	"strings"
)

// Category is the furniture category of a product. It drives where the
// layout engine prefers to put an item.
type Category string

const (
	CategoryBed        Category = "bed"
	CategorySofa       Category = "sofa"
	CategoryChair      Category = "chair"
	CategoryTable      Category = "table"
	CategoryDesk       Category = "desk"
	CategoryStorage    Category = "storage"
	CategoryLighting   Category = "lighting"
	CategoryDecor      Category = "decor"
	CategoryRug        Category = "rug"
	CategoryNightstand Category = "nightstand"
	CategoryDresser    Category = "dresser"
	CategoryBookshelf  Category = "bookshelf"
	CategoryOther      Category = "other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryBed,
	CategorySofa,
	CategoryChair,
	CategoryTable,
	CategoryDesk,
	CategoryStorage,
	CategoryLighting,
	CategoryDecor,
	CategoryRug,
	CategoryNightstand,
	CategoryDresser,
	CategoryBookshelf,
}

// ParseCategory converts a free-form string to a Category.
// Unknown values map to CategoryOther.
func ParseCategory(s string) Category {
	normalized := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Categories {
		if c == normalized {
			return c
		}
	}
	return CategoryOther
}

func (c Category) String() string {
	if c == "" {
		return string(CategoryOther)
	}
	return string(c)
}

// UnmarshalJSON normalizes category names so catalogs written by hand
// ("Bed", " lighting ") still decode to known categories.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseCategory(s)
	return nil
}

// RoomType identifies the kind of room being furnished.
type RoomType string

const (
	RoomBedroom RoomType = "bedroom"
	RoomLiving  RoomType = "living_room"
	RoomOffice  RoomType = "office"
	RoomDen     RoomType = "den"
	RoomDining  RoomType = "dining_room"
	RoomKitchen RoomType = "kitchen"
)

// DisplayName returns the human-readable room type name.
func (rt RoomType) DisplayName() string {
	switch rt {
	case RoomBedroom:
		return "Bedroom"
	case RoomLiving:
		return "Living Room"
	case RoomOffice:
		return "Office"
	case RoomDen:
		return "Den"
	case RoomDining:
		return "Dining Room"
	case RoomKitchen:
		return "Kitchen"
	default:
		return "Room"
	}
}

// RoomTypes lists the supported room types.
var RoomTypes = []RoomType{RoomBedroom, RoomLiving, RoomOffice, RoomDen, RoomDining, RoomKitchen}

// Style is a design style a product can belong to.
type Style string

const (
	StyleContemporary Style = "contemporary"
	StyleTraditional  Style = "traditional"
	StyleMinimalist   Style = "minimalist"
	StyleModern       Style = "modern"
)

// Styles lists the supported design styles.
var Styles = []Style{StyleContemporary, StyleTraditional, StyleMinimalist, StyleModern}

// Retailer is the store a product is sold by.
type Retailer string

const (
	RetailerAmazon  Retailer = "amazon"
	RetailerIKEA    Retailer = "ikea"
	RetailerWayfair Retailer = "wayfair"
)

// DisplayName returns the human-readable retailer name.
func (r Retailer) DisplayName() string {
	switch r {
	case RetailerAmazon:
		return "Amazon"
	case RetailerIKEA:
		return "IKEA"
	case RetailerWayfair:
		return "Wayfair"
	default:
		return string(r)
	}
}

// Country selects the storefront region.
type Country string

const (
	CountryUS Country = "US"
	CountryCA Country = "CA"
)

var Countries = []Country{CountryUS, CountryCA}
