// Package catalog loads furniture products from CSV or Excel files and
// answers the lookups the designer needs: by id, by category, by room and
// cheaper or different alternatives to a product.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/piwi3910/RoomFit/internal/model"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

//go:embed default_catalog.csv
var defaultCatalogCSV []byte

// Catalog is an ordered, read-only set of products.
type Catalog struct {
	products []model.Product
	byID     map[string]int
}

// New builds a catalog. Later products with an id already present are ignored.
func New(products []model.Product) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(products))}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog of IKEA, Wayfair and Amazon products.
func Default() *Catalog {
	defaultOnce.Do(func() {
		result := ImportCSVFromReader(bytes.NewReader(defaultCatalogCSV), ',')
		defaultCatalog = New(result.Products)
	})
	return defaultCatalog
}

// Load imports a catalog file. Row errors make the whole load fail so a
// half-read catalog is never used silently; warnings are returned.
func Load(path string) (*Catalog, []string, error) {
	result := ImportFile(path)
	if len(result.Errors) > 0 {
		return nil, result.Warnings, fmt.Errorf("loading catalog %s: %s", path, strings.Join(result.Errors, "; "))
	}
	if len(result.Products) == 0 {
		return nil, result.Warnings, fmt.Errorf("loading catalog %s: no products", path)
	}
	return New(result.Products), result.Warnings, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns every product in catalog order.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (model.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%q: %w", id, ErrProductNotFound)
	}
	return c.products[i], nil
}

// ByCategory returns products in category. An empty style matches every
// style and a maxBudget of zero means no price limit.
func (c *Catalog) ByCategory(category model.Category, style model.Style, maxBudget float64) []model.Product {
	return c.filter(func(p model.Product) bool {
		return p.Category == category &&
			(style == "" || p.HasStyle(style)) &&
			withinBudget(p, maxBudget)
	})
}

// Alternatives returns the other products of the same category that cost
// at most maxBudget (zero means no limit).
func (c *Catalog) Alternatives(current model.Product, maxBudget float64) []model.Product {
	return c.filter(func(p model.Product) bool {
		return p.Category == current.Category && p.ID != current.ID && withinBudget(p, maxBudget)
	})
}

// ForRoom returns products tagged for roomType and, when style is set, for style.
func (c *Catalog) ForRoom(roomType model.RoomType, style model.Style) []model.Product {
	return c.filter(func(p model.Product) bool {
		return p.FitsRoom(roomType) && (style == "" || p.HasStyle(style))
	})
}

// Categories returns the categories present in the catalog, in the order
// of model.Categories.
func (c *Catalog) Categories() []model.Category {
	present := make(map[model.Category]bool)
	for _, p := range c.products {
		present[p.Category] = true
	}
	all := append([]model.Category{}, model.Categories...)
	all = append(all, model.CategoryOther)

	var out []model.Category
	for _, cat := range all {
		if present[cat] {
			out = append(out, cat)
		}
	}
	return out
}

func (c *Catalog) filter(keep func(model.Product) bool) []model.Product {
	var out []model.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func withinBudget(p model.Product, maxBudget float64) bool {
	return maxBudget <= 0 || p.Price <= maxBudget
}
