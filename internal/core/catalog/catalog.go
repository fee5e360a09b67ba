// Package catalog owns the canonical product set and read-only lookups
// over it. The dataset is fixed at construction and never mutated;
// every accessor preserves catalog order.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
)

type Catalog struct {
	products []domain.Product
	byID     map[int]int // product id -> index in products
}

func New() Catalog {
	return newFrom(dataset)
}

func newFrom(products []domain.Product) Catalog {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return Catalog{products, byID}
}

// Products returns the full catalog in catalog order.
func (c Catalog) Products() []domain.Product {
	ps := make([]domain.Product, len(c.products))
	copy(ps, c.products)
	return ps
}

func (c Catalog) ByID(id int) (domain.Product, error) {
	const op = "Catalog.ByID"
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: id %d: %w", op, id, domain.ErrNotFound)
	}
	return c.products[i], nil
}

// ByCategory returns the products of one category in catalog order.
// CategoryAll returns the entire catalog.
func (c Catalog) ByCategory(cat domain.Category) []domain.Product {
	if cat == domain.CategoryAll {
		return c.Products()
	}
	return c.filter(func(p domain.Product) bool { return p.Category == cat })
}

// Related returns up to limit products sharing the category of the
// product identified by id, excluding that product itself. An unknown
// id yields an empty slice.
func (c Catalog) Related(id, limit int) []domain.Product {
	cur, err := c.ByID(id)
	if err != nil {
		return nil
	}

	var ps []domain.Product
	for _, p := range c.products {
		if len(ps) == limit {
			break
		}
		if p.ID != id && p.Category == cur.Category {
			ps = append(ps, p)
		}
	}
	return ps
}

func (c Catalog) Featured() []domain.Product {
	return c.filter(func(p domain.Product) bool { return p.Featured })
}

func (c Catalog) NewArrivals() []domain.Product {
	return c.filter(func(p domain.Product) bool { return p.New })
}

func (c Catalog) BestSellers() []domain.Product {
	return c.filter(func(p domain.Product) bool { return p.BestSeller })
}

// PriceBounds returns the catalog-wide minimum and maximum effective
// price. Filter specs built from absent query parameters default to
// these bounds.
func (c Catalog) PriceBounds() (min, max decimal.Decimal) {
	for i, p := range c.products {
		ep := p.EffectivePrice()
		if i == 0 {
			min, max = ep, ep
			continue
		}
		if ep.LessThan(min) {
			min = ep
		}
		if ep.GreaterThan(max) {
			max = ep
		}
	}
	return min, max
}

// Categories returns the display list shown by the category browser.
func (c Catalog) Categories() []domain.CategoryInfo {
	return []domain.CategoryInfo{
		{ID: domain.CategoryAll, Name: "All Products"},
		{ID: domain.CategoryElectronics, Name: "Electronics"},
		{ID: domain.CategoryClothing, Name: "Clothing"},
		{ID: domain.CategoryAccessories, Name: "Accessories"},
		{ID: domain.CategoryHome, Name: "Home & Living"},
		{ID: domain.CategoryBeauty, Name: "Beauty"},
		{ID: domain.CategorySports, Name: "Sports & Fitness"},
		{ID: domain.CategoryToys, Name: "Toys & Games"},
	}
}

func (c Catalog) filter(keep func(domain.Product) bool) []domain.Product {
	var ps []domain.Product
	for _, p := range c.products {
		if keep(p) {
			ps = append(ps, p)
		}
	}
	return ps
}
