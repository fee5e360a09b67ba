package service

import (
	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/catalog"
	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
	"github.com/shopswift/storefront/internal/core/query"
)

var _ port.CatalogBrowser = (*Catalog)(nil)
var _ port.ProductReader = (*Catalog)(nil)

// Catalog answers read-only catalog queries. It is stateless: Browse
// delegates to the pure query engine over the fixed product set.
type Catalog struct {
	cat catalog.Catalog
}

func NewCatalog(cat catalog.Catalog) Catalog {
	return Catalog{cat}
}

func (s Catalog) Browse(spec domain.FilterSpec) []domain.Product {
	return query.Apply(s.cat.Products(), spec)
}

func (s Catalog) Product(id int) (domain.Product, error) {
	return s.cat.ByID(id)
}

func (s Catalog) Related(id, limit int) []domain.Product {
	return s.cat.Related(id, limit)
}

func (s Catalog) Categories() []domain.CategoryInfo {
	return s.cat.Categories()
}

func (s Catalog) PriceBounds() (min, max decimal.Decimal) {
	return s.cat.PriceBounds()
}
