package domain

import "github.com/shopspring/decimal"

type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortRating    SortMode = "rating"
)

// A FilterSpec describes the desired view of the catalog. Filters are
// conjunctive; a zero MinRating and Category "all" are inactive.
// MinPrice and MaxPrice are always applied, so callers default them to
// the catalog-wide bounds.
type FilterSpec struct {
	Category       Category
	MinPrice       decimal.Decimal
	MaxPrice       decimal.Decimal
	MinRating      float64
	Sort           SortMode
	InStockOnly    bool
	FeaturedOnly   bool
	NewOnly        bool
	BestSellerOnly bool
}

// DefaultFilterSpec returns a FilterSpec that reproduces the whole catalog
// in catalog order. min and max are the catalog-wide effective price
// bounds.
func DefaultFilterSpec(min, max decimal.Decimal) FilterSpec {
	return FilterSpec{
		Category: CategoryAll,
		MinPrice: min,
		MaxPrice: max,
		Sort:     SortNewest,
	}
}
