// Package query maps (product list, filter spec) to an ordered result
// list. Apply is pure: it never mutates its input and returns the same
// output for the same input.
package query

import (
	"slices"

	"github.com/shopswift/storefront/internal/core/domain"
)

// Apply filters products conjunctively, then sorts the survivors.
// Sorting is stable: equal keys keep their relative catalog order.
// An empty result is valid output, not an error.
func Apply(products []domain.Product, spec domain.FilterSpec) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if pass(p, spec) {
			out = append(out, p)
		}
	}
	sortProducts(out, spec.Sort)
	return out
}

func pass(p domain.Product, spec domain.FilterSpec) bool {
	if spec.Category != domain.CategoryAll && p.Category != spec.Category {
		return false
	}

	ep := p.EffectivePrice()
	if ep.LessThan(spec.MinPrice) || ep.GreaterThan(spec.MaxPrice) {
		return false
	}

	if spec.MinRating > 0 && p.Rating < spec.MinRating {
		return false
	}

	if spec.InStockOnly && !p.InStock {
		return false
	}
	if spec.FeaturedOnly && !p.Featured {
		return false
	}
	if spec.NewOnly && !p.New {
		return false
	}
	if spec.BestSellerOnly && !p.BestSeller {
		return false
	}
	return true
}

func sortProducts(ps []domain.Product, mode domain.SortMode) {
	switch mode {
	case domain.SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return a.EffectivePrice().Cmp(b.EffectivePrice())
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return b.EffectivePrice().Cmp(a.EffectivePrice())
		})
	case domain.SortRating:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			default:
				return 0
			}
		})
	default:
		// newest: catalog order is the recency proxy, keep it
	}
}
