package httphandler

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
)

// ParseFilterSpec builds a filter spec from navigation query
// parameters. Boolean toggles are active iff the literal "true" is
// present; numeric fields fall back to their defaults on absence or on
// unparseable input; an unknown sort value means "newest".
func ParseFilterSpec(q url.Values, minBound, maxBound decimal.Decimal) domain.FilterSpec {
	spec := domain.DefaultFilterSpec(minBound, maxBound)

	if c := q.Get("category"); c != "" {
		spec.Category = domain.Category(c)
	}

	if v, err := decimal.NewFromString(q.Get("minPrice")); err == nil {
		spec.MinPrice = v
	}
	if v, err := decimal.NewFromString(q.Get("maxPrice")); err == nil {
		spec.MaxPrice = v
	}

	if v, err := strconv.ParseFloat(q.Get("rating"), 64); err == nil {
		spec.MinRating = clampRating(v)
	}

	switch s := domain.SortMode(q.Get("sort")); s {
	case domain.SortPriceAsc, domain.SortPriceDesc, domain.SortRating:
		spec.Sort = s
	}

	spec.InStockOnly = q.Get("inStock") == "true"
	spec.FeaturedOnly = q.Get("featured") == "true"
	spec.NewOnly = q.Get("new") == "true"
	spec.BestSellerOnly = q.Get("bestseller") == "true"

	return spec
}

func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
