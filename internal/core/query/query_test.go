package query_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// A: on sale 100 -> 80, B: plain 50.
func testProducts() []domain.Product {
	return []domain.Product{
		{
			ID:              1,
			Name:            "A",
			Price:           price("100"),
			DiscountedPrice: price("80"),
			Category:        domain.CategoryElectronics,
			Rating:          4.8,
			InStock:         true,
			Featured:        true,
		},
		{
			ID:       2,
			Name:     "B",
			Price:    price("50"),
			Category: domain.CategoryClothing,
			Rating:   4.2,
			InStock:  true,
			New:      true,
		},
		{
			ID:         3,
			Name:       "C",
			Price:      price("80"),
			Category:   domain.CategoryElectronics,
			Rating:     4.8,
			InStock:    false,
			BestSeller: true,
		},
	}
}

func defaultSpec() domain.FilterSpec {
	return domain.DefaultFilterSpec(price("0"), price("10000"))
}

func ids(ps []domain.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestApply_Filtering(t *testing.T) {
	t.Run("DefaultSpecIsIdentity", func(t *testing.T) {
		ps := testProducts()
		got := query.Apply(ps, defaultSpec())
		assert.Equal(t, ids(ps), ids(got))
	})

	t.Run("Category", func(t *testing.T) {
		spec := defaultSpec()
		spec.Category = domain.CategoryElectronics
		got := query.Apply(testProducts(), spec)
		assert.Equal(t, []int{1, 3}, ids(got))
	})

	t.Run("CategoryAllPassesEverything", func(t *testing.T) {
		spec := defaultSpec()
		spec.Category = domain.CategoryAll
		got := query.Apply(testProducts(), spec)
		assert.Len(t, got, 3)
	})

	t.Run("PriceRangeUsesEffectivePrice", func(t *testing.T) {
		// A costs 80 after discount, so a 0..90 range keeps it even
		// though its base price is 100.
		spec := defaultSpec()
		spec.MaxPrice = price("90")
		got := query.Apply(testProducts(), spec)
		assert.Equal(t, []int{1, 2, 3}, ids(got))

		spec.MinPrice = price("81")
		got = query.Apply(testProducts(), spec)
		assert.Empty(t, ids(got))
	})

	t.Run("MinRating", func(t *testing.T) {
		spec := defaultSpec()
		spec.MinRating = 4.5
		got := query.Apply(testProducts(), spec)
		assert.Equal(t, []int{1, 3}, ids(got))
	})

	t.Run("ZeroRatingIsInactive", func(t *testing.T) {
		spec := defaultSpec()
		spec.MinRating = 0
		got := query.Apply(testProducts(), spec)
		assert.Len(t, got, 3)
	})

	t.Run("InStockOnly", func(t *testing.T) {
		spec := defaultSpec()
		spec.InStockOnly = true
		got := query.Apply(testProducts(), spec)
		assert.Equal(t, []int{1, 2}, ids(got))
	})

	t.Run("TogglesAreConjunctive", func(t *testing.T) {
		spec := defaultSpec()
		spec.FeaturedOnly = true
		spec.NewOnly = true
		got := query.Apply(testProducts(), spec)
		assert.Empty(t, got)
	})

	t.Run("EmptyResultIsValid", func(t *testing.T) {
		spec := defaultSpec()
		spec.Category = domain.CategoryToys
		got := query.Apply(testProducts(), spec)
		assert.Empty(t, got)
	})
}

func TestApply_Sorting(t *testing.T) {
	t.Run("PriceAscUsesEffectivePrices", func(t *testing.T) {
		// B(50) before A(80 after discount) despite A's base 100.
		ps := testProducts()[:2]
		spec := defaultSpec()
		spec.Sort = domain.SortPriceAsc
		got := query.Apply(ps, spec)
		assert.Equal(t, []int{2, 1}, ids(got))
	})

	t.Run("PriceDescReversesPriceAscWithoutTies", func(t *testing.T) {
		ps := testProducts()[:2]

		asc := defaultSpec()
		asc.Sort = domain.SortPriceAsc
		desc := defaultSpec()
		desc.Sort = domain.SortPriceDesc

		ascIDs := ids(query.Apply(ps, asc))
		descIDs := ids(query.Apply(ps, desc))

		require.Len(t, descIDs, len(ascIDs))
		for i := range ascIDs {
			assert.Equal(t, ascIDs[i], descIDs[len(descIDs)-1-i])
		}
	})

	t.Run("RatingSortIsStable", func(t *testing.T) {
		// 1 and 3 share the rating; catalog order breaks the tie.
		spec := defaultSpec()
		spec.Sort = domain.SortRating
		got := query.Apply(testProducts(), spec)
		assert.Equal(t, []int{1, 3, 2}, ids(got))
	})

	t.Run("NewestKeepsCatalogOrder", func(t *testing.T) {
		spec := defaultSpec()
		spec.Sort = domain.SortNewest
		got := query.Apply(testProducts(), spec)
		assert.Equal(t, []int{1, 2, 3}, ids(got))
	})
}

func TestApply_Purity(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		ps := testProducts()
		spec := defaultSpec()
		spec.Sort = domain.SortPriceAsc

		first := query.Apply(ps, spec)
		second := query.Apply(ps, spec)
		assert.Equal(t, ids(first), ids(second))
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		ps := testProducts()
		spec := defaultSpec()
		spec.Sort = domain.SortPriceDesc

		_ = query.Apply(ps, spec)
		assert.Equal(t, []int{1, 2, 3}, ids(ps))
	})
}
