package catalog_test

import (
	"testing"

	"github.com/shopswift/storefront/internal/core/catalog"
	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []domain.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestCatalog_ByID(t *testing.T) {
	c := catalog.New()

	t.Run("Found", func(t *testing.T) {
		p, err := c.ByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Premium Wireless Headphones", p.Name)
		assert.Equal(t, "179.99", p.EffectivePrice().String())
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := c.ByID(999)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalog_ByCategory(t *testing.T) {
	c := catalog.New()

	t.Run("AllReturnsWholeCatalog", func(t *testing.T) {
		assert.Len(t, c.ByCategory(domain.CategoryAll), len(c.Products()))
	})

	t.Run("SingleCategoryInCatalogOrder", func(t *testing.T) {
		got := c.ByCategory(domain.CategoryClothing)
		assert.Equal(t, []int{3, 17}, ids(got))
	})
}

func TestCatalog_Related(t *testing.T) {
	c := catalog.New()

	t.Run("SameCategoryExcludingSelf", func(t *testing.T) {
		got := c.Related(1, 4)
		require.Len(t, got, 4)
		assert.NotContains(t, ids(got), 1)
		for _, p := range got {
			assert.Equal(t, domain.CategoryElectronics, p.Category)
		}
	})

	t.Run("LimitRespected", func(t *testing.T) {
		assert.Len(t, c.Related(1, 2), 2)
	})

	t.Run("UnknownIDYieldsEmpty", func(t *testing.T) {
		assert.Empty(t, c.Related(999, 4))
	})
}

func TestCatalog_Partitions(t *testing.T) {
	c := catalog.New()

	t.Run("Featured", func(t *testing.T) {
		for _, p := range c.Featured() {
			assert.True(t, p.Featured)
		}
		assert.NotEmpty(t, c.Featured())
	})

	t.Run("NewArrivals", func(t *testing.T) {
		for _, p := range c.NewArrivals() {
			assert.True(t, p.New)
		}
		assert.NotEmpty(t, c.NewArrivals())
	})

	t.Run("BestSellers", func(t *testing.T) {
		for _, p := range c.BestSellers() {
			assert.True(t, p.BestSeller)
		}
		assert.NotEmpty(t, c.BestSellers())
	})
}

func TestCatalog_PriceBounds(t *testing.T) {
	c := catalog.New()

	min, max := c.PriceBounds()
	assert.Equal(t, "19.99", min.String())
	assert.Equal(t, "1299.99", max.String())
}

func TestCatalog_Categories(t *testing.T) {
	c := catalog.New()

	cats := c.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, domain.CategoryAll, cats[0].ID)
	assert.Equal(t, "All Products", cats[0].Name)

	seen := make(map[domain.Category]bool)
	for _, ci := range cats {
		assert.False(t, seen[ci.ID], "duplicate category %q", ci.ID)
		assert.NotEmpty(t, ci.Name)
		seen[ci.ID] = true
	}
}

func TestCatalog_DatasetIntegrity(t *testing.T) {
	c := catalog.New()
	products := c.Products()
	require.NotEmpty(t, products)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name, "product %d", p.ID)
		assert.NotEmpty(t, p.Images, "product %d", p.ID)
		assert.True(t, p.Price.IsPositive(), "product %d", p.ID)
		if p.OnSale() {
			assert.True(t, p.DiscountedPrice.LessThan(p.Price), "product %d", p.ID)
		}
		assert.GreaterOrEqual(t, p.Rating, 0.0, "product %d", p.ID)
		assert.LessOrEqual(t, p.Rating, 5.0, "product %d", p.ID)
	}
}

func TestCatalog_ProductsReturnsCopy(t *testing.T) {
	c := catalog.New()

	first := c.Products()
	first[0].Name = "mutated"

	second := c.Products()
	assert.NotEqual(t, "mutated", second[0].Name)
}
