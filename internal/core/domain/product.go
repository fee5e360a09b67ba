package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("product not found")

type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryHome        Category = "home"
	CategoryBeauty      Category = "beauty"
	CategorySports      Category = "sports"
	CategoryToys        Category = "toys"
)

type (
	// A Product is an immutable catalog entry. The zero DiscountedPrice
	// means the product is not on sale.
	Product struct {
		ID              int
		Name            string
		Description     string
		Price           decimal.Decimal
		DiscountedPrice decimal.Decimal
		Images          []string
		Category        Category
		Rating          float64
		Reviews         int
		InStock         bool
		Featured        bool
		New             bool
		BestSeller      bool
		Specs           map[string]string
	}

	// A CategoryInfo pairs a category with its display name.
	CategoryInfo struct {
		ID   Category
		Name string
	}
)

// EffectivePrice returns the discounted price when the product is on
// sale, the base price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice.IsPositive() {
		return p.DiscountedPrice
	}
	return p.Price
}

func (p Product) OnSale() bool {
	return p.DiscountedPrice.IsPositive()
}
