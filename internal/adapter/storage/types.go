package storage

import (
	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
)

// Stored shapes: the wishlist entry is an array of products, the cart
// entry an array of product fields plus quantity.
type (
	productRecord struct {
		ID              int               `json:"id"`
		Name            string            `json:"name"`
		Description     string            `json:"description"`
		Price           decimal.Decimal   `json:"price"`
		DiscountedPrice decimal.Decimal   `json:"discountedPrice"`
		Images          []string          `json:"images"`
		Category        string            `json:"category"`
		Rating          float64           `json:"rating"`
		Reviews         int               `json:"reviews"`
		InStock         bool              `json:"inStock"`
		Featured        bool              `json:"featured,omitempty"`
		New             bool              `json:"new,omitempty"`
		BestSeller      bool              `json:"bestSeller,omitempty"`
		Specs           map[string]string `json:"specs,omitempty"`
	}

	cartLineRecord struct {
		productRecord
		Quantity int `json:"quantity"`
	}
)

func toProductRecord(p domain.Product) productRecord {
	return productRecord{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		Images:          p.Images,
		Category:        string(p.Category),
		Rating:          p.Rating,
		Reviews:         p.Reviews,
		InStock:         p.InStock,
		Featured:        p.Featured,
		New:             p.New,
		BestSeller:      p.BestSeller,
		Specs:           p.Specs,
	}
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DiscountedPrice: r.DiscountedPrice,
		Images:          r.Images,
		Category:        domain.Category(r.Category),
		Rating:          r.Rating,
		Reviews:         r.Reviews,
		InStock:         r.InStock,
		Featured:        r.Featured,
		New:             r.New,
		BestSeller:      r.BestSeller,
		Specs:           r.Specs,
	}
}

func toCartLineRecord(l domain.CartLine) cartLineRecord {
	return cartLineRecord{toProductRecord(l.Product), l.Quantity}
}

func (r cartLineRecord) toDomain() domain.CartLine {
	return domain.CartLine{Product: r.productRecord.toDomain(), Quantity: r.Quantity}
}
