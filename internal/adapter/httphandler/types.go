package httphandler

import (
	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
)

type (
	Product struct {
		ID              int               `json:"id"`
		Name            string            `json:"name"`
		Description     string            `json:"description"`
		Price           decimal.Decimal   `json:"price"`
		DiscountedPrice *decimal.Decimal  `json:"discountedPrice,omitempty"`
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

	ProductList struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
	}

	Category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	CartItem struct {
		Product
		Quantity int `json:"quantity"`
	}

	CartView struct {
		Items      []CartItem      `json:"items"`
		TotalItems int             `json:"totalItems"`
		Subtotal   decimal.Decimal `json:"subtotal"`
	}

	AddCartItem struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}

	SetCartQuantity struct {
		Quantity int `json:"quantity"`
	}

	WishlistView struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
	}

	ToggleWishlist struct {
		ProductID int `json:"productId"`
	}

	ToggleResult struct {
		Added    bool      `json:"added"`
		Products []Product `json:"products"`
	}

	CheckoutTotals struct {
		Subtotal decimal.Decimal `json:"subtotal"`
		Shipping decimal.Decimal `json:"shipping"`
		Tax      decimal.Decimal `json:"tax"`
		Total    decimal.Decimal `json:"total"`
	}

	PlaceOrder struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Email      string `json:"email"`
		Address    string `json:"address"`
		City       string `json:"city"`
		PostalCode string `json:"postalCode"`
		Country    string `json:"country"`
	}

	OrderPlaced struct {
		OrderID  string         `json:"orderId"`
		Totals   CheckoutTotals `json:"totals"`
		PlacedAt string         `json:"placedAt"`
	}
)

func toProduct(p domain.Product) Product {
	v := Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images,
		Category:    string(p.Category),
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		InStock:     p.InStock,
		Featured:    p.Featured,
		New:         p.New,
		BestSeller:  p.BestSeller,
		Specs:       p.Specs,
	}
	if p.OnSale() {
		dp := p.DiscountedPrice
		v.DiscountedPrice = &dp
	}
	return v
}

func toProducts(ps []domain.Product) []Product {
	vs := make([]Product, len(ps))
	for i, p := range ps {
		vs[i] = toProduct(p)
	}
	return vs
}

func toCartView(lines []domain.CartLine, totalItems int, subtotal decimal.Decimal) CartView {
	items := make([]CartItem, len(lines))
	for i, l := range lines {
		items[i] = CartItem{toProduct(l.Product), l.Quantity}
	}
	return CartView{Items: items, TotalItems: totalItems, Subtotal: subtotal}
}

func toCheckoutTotals(t domain.CheckoutTotals) CheckoutTotals {
	return CheckoutTotals{
		Subtotal: t.Subtotal,
		Shipping: t.Shipping,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}
