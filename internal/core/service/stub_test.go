package service_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func productA() domain.Product {
	return domain.Product{
		ID:              1,
		Name:            "A",
		Price:           price("100"),
		DiscountedPrice: price("80"),
		Category:        domain.CategoryElectronics,
		Rating:          4.8,
		InStock:         true,
	}
}

func productB() domain.Product {
	return domain.Product{
		ID:       2,
		Name:     "B",
		Price:    price("50"),
		Category: domain.CategoryClothing,
		Rating:   4.2,
		InStock:  true,
	}
}

type readerStub struct {
	products map[int]domain.Product
}

func newReaderStub(ps ...domain.Product) readerStub {
	m := make(map[int]domain.Product, len(ps))
	for _, p := range ps {
		m[p.ID] = p
	}
	return readerStub{m}
}

func (r readerStub) Product(id int) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("readerStub: id %d: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

type snapStub struct {
	cart     []domain.CartLine
	wishlist []domain.Product
	err      error
}

func (s snapStub) LoadCart() ([]domain.CartLine, error) {
	return s.cart, s.err
}

func (s snapStub) LoadWishlist() ([]domain.Product, error) {
	return s.wishlist, s.err
}

type cartRecorder struct {
	events []domain.CartEvent
}

func (r *cartRecorder) CartChanged(_ context.Context, evt domain.CartEvent) {
	r.events = append(r.events, evt)
}

func (r *cartRecorder) last() domain.CartEvent {
	return r.events[len(r.events)-1]
}

type wishlistRecorder struct {
	events []domain.WishlistEvent
}

func (r *wishlistRecorder) WishlistChanged(_ context.Context, evt domain.WishlistEvent) {
	r.events = append(r.events, evt)
}

func (r *wishlistRecorder) last() domain.WishlistEvent {
	return r.events[len(r.events)-1]
}

type ordersStub struct {
	produced []domain.Order
	err      error
}

func (o *ordersStub) ProduceOrder(_ context.Context, order domain.Order) error {
	if o.err != nil {
		return o.err
	}
	o.produced = append(o.produced, order)
	return nil
}
