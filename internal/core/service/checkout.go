package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
)

var _ port.OrderPlacer = (*Checkout)(nil)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCustomer = errors.New("invalid customer details")
)

// Flat shipping applies to any non-empty cart; tax is a fixed rate on
// the subtotal. An empty cart is a valid base: everything derives to 0.
var (
	shippingFlat = decimal.NewFromInt(10)
	taxRate      = decimal.NewFromFloat(0.10)
)

// Checkout derives order totals from the cart and submits orders to the
// order stream. Submission has explicit success and failure outcomes:
// the cart is cleared only after the order is accepted downstream.
type Checkout struct {
	cart   port.CartKeeper
	orders port.OrdersProducer
}

func NewCheckout(cart port.CartKeeper, orders port.OrdersProducer) Checkout {
	return Checkout{cart, orders}
}

func (s Checkout) Totals() domain.CheckoutTotals {
	subtotal := s.cart.Subtotal()

	shipping := decimal.Zero
	if len(s.cart.Lines()) > 0 {
		shipping = shippingFlat
	}

	tax := subtotal.Mul(taxRate)
	return domain.CheckoutTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

func (s Checkout) PlaceOrder(ctx context.Context, customer domain.Customer) (domain.Order, error) {
	const op = "Checkout.PlaceOrder"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := validateCustomer(customer); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	order := domain.Order{
		ID:       uuid.NewString(),
		Lines:    lines,
		Totals:   s.Totals(),
		Customer: customer,
		PlacedAt: time.Now().UTC(),
	}

	if err := s.orders.ProduceOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cart.Clear(ctx)
	return order, nil
}

func validateCustomer(c domain.Customer) error {
	if c.FirstName == "" || c.LastName == "" || c.Email == "" || c.Address == "" {
		return ErrInvalidCustomer
	}
	return nil
}
