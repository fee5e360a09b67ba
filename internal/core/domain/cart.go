package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// A CartLine holds a product reference and its quantity. At most one
// line per product id exists in a cart; lines keep first-add order.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) Total() decimal.Decimal {
	return l.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type LedgerAction string

const (
	ActionAdded   LedgerAction = "added"
	ActionUpdated LedgerAction = "updated"
	ActionRemoved LedgerAction = "removed"
	ActionCleared LedgerAction = "cleared"
)

type (
	// A CartEvent describes a single cart mutation. Lines is the cart
	// state after the mutation, so listeners never read the ledger back.
	CartEvent struct {
		Action     LedgerAction
		Product    Product
		Quantity   int
		TotalItems int
		Subtotal   decimal.Decimal
		Lines      []CartLine
	}

	// A WishlistEvent describes a single wishlist mutation.
	WishlistEvent struct {
		Action   LedgerAction
		Product  Product
		Products []Product
	}
)

type (
	CheckoutTotals struct {
		Subtotal decimal.Decimal
		Shipping decimal.Decimal
		Tax      decimal.Decimal
		Total    decimal.Decimal
	}

	Customer struct {
		FirstName  string
		LastName   string
		Email      string
		Address    string
		City       string
		PostalCode string
		Country    string
	}

	Order struct {
		ID       string
		Lines    []CartLine
		Totals   CheckoutTotals
		Customer Customer
		PlacedAt time.Time
	}
)
