package port

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
)

// Inbound ports, consumed by the view layer.

type CatalogBrowser interface {
	Browse(domain.FilterSpec) []domain.Product
	Product(id int) (domain.Product, error)
	Related(id, limit int) []domain.Product
	Categories() []domain.CategoryInfo
	PriceBounds() (min, max decimal.Decimal)
}

type CartKeeper interface {
	Lines() []domain.CartLine
	TotalItems() int
	Subtotal() decimal.Decimal
	Add(ctx context.Context, productID, quantity int) (line domain.CartLine, created bool, err error)
	SetQuantity(ctx context.Context, productID, quantity int) error
	Remove(ctx context.Context, productID int) error
	Clear(ctx context.Context)
}

type WishlistKeeper interface {
	Products() []domain.Product
	Toggle(ctx context.Context, productID int) (added bool, err error)
	Remove(ctx context.Context, productID int) error
	Contains(productID int) bool
	Clear(ctx context.Context)
}

type OrderPlacer interface {
	Totals() domain.CheckoutTotals
	PlaceOrder(ctx context.Context, customer domain.Customer) (domain.Order, error)
}

// Outbound ports, implemented by adapters.

type ProductReader interface {
	Product(id int) (domain.Product, error)
}

// A SnapshotLoader rehydrates ledgers at session start. Implementations
// treat malformed stored data as absent and erase the offending entry,
// so a load never fails the caller with bad-data errors.
type SnapshotLoader interface {
	LoadCart() ([]domain.CartLine, error)
	LoadWishlist() ([]domain.Product, error)
}

// Ledger listeners are invoked synchronously after every successful
// mutation, in registration order. A listener must not fail the
// mutation; persistence and notification failures stay inside it.
type (
	CartListener interface {
		CartChanged(ctx context.Context, evt domain.CartEvent)
	}

	WishlistListener interface {
		WishlistChanged(ctx context.Context, evt domain.WishlistEvent)
	}
)

type OrdersProducer interface {
	ProduceOrder(ctx context.Context, o domain.Order) error
}
