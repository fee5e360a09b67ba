package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
)

var _ port.WishlistKeeper = (*Wishlist)(nil)

// Wishlist is the session wishlist ledger: a set of products keyed by
// product id, insertion order preserved. Toggle is the single mutating
// entry point the add-to-wishlist affordance uses.
type Wishlist struct {
	mu        sync.Mutex
	products  []domain.Product
	reader    port.ProductReader
	listeners []port.WishlistListener
}

func NewWishlist(reader port.ProductReader, snap port.SnapshotLoader) *Wishlist {
	const op = "NewWishlist"

	products, err := snap.LoadWishlist()
	if err != nil {
		slog.Warn("failed to load wishlist snapshot", "op", op, "err", err)
		products = nil
	}
	return &Wishlist{products: products, reader: reader}
}

func (w *Wishlist) Watch(l port.WishlistListener) {
	w.listeners = append(w.listeners, l)
}

func (w *Wishlist) Products() []domain.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.products)
}

func (w *Wishlist) Contains(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index(productID) >= 0
}

// Add inserts the product; adding a product already present is a no-op.
func (w *Wishlist) Add(ctx context.Context, productID int) error {
	const op = "Wishlist.Add"

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.index(productID) >= 0 {
		return nil
	}

	p, err := w.reader.Product(productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w.products = append(w.products, p)
	w.notify(ctx, domain.ActionAdded, p)
	return nil
}

// Toggle removes the product when present and adds it when absent.
// The added flag reports which case occurred.
func (w *Wishlist) Toggle(ctx context.Context, productID int) (bool, error) {
	const op = "Wishlist.Toggle"

	w.mu.Lock()
	defer w.mu.Unlock()

	if i := w.index(productID); i >= 0 {
		w.removeAt(ctx, i)
		return false, nil
	}

	p, err := w.reader.Product(productID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	w.products = append(w.products, p)
	w.notify(ctx, domain.ActionAdded, p)
	return true, nil
}

func (w *Wishlist) Remove(ctx context.Context, productID int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.index(productID)
	if i < 0 {
		return nil
	}
	w.removeAt(ctx, i)
	return nil
}

func (w *Wishlist) Clear(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.products = nil
	w.notify(ctx, domain.ActionCleared, domain.Product{})
}

func (w *Wishlist) index(productID int) int {
	return slices.IndexFunc(w.products, func(p domain.Product) bool {
		return p.ID == productID
	})
}

func (w *Wishlist) removeAt(ctx context.Context, i int) {
	p := w.products[i]
	w.products = slices.Delete(w.products, i, i+1)
	w.notify(ctx, domain.ActionRemoved, p)
}

func (w *Wishlist) notify(ctx context.Context, action domain.LedgerAction, p domain.Product) {
	evt := domain.WishlistEvent{
		Action:   action,
		Product:  p,
		Products: slices.Clone(w.products),
	}
	for _, l := range w.listeners {
		l.WishlistChanged(ctx, evt)
	}
}
