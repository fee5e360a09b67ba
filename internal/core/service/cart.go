package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
)

var _ port.CartKeeper = (*Cart)(nil)

// Cart is the session cart ledger: an ordered sequence of product lines
// keyed by product id, first-add order preserved. Every successful
// mutation notifies the registered listeners synchronously, under the
// same lock, so listeners observe mutations in the order they applied.
type Cart struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	products  port.ProductReader
	listeners []port.CartListener
}

// NewCart rehydrates the ledger from the snapshot loader. A load
// failure is not fatal: the session starts with an empty cart.
func NewCart(products port.ProductReader, snap port.SnapshotLoader) *Cart {
	const op = "NewCart"

	lines, err := snap.LoadCart()
	if err != nil {
		slog.Warn("failed to load cart snapshot", "op", op, "err", err)
		lines = nil
	}
	return &Cart{lines: lines, products: products}
}

// Watch registers a listener for cart mutations. Not safe to call
// concurrently with mutations; wire listeners before serving traffic.
func (c *Cart) Watch(l port.CartListener) {
	c.listeners = append(c.listeners, l)
}

func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.lines)
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalItems()
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal()
}

// Add puts quantity units of the product into the cart, creating a line
// or incrementing the existing one. Quantities below 1 are clamped to
// 1. The created flag tells the caller which case occurred.
func (c *Cart) Add(ctx context.Context, productID, quantity int) (domain.CartLine, bool, error) {
	const op = "Cart.Add"

	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.lineIndex(productID); i >= 0 {
		c.lines[i].Quantity += quantity
		line := c.lines[i]
		c.notify(ctx, domain.ActionUpdated, line.Product, line.Quantity)
		return line, false, nil
	}

	p, err := c.products.Product(productID)
	if err != nil {
		return domain.CartLine{}, false, fmt.Errorf("%s: %w", op, err)
	}

	line := domain.CartLine{Product: p, Quantity: quantity}
	c.lines = append(c.lines, line)
	c.notify(ctx, domain.ActionAdded, p, quantity)
	return line, true, nil
}

// SetQuantity overwrites the line's quantity. A quantity below 1
// removes the line. A product id absent from the cart is silently
// ignored: the caller is expected to have added it first.
func (c *Cart) SetQuantity(ctx context.Context, productID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.lineIndex(productID)
	if i < 0 {
		return nil
	}

	if quantity < 1 {
		c.removeLine(ctx, i)
		return nil
	}

	c.lines[i].Quantity = quantity
	line := c.lines[i]
	c.notify(ctx, domain.ActionUpdated, line.Product, line.Quantity)
	return nil
}

// Remove deletes the line if present; removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(ctx context.Context, productID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.lineIndex(productID)
	if i < 0 {
		return nil
	}
	c.removeLine(ctx, i)
	return nil
}

func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.notify(ctx, domain.ActionCleared, domain.Product{}, 0)
}

func (c *Cart) lineIndex(productID int) int {
	return slices.IndexFunc(c.lines, func(l domain.CartLine) bool {
		return l.Product.ID == productID
	})
}

func (c *Cart) removeLine(ctx context.Context, i int) {
	p := c.lines[i].Product
	c.lines = slices.Delete(c.lines, i, i+1)
	c.notify(ctx, domain.ActionRemoved, p, 0)
}

func (c *Cart) totalItems() (n int) {
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func (c *Cart) notify(ctx context.Context, action domain.LedgerAction, p domain.Product, quantity int) {
	evt := domain.CartEvent{
		Action:     action,
		Product:    p,
		Quantity:   quantity,
		TotalItems: c.totalItems(),
		Subtotal:   c.subtotal(),
		Lines:      slices.Clone(c.lines),
	}
	for _, l := range c.listeners {
		l.CartChanged(ctx, evt)
	}
}
