package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
	"github.com/shopswift/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.CartListener = (*LedgerEventsProducer)(nil)
var _ port.WishlistListener = (*LedgerEventsProducer)(nil)

const (
	ledgerCart     = "cart"
	ledgerWishlist = "wishlist"
)

// LedgerEventsProducer is the notification sink the ledgers call after
// each mutation. Producing is fire-and-forget from the ledger's point
// of view: a broker failure is logged and never fails the mutation.
type LedgerEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewLedgerEventsProducer(opts ...ProducerOpt) (LedgerEventsProducer, error) {
	const op = "NewLedgerEventsProducer"

	options, err := buildProducerOpts(op, opts)
	if err != nil {
		return LedgerEventsProducer{}, err
	}
	return LedgerEventsProducer{options.cl, options.encoder}, nil
}

func (p LedgerEventsProducer) Close() {
	const op = "LedgerEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p LedgerEventsProducer) CartChanged(ctx context.Context, evt domain.CartEvent) {
	s := schema.LedgerEventV1{
		Ledger:      ledgerCart,
		Action:      string(evt.Action),
		ProductID:   int64(evt.Product.ID),
		ProductName: evt.Product.Name,
		Quantity:    int64(evt.Quantity),
		TotalItems:  int64(evt.TotalItems),
		Subtotal:    evt.Subtotal.String(),
	}
	if err := p.produce(ctx, s); err != nil {
		slog.Warn("failed to produce cart event", "err", err)
	}
}

func (p LedgerEventsProducer) WishlistChanged(ctx context.Context, evt domain.WishlistEvent) {
	s := schema.LedgerEventV1{
		Ledger:      ledgerWishlist,
		Action:      string(evt.Action),
		ProductID:   int64(evt.Product.ID),
		ProductName: evt.Product.Name,
		TotalItems:  int64(len(evt.Products)),
		Subtotal:    "0",
	}
	if err := p.produce(ctx, s); err != nil {
		slog.Warn("failed to produce wishlist event", "err", err)
	}
}

func (p LedgerEventsProducer) produce(ctx context.Context, s schema.LedgerEventV1) error {
	const op = "LedgerEventsProducer.produce"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	v, err := p.encoder.Encode(s)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r := &kgo.Record{Key: []byte(s.Ledger + "-" + strconv.FormatInt(s.ProductID, 10)), Value: v}
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
