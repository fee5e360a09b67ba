package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
	"github.com/shopswift/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrdersProducer = (*OrdersProducer)(nil)

// OrdersProducer submits placed orders to the orders topic. Unlike the
// ledger notifications this is not fire-and-forget: checkout reports
// the failure to the customer.
type OrdersProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrdersProducer(opts ...ProducerOpt) (OrdersProducer, error) {
	const op = "NewOrdersProducer"

	options, err := buildProducerOpts(op, opts)
	if err != nil {
		return OrdersProducer{}, err
	}
	return OrdersProducer{options.cl, options.encoder}, nil
}

func (p OrdersProducer) Close() {
	const op = "OrdersProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrdersProducer) ProduceOrder(ctx context.Context, o domain.Order) error {
	const op = "OrdersProducer.ProduceOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	v, err := p.encoder.Encode(p.toSchema(o))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r := &kgo.Record{Key: []byte(o.ID), Value: v}
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p OrdersProducer) toSchema(o domain.Order) (s schema.OrderV1) {
	s.OrderID = o.ID
	s.Subtotal = o.Totals.Subtotal.String()
	s.Shipping = o.Totals.Shipping.String()
	s.Tax = o.Totals.Tax.String()
	s.Total = o.Totals.Total.String()
	s.CustomerEmail = o.Customer.Email
	s.PlacedAt = o.PlacedAt.Format(time.RFC3339)

	s.Lines = make([]schema.OrderLineV1, len(o.Lines))
	for i, l := range o.Lines {
		s.Lines[i] = schema.OrderLineV1{
			ProductID: int64(l.Product.ID),
			Name:      l.Product.Name,
			UnitPrice: l.Product.EffectivePrice().String(),
			Quantity:  int64(l.Quantity),
		}
	}
	return s
}
