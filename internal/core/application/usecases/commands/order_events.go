package commands

import (
	"context"
	"time"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"

	"go.uber.org/zap"
)

// publishTimeout bounds the broker round trip made on the request path.
const publishTimeout = 3 * time.Second

// orderEventDispatcher publishes the events of orders written in a committed
// unit of work. Failures are logged; the command has already succeeded by then.
type orderEventDispatcher struct {
	publisher ports.OrderEventPublisher
	logger    *zap.Logger
	timeout   time.Duration
}

func newOrderEventDispatcher(publisher ports.OrderEventPublisher, logger *zap.Logger) orderEventDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return orderEventDispatcher{publisher: publisher, logger: logger, timeout: publishTimeout}
}

func (d orderEventDispatcher) dispatch(ctx context.Context, tracker AggregateTracker) {
	if d.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	for _, aggregate := range tracker.TrackedAggregates() {
		o, ok := aggregate.(*order.Order)
		if !ok {
			continue
		}
		d.publish(ctx, o)
	}
}

func (d orderEventDispatcher) publish(ctx context.Context, o *order.Order) {
	defer o.ClearDomainEvents()

	for _, event := range o.DomainEvents() {
		if err := d.publisher.PublishStatusChanged(ctx, event); err != nil {
			d.logger.Warn("publish order status change",
				zap.Int64("order_id", event.OrderID.Int64()),
				zap.String("to", event.To.String()),
				zap.Error(err),
			)
		}
	}
}
