package ports

import (
	"context"

	"tailor/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order domain events to other systems once the
// transaction that produced them has committed.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
