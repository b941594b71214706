package commands

import (
	"context"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateOrderCommandHandler applies partial updates to live orders.
//
// When either date is in the patch the deadline rule is checked against the
// effective pair: the new value where given, the stored value otherwise.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     orderEventDispatcher
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     newOrderEventDispatcher(publisher, logger),
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID(), false)
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()

	if customerID, ok := patched(patch.CustomerID); ok && customerID != o.CustomerID() {
		if _, err = uow.CustomerRepository().Get(ctx, customerID, false); err != nil {
			return nil, err
		}
		if err = o.Reassign(customerID); err != nil {
			return nil, err
		}
	}

	if patch.OrderDate.IsSpecified() || patch.Deadline.IsSpecified() {
		orderDate, deadline := o.OrderDate(), o.Deadline()
		if v, ok := patched(patch.OrderDate); ok {
			orderDate = v
		}
		if v, ok := patched(patch.Deadline); ok {
			deadline = v
		}
		if err = o.Reschedule(orderDate, deadline); err != nil {
			return nil, err
		}
	}

	if itemType, ok := patched(patch.ItemType); ok {
		if err = o.Retype(itemType); err != nil {
			return nil, err
		}
	}

	if status := cmd.Status(); status != nil {
		if err = o.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.dispatch(ctx, uow)
	return o, nil
}
