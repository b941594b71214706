package commands

import (
	"context"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"

	"go.uber.org/zap"
)

// ChangeOrderStatusCommandHandler sets and persists an order status, then
// publishes the StatusChanged event.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, "ready")
//	if err != nil {
//	    return err // InvalidStatusError for unknown values
//	}
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     orderEventDispatcher
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		events:     newOrderEventDispatcher(publisher, logger),
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID(), false)
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.dispatch(ctx, uow)
	return o, nil
}
