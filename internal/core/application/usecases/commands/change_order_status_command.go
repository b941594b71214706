package commands

import (
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand sets an order's status. Any status may follow any
// other, including itself.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand parses rawStatus. Unknown values fail with
// InvalidStatusError.
func NewChangeOrderStatusCommand(orderID kernel.ID, rawStatus string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	status, statusErr := order.ParseStatus(rawStatus)
	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = status
	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.ID   { return c.orderID }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }
