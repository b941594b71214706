package queries

import (
	"context"
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its customer's name.
type GetOrderQuery struct {
	orderID        kernel.ID
	includeDeleted bool

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID, includeDeleted bool) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID:        orderID,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID    { return q.orderID }
func (q GetOrderQuery) IncludeDeleted() bool { return q.includeDeleted }

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderItem, error) {
	if err := query.Validate(); err != nil {
		return OrderItem{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(
		"SELECT "+orderColumns+`
		FROM orders o LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ? AND (? OR o.deleted_at IS NULL)`,
		query.OrderID().Int64(), query.IncludeDeleted(),
	).Scan(&rows).Error
	if err != nil {
		return OrderItem{}, err
	}
	if len(rows) == 0 {
		return OrderItem{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return rows[0].toItem()
}
