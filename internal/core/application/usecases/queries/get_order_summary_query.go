package queries

import (
	"context"
	"errors"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery counts live orders per status.
type GetOrderSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderSummaryQuery() GetOrderSummaryQuery {
	return GetOrderSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// StatusCount is the number of orders in one status with its display data.
type StatusCount struct {
	Status order.Status `json:"status"`
	Label  string       `json:"label"`
	Color  string       `json:"color"`
	Count  int64        `json:"count"`
}

type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle always returns one entry per status in workflow order, with zero
// counts for statuses that have no orders.
func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context, query GetOrderSummaryQuery) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM orders
		WHERE deleted_at IS NULL
		GROUP BY status`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	statuses := order.AllStatuses()
	summary := make([]StatusCount, 0, len(statuses))
	for _, s := range statuses {
		summary = append(summary, StatusCount{
			Status: s,
			Label:  s.Label(),
			Color:  s.Color(),
			Count:  counts[s.String()],
		})
	}

	return summary, nil
}
