package queries

import (
	"context"
	"errors"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetDueOrdersQueryIsNotConstructed = errors.New(
	"GetDueOrdersQuery must be created via NewGetDueOrdersQuery constructor",
)

// MaxDueWithinDays bounds the look-ahead of GetDueOrdersQuery.
const MaxDueWithinDays = 365

// GetDueOrdersQuery finds live orders that are not ready and whose deadline
// falls within the next withinDays days. Overdue orders are included.
type GetDueOrdersQuery struct {
	withinDays int

	guard guard.ConstructorGuard
}

func NewGetDueOrdersQuery(withinDays int) (GetDueOrdersQuery, error) {
	if withinDays < 0 || withinDays > MaxDueWithinDays {
		return GetDueOrdersQuery{}, errs.NewValueIsOutOfRangeError("within days", withinDays, 0, MaxDueWithinDays)
	}
	return GetDueOrdersQuery{withinDays: withinDays, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDueOrdersQueryIsNotConstructed)
}

func (q GetDueOrdersQuery) WithinDays() int { return q.withinDays }

type GetDueOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetDueOrdersQueryHandler uses now as the clock; nil means time.Now.
func NewGetDueOrdersQueryHandler(db *gorm.DB, now func() time.Time) GetDueOrdersQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetDueOrdersQueryHandler{db: db, now: now}
}

// Handle returns the due orders, earliest deadline first.
func (h GetDueOrdersQueryHandler) Handle(ctx context.Context, query GetDueOrdersQuery) ([]OrderItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	until := kernel.DateFromTime(h.now().UTC()).AddDays(query.WithinDays())

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(
		"SELECT "+orderColumns+`
		FROM orders o LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.deleted_at IS NULL AND o.status <> ? AND o.deadline <= ?
		ORDER BY o.deadline ASC, o.id ASC`,
		order.Ready.String(), until.String(),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toOrderItems(rows)
}
