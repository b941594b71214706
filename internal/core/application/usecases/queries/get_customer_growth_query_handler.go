package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetCustomerGrowthQueryHandler aggregates customer sign-ups by month.
// Months without sign-ups are omitted.
type GetCustomerGrowthQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetCustomerGrowthQueryHandler uses now as the clock; nil means time.Now.
func NewGetCustomerGrowthQueryHandler(db *gorm.DB, now func() time.Time) GetCustomerGrowthQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetCustomerGrowthQueryHandler{db: db, now: now}
}

// Handle returns counts of live customers created since the same instant
// one year ago, in ascending month order.
func (h GetCustomerGrowthQueryHandler) Handle(ctx context.Context, query GetCustomerGrowthQuery) ([]MonthlyCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	since := h.now().UTC().AddDate(-1, 0, 0)

	growth := make([]MonthlyCount, 0, 13)
	err := h.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM customers
		WHERE deleted_at IS NULL AND created_at >= ?
		GROUP BY month
		ORDER BY month`, since).Scan(&growth).Error
	if err != nil {
		return nil, err
	}

	return growth, nil
}
