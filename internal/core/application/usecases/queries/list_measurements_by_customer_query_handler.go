package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListMeasurementsByCustomerQueryHandler struct {
	db *gorm.DB
}

func NewListMeasurementsByCustomerQueryHandler(db *gorm.DB) ListMeasurementsByCustomerQueryHandler {
	return ListMeasurementsByCustomerQueryHandler{db: db}
}

type measurementRow struct {
	ID                int64
	CustomerID        int64
	Shoulder          *float64
	Chest             *float64
	Waist             *float64
	Sleeve            *float64
	OtherMeasurements []byte
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Handle fails with ObjectNotFoundError when the customer is missing or
// soft-deleted. Measurements come back in insertion order.
func (h ListMeasurementsByCustomerQueryHandler) Handle(
	ctx context.Context,
	query ListMeasurementsByCustomerQuery,
) ([]MeasurementItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	if err := h.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM customers WHERE id = ? AND deleted_at IS NULL)",
		query.CustomerID().Int64(),
	).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", query.CustomerID())
	}

	var rows []measurementRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, shoulder, chest, waist, sleeve, other_measurements, created_at, updated_at
		FROM measurements
		WHERE customer_id = ?
		ORDER BY id`, query.CustomerID().Int64()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]MeasurementItem, 0, len(rows))
	for _, row := range rows {
		item := MeasurementItem{
			ID:         kernel.ID(row.ID),
			CustomerID: kernel.ID(row.CustomerID),
			Shoulder:   row.Shoulder,
			Chest:      row.Chest,
			Waist:      row.Waist,
			Sleeve:     row.Sleeve,
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		}
		if len(row.OtherMeasurements) > 0 {
			if err := json.Unmarshal(row.OtherMeasurements, &item.OtherMeasurements); err != nil {
				return nil, fmt.Errorf("decode other measurements of %d: %w", row.ID, err)
			}
		}
		items = append(items, item)
	}

	return items, nil
}
