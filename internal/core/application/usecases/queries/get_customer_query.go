package queries

import (
	"context"
	"errors"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery fetches one customer. Soft-deleted customers are only
// visible with includeDeleted.
type GetCustomerQuery struct {
	customerID     kernel.ID
	includeDeleted bool

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.ID, includeDeleted bool) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{
		customerID:     customerID,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() kernel.ID { return q.customerID }
func (q GetCustomerQuery) IncludeDeleted() bool  { return q.includeDeleted }

// CustomerDetails is a customer with its order and measurement counts.
type CustomerDetails struct {
	ID               kernel.ID  `json:"id"`
	Name             string     `json:"name"`
	Phone            *string    `json:"phone"`
	Address          *string    `json:"address"`
	OrdersCount      int64      `json:"orders_count"`
	MeasurementCount int64      `json:"measurements_count"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerDetails, error) {
	if err := query.Validate(); err != nil {
		return CustomerDetails{}, err
	}

	var rows []CustomerDetails
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id, c.name, c.phone, c.address, c.created_at, c.updated_at, c.deleted_at,
			(SELECT COUNT(*) FROM orders o WHERE o.customer_id = c.id AND o.deleted_at IS NULL) AS orders_count,
			(SELECT COUNT(*) FROM measurements m WHERE m.customer_id = c.id) AS measurement_count
		FROM customers c
		WHERE c.id = ? AND (? OR c.deleted_at IS NULL)`,
		query.CustomerID().Int64(), query.IncludeDeleted()).Scan(&rows).Error
	if err != nil {
		return CustomerDetails{}, err
	}

	if len(rows) == 0 {
		return CustomerDetails{}, errs.NewObjectNotFoundError("customer", query.CustomerID())
	}

	return rows[0], nil
}
