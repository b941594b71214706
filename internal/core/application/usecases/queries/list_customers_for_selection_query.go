package queries

import (
	"context"
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCustomersForSelectionQueryIsNotConstructed = errors.New(
	"ListCustomersForSelectionQuery must be created via NewListCustomersForSelectionQuery constructor",
)

// ListCustomersForSelectionQuery returns every live customer for pickers.
type ListCustomersForSelectionQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersForSelectionQuery() ListCustomersForSelectionQuery {
	return ListCustomersForSelectionQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersForSelectionQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersForSelectionQueryIsNotConstructed)
}

// CustomerOption is the id and name of one customer.
type CustomerOption struct {
	ID   kernel.ID `json:"id"`
	Name string    `json:"name"`
}

type ListCustomersForSelectionQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersForSelectionQueryHandler(db *gorm.DB) ListCustomersForSelectionQueryHandler {
	return ListCustomersForSelectionQueryHandler{db: db}
}

// Handle lists customers by name, unpaginated.
func (h ListCustomersForSelectionQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersForSelectionQuery,
) ([]CustomerOption, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	options := make([]CustomerOption, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM customers
		WHERE deleted_at IS NULL
		ORDER BY name ASC, id ASC`).Scan(&options).Error
	if err != nil {
		return nil, err
	}

	return options, nil
}
