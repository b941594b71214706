package queries

import (
	"errors"

	"tailor/internal/pkg/guard"
)

var ErrGetCustomerGrowthQueryIsNotConstructed = errors.New(
	"GetCustomerGrowthQuery must be created via NewGetCustomerGrowthQuery constructor",
)

// GetCustomerGrowthQuery counts new customers per month over the last year.
type GetCustomerGrowthQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomerGrowthQuery() GetCustomerGrowthQuery {
	return GetCustomerGrowthQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomerGrowthQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerGrowthQueryIsNotConstructed)
}

// MonthlyCount is the number of customers created in one "YYYY-MM" month.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}
