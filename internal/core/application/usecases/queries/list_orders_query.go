package queries

import (
	"errors"
	"strings"

	"tailor/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderSortColumns lists the columns orders can be sorted by.
var OrderSortColumns = []string{"deadline", "order_date", "item_type", "status", "created_at", "id"}

// ListOrdersQuery pages through live orders.
//
// Example:
//
//	query, err := NewListOrdersQuery("smith", "pending", "", "", 1, 0)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	// pending orders of customers named like "smith", nearest deadline first
type ListOrdersQuery struct {
	search    string
	status    string
	sort      string
	direction string
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery normalizes the inputs: unknown sort columns fall back to
// deadline and unknown directions to asc. The status filter is compared as
// given, so a value that names no status matches nothing.
func NewListOrdersQuery(search, status, sort, direction string, page, pageSize int) (ListOrdersQuery, error) {
	size, err := normalizePageSize(pageSize)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		search:    strings.TrimSpace(search),
		status:    strings.TrimSpace(status),
		sort:      normalizeSort(sort, OrderSortColumns, "deadline"),
		direction: normalizeDirection(direction, SortAsc),
		page:      normalizePage(page),
		pageSize:  size,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Search() string    { return q.search }
func (q ListOrdersQuery) Status() string    { return q.status }
func (q ListOrdersQuery) Sort() string      { return q.sort }
func (q ListOrdersQuery) Direction() string { return q.direction }
func (q ListOrdersQuery) Page() int         { return q.page }
func (q ListOrdersQuery) PageSize() int     { return q.pageSize }

type OrderFilters struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	Sort      string `json:"sort"`
	Direction string `json:"direction"`
}

// ListOrdersQueryResponse is one page of orders.
type ListOrdersQueryResponse struct {
	Items      []OrderItem  `json:"data"`
	Pagination Pagination   `json:"meta"`
	Filters    OrderFilters `json:"filters"`
}
