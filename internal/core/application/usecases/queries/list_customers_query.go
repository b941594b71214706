package queries

import (
	"errors"
	"strings"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// CustomerSortColumns lists the columns customers can be sorted by.
var CustomerSortColumns = []string{"name", "created_at", "id"}

// ListCustomersQuery pages through live customers.
//
// Example:
//
//	query, err := NewListCustomersQuery("ali", "name", "asc", 2, 0)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	// page.Items holds customers whose name or phone starts with "ali"
type ListCustomersQuery struct {
	search    string
	sort      string
	direction string
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// NewListCustomersQuery normalizes the inputs: unknown sort columns fall back
// to id, unknown directions to desc, pages below 1 to 1 and page size 0 to
// DefaultPageSize.
func NewListCustomersQuery(search, sort, direction string, page, pageSize int) (ListCustomersQuery, error) {
	size, err := normalizePageSize(pageSize)
	if err != nil {
		return ListCustomersQuery{}, err
	}

	return ListCustomersQuery{
		search:    strings.TrimSpace(search),
		sort:      normalizeSort(sort, CustomerSortColumns, "id"),
		direction: normalizeDirection(direction, SortDesc),
		page:      normalizePage(page),
		pageSize:  size,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Search() string    { return q.search }
func (q ListCustomersQuery) Sort() string      { return q.sort }
func (q ListCustomersQuery) Direction() string { return q.direction }
func (q ListCustomersQuery) Page() int         { return q.page }
func (q ListCustomersQuery) PageSize() int     { return q.pageSize }

// CustomerFilters echoes the effective filters so that page links can
// preserve them.
type CustomerFilters struct {
	Search    string `json:"search"`
	Sort      string `json:"sort"`
	Direction string `json:"direction"`
}

// CustomerListItem is one customer row.
type CustomerListItem struct {
	ID        kernel.ID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListCustomersQueryResponse is one page of customers.
type ListCustomersQueryResponse struct {
	Items      []CustomerListItem `json:"data"`
	Pagination Pagination         `json:"meta"`
	Filters    CustomerFilters    `json:"filters"`
}
