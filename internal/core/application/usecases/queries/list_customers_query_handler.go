package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListCustomersQueryHandler reads customer pages from the database.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle matches the search text as a case-insensitive prefix of name or
// phone. Ties in the sort column are broken by id in the same direction.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	where := []string{"deleted_at IS NULL"}
	var args []any
	if query.Search() != "" {
		pattern := escapeLike(query.Search()) + "%"
		where = append(where, "(name ILIKE ? OR phone ILIKE ?)")
		args = append(args, pattern, pattern)
	}
	whereSQL := strings.Join(where, " AND ")

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM customers WHERE "+whereSQL, args...).
		Scan(&total).Error; err != nil {
		return ListCustomersQueryResponse{}, err
	}

	direction := strings.ToUpper(query.Direction())
	listSQL := fmt.Sprintf(`
		SELECT id, name, phone, address, created_at, updated_at
		FROM customers
		WHERE %s
		ORDER BY %s %s, id %s
		LIMIT ? OFFSET ?`,
		whereSQL, pq.QuoteIdentifier(query.Sort()), direction, direction)

	items := make([]CustomerListItem, 0, query.PageSize())
	listArgs := append(args, query.PageSize(), pageOffset(query.Page(), query.PageSize()))
	if err := h.db.WithContext(ctx).Raw(listSQL, listArgs...).Scan(&items).Error; err != nil {
		return ListCustomersQueryResponse{}, err
	}

	return ListCustomersQueryResponse{
		Items:      items,
		Pagination: newPagination(query.Page(), query.PageSize(), total),
		Filters: CustomerFilters{
			Search:    query.Search(),
			Sort:      query.Sort(),
			Direction: query.Direction(),
		},
	}, nil
}
