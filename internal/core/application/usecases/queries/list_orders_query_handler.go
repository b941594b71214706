package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order pages joined with customer names.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle matches the search text anywhere in the name of a live customer,
// ignoring case. Orders of soft-deleted customers are still listed but never
// match a search.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := []string{"o.deleted_at IS NULL"}
	var args []any
	if query.Search() != "" {
		where = append(where, "(c.name ILIKE ? AND c.deleted_at IS NULL)")
		args = append(args, "%"+escapeLike(query.Search())+"%")
	}
	if query.Status() != "" {
		where = append(where, "o.status = ?")
		args = append(args, query.Status())
	}
	fromSQL := "FROM orders o LEFT JOIN customers c ON c.id = o.customer_id WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := h.db.WithContext(ctx).Raw("SELECT COUNT(*) "+fromSQL, args...).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	direction := strings.ToUpper(query.Direction())
	listSQL := fmt.Sprintf("SELECT %s %s ORDER BY o.%s %s, o.id %s LIMIT ? OFFSET ?",
		orderColumns, fromSQL, pq.QuoteIdentifier(query.Sort()), direction, direction)

	var rows []orderRow
	listArgs := append(args, query.PageSize(), pageOffset(query.Page(), query.PageSize()))
	if err := h.db.WithContext(ctx).Raw(listSQL, listArgs...).Scan(&rows).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	items, err := toOrderItems(rows)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Items:      items,
		Pagination: newPagination(query.Page(), query.PageSize(), total),
		Filters: OrderFilters{
			Search:    query.Search(),
			Status:    query.Status(),
			Sort:      query.Sort(),
			Direction: query.Direction(),
		},
	}, nil
}
