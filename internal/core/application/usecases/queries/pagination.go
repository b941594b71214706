// Package queries contains read-only operations over the tailor shop data.
// Query handlers read straight from the database with SQL and return flat
// response structs; they never load aggregates.
package queries

import (
	"fmt"
	"math"
	"strings"

	"tailor/internal/pkg/errs"
)

const (
	// DefaultPageSize is used when a list query is built with page size 0.
	DefaultPageSize = 10
	// MaxPageSize bounds the page size of list queries.
	MaxPageSize = 100
	// MaxPage bounds the page number so the row offset stays representable.
	MaxPage = math.MaxInt32
)

// Sort directions accepted by list queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Pagination describes one page of a list result.
type Pagination struct {
	Page     int   `json:"current_page"`
	PageSize int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

func newPagination(page, pageSize int, total int64) Pagination {
	last := int((total + int64(pageSize) - 1) / int64(pageSize))
	if last < 1 {
		last = 1
	}
	return Pagination{Page: page, PageSize: pageSize, Total: total, LastPage: last}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return min(page, MaxPage)
}

// pageOffset is the number of rows skipped before page.
func pageOffset(page, pageSize int) int64 {
	return int64(page-1) * int64(pageSize)
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize == 0 {
		return DefaultPageSize, nil
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return 0, errs.NewValueIsOutOfRangeErrorWithCause("page size", pageSize, 1, MaxPageSize,
			fmt.Errorf("page size %d", pageSize))
	}
	return pageSize, nil
}

// normalizeDirection maps anything but "asc"/"desc" (any case) to fallback.
func normalizeDirection(raw, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SortAsc:
		return SortAsc
	case SortDesc:
		return SortDesc
	default:
		return fallback
	}
}

// normalizeSort returns raw when it is in allowed, otherwise fallback.
func normalizeSort(raw string, allowed []string, fallback string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, column := range allowed {
		if column == raw {
			return column
		}
	}
	return fallback
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
