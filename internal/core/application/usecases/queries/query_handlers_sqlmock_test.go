package queries_test

import (
	"context"
	"math"
	"regexp"
	"testing"
	"time"

	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, sqlMock
}

var orderRowColumns = []string{
	"id", "customer_id", "customer_name", "order_date", "deadline",
	"item_type", "status", "created_at", "updated_at", "deleted_at",
}

func TestListOrdersQueryHandler_QuotesSortColumnAndBindsFilters(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewListOrdersQueryHandler(db)
	query, err := queries.NewListOrdersQuery("50%", "pending", "item_type", "desc", 2, 5)
	require.NoError(t, err)

	sqlMock.ExpectQuery(regexp.QuoteMeta("(c.name ILIKE $1 AND c.deleted_at IS NULL) AND o.status = $2")).
		WithArgs(`%50\%%`, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	sqlMock.ExpectQuery(regexp.QuoteMeta(`ORDER BY o."item_type" DESC, o.id DESC LIMIT $3 OFFSET $4`)).
		WithArgs(`%50\%%`, "pending", 5, 5).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(
			6, 1, "50% Tailors", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Suit", "pending", created, created, nil,
		))

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	item := result.Items[0]
	assert.Equal(t, kernel.ID(6), item.ID)
	assert.Equal(t, order.Pending, item.Status)
	assert.Equal(t, "Pending", item.StatusLabel)
	assert.Equal(t, "2024-01-10", item.Deadline.String())
	assert.Equal(t, queries.Pagination{Page: 2, PageSize: 5, Total: 7, LastPage: 2}, result.Pagination)
	assert.Equal(t, queries.OrderFilters{Search: "50%", Status: "pending", Sort: "item_type", Direction: "desc"}, result.Filters)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestListOrdersQueryHandler_UnknownStoredStatus(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewListOrdersQueryHandler(db)
	query, err := queries.NewListOrdersQuery("", "", "", "", 1, 10)
	require.NoError(t, err)

	sqlMock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	now := time.Now()
	sqlMock.ExpectQuery(regexp.QuoteMeta(`ORDER BY o."deadline" ASC, o.id ASC`)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(1, 1, "Bob", now, now, "Shirt", "lost", now, now, nil))

	_, err = handler.Handle(context.Background(), query)

	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestListCustomersQueryHandler_PrefixSearchOnNameAndPhone(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewListCustomersQueryHandler(db)
	query, err := queries.NewListCustomersQuery("a_b", "name", "asc", 1, 10)
	require.NoError(t, err)

	sqlMock.ExpectQuery(regexp.QuoteMeta("(name ILIKE $1 OR phone ILIKE $2)")).
		WithArgs(`a\_b%`, `a\_b%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	sqlMock.ExpectQuery(regexp.QuoteMeta(`ORDER BY "name" ASC, id ASC`)).
		WithArgs(`a\_b%`, `a\_b%`, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "address", "created_at", "updated_at"}))

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Pagination.LastPage)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestListCustomersQueryHandler_HugePageKeepsOffsetPositive(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewListCustomersQueryHandler(db)
	query, err := queries.NewListCustomersQuery("", "", "", math.MaxInt64, 10)
	require.NoError(t, err)

	sqlMock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	sqlMock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, int64(queries.MaxPage-1)*10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "address", "created_at", "updated_at"}))

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, queries.MaxPage, result.Pagination.Page)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestListOrdersQueryHandler_HugePageKeepsOffsetPositive(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewListOrdersQueryHandler(db)
	query, err := queries.NewListOrdersQuery("", "", "", "", math.MaxInt64, 10)
	require.NoError(t, err)

	sqlMock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	sqlMock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, int64(queries.MaxPage-1)*10).
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGetOrderSummaryQueryHandler_FillsMissingStatuses(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewGetOrderSummaryQueryHandler(db)

	sqlMock.ExpectQuery(regexp.QuoteMeta("GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("ready", 4))

	summary, err := handler.Handle(context.Background(), queries.NewGetOrderSummaryQuery())

	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, queries.StatusCount{Status: order.Pending, Label: "Pending", Color: "gray", Count: 0}, summary[0])
	assert.Equal(t, queries.StatusCount{Status: order.Processing, Label: "Processing", Color: "yellow", Count: 0}, summary[1])
	assert.Equal(t, queries.StatusCount{Status: order.Ready, Label: "Ready", Color: "green", Count: 4}, summary[2])
}

func TestGetCustomerGrowthQueryHandler_UsesClock(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	handler := queries.NewGetCustomerGrowthQueryHandler(db, func() time.Time { return now })

	sqlMock.ExpectQuery(regexp.QuoteMeta("TO_CHAR(created_at, 'YYYY-MM')")).
		WithArgs(time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"month", "count"}).AddRow("2024-01", 2).AddRow("2024-05", 1))

	growth, err := handler.Handle(context.Background(), queries.NewGetCustomerGrowthQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.MonthlyCount{{Month: "2024-01", Count: 2}, {Month: "2024-05", Count: 1}}, growth)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGetDueOrdersQueryHandler_BindsCutoffDate(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	now := time.Date(2024, 3, 30, 23, 30, 0, 0, time.UTC)
	handler := queries.NewGetDueOrdersQueryHandler(db, func() time.Time { return now })
	query, err := queries.NewGetDueOrdersQuery(3)
	require.NoError(t, err)

	sqlMock.ExpectQuery(regexp.QuoteMeta("o.status <> $1 AND o.deadline <= $2")).
		WithArgs("ready", "2024-04-02").
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	due, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Empty(t, due)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGetCustomerQueryHandler_NotFound(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewGetCustomerQueryHandler(db)
	query, err := queries.NewGetCustomerQuery(kernel.ID(9), false)
	require.NoError(t, err)

	sqlMock.ExpectQuery("FROM customers c").
		WithArgs(int64(9), false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = handler.Handle(context.Background(), query)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListMeasurementsByCustomerQueryHandler_MissingCustomer(t *testing.T) {
	db, sqlMock := newMockedDB(t)
	handler := queries.NewListMeasurementsByCustomerQueryHandler(db)
	query, err := queries.NewListMeasurementsByCustomerQuery(kernel.ID(4))
	require.NoError(t, err)

	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err = handler.Handle(context.Background(), query)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestQueryHandlers_RejectUnconstructedQuery(t *testing.T) {
	db, _ := newMockedDB(t)

	_, err := queries.NewListOrdersQueryHandler(db).Handle(context.Background(), queries.ListOrdersQuery{})
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)

	_, err = queries.NewGetOrderQueryHandler(db).Handle(context.Background(), queries.GetOrderQuery{})
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
