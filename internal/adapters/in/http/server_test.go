package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "tailor/internal/adapters/in/http"
	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/domain/services"
	"tailor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f handlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) { return f(ctx, in) }

type voidHandlerFunc[In any] func(ctx context.Context, in In) error

func (f voidHandlerFunc[In]) Handle(ctx context.Context, in In) error { return f(ctx, in) }

var fixedTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func newRouter(t *testing.T, h httpin.Handlers) *echo.Echo {
	t.Helper()
	e, err := httpin.NewRouter(context.Background(), httpin.NewServer(h), nil)
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.Error {
	t.Helper()
	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func persistedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.ID(5), kernel.ID(1), kernel.NewDate(2024, 1, 1), kernel.NewDate(2024, 1, 10),
		"Shirt", status, fixedTime, fixedTime, nil)
	require.NoError(t, err)
	return o
}

func TestHealth(t *testing.T) {
	rec := do(newRouter(t, httpin.Handlers{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestOrderStatuses(t *testing.T) {
	rec := do(newRouter(t, httpin.Handlers{}), http.MethodGet, "/api/v1/order-statuses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"value":"pending","label":"Pending","color":"gray"},
		{"value":"processing","label":"Processing","color":"yellow"},
		{"value":"ready","label":"Ready","color":"green"}
	]`, rec.Body.String())
}

func TestCreateCustomer(t *testing.T) {
	var received commands.CreateCustomerCommand
	e := newRouter(t, httpin.Handlers{
		CreateCustomer: handlerFunc[commands.CreateCustomerCommand, *customer.Customer](
			func(_ context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error) {
				received = cmd
				c, err := customer.NewCustomer(cmd.Name(), cmd.Phone(), cmd.Address())
				require.NoError(t, err)
				require.NoError(t, c.MarkPersisted(kernel.ID(1), fixedTime, fixedTime))
				return c, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/customers", `{"name":"Alice","phone":"555-0100"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Alice", received.Name())
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "555-0100", body["phone"])
	assert.Nil(t, body["address"])
}

func TestCreateCustomer_MissingNameFailsValidation(t *testing.T) {
	e := newRouter(t, httpin.Handlers{})

	rec := do(e, http.MethodPost, "/api/v1/customers", `{"phone":"555"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestCreateCustomer_DuplicatePhone(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		CreateCustomer: handlerFunc[commands.CreateCustomerCommand, *customer.Customer](
			func(context.Context, commands.CreateCustomerCommand) (*customer.Customer, error) {
				return nil, errs.NewDuplicateValueError("phone", "555")
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/customers", `{"name":"Alice","phone":"555"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteCustomer_ActiveOrders(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		DeleteCustomer: voidHandlerFunc[commands.DeleteCustomerCommand](
			func(context.Context, commands.DeleteCustomerCommand) error {
				return errs.NewBusinessRuleViolationError(services.CustomerHasActiveOrdersMessage)
			}),
	})

	rec := do(e, http.MethodDelete, "/api/v1/customers/3", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, services.CustomerHasActiveOrdersMessage, decodeError(t, rec).Message)
}

func TestDeleteCustomer_NoContent(t *testing.T) {
	var deleted kernel.ID
	e := newRouter(t, httpin.Handlers{
		DeleteCustomer: voidHandlerFunc[commands.DeleteCustomerCommand](
			func(_ context.Context, cmd commands.DeleteCustomerCommand) error {
				deleted = cmd.CustomerID()
				return nil
			}),
	})

	rec := do(e, http.MethodDelete, "/api/v1/customers/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, kernel.ID(3), deleted)
}

func TestGetCustomer_NotFound(t *testing.T) {
	var includeDeleted bool
	e := newRouter(t, httpin.Handlers{
		GetCustomer: handlerFunc[queries.GetCustomerQuery, queries.CustomerDetails](
			func(_ context.Context, q queries.GetCustomerQuery) (queries.CustomerDetails, error) {
				includeDeleted = q.IncludeDeleted()
				return queries.CustomerDetails{}, errs.NewObjectNotFoundError("customer", q.CustomerID())
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/customers/8?include_deleted=true", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, includeDeleted)
}

func TestGetCustomer_InvalidID(t *testing.T) {
	e := newRouter(t, httpin.Handlers{})

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/v1/customers/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/v1/customers/0", "").Code)
}

func TestListCustomers_LinksPreserveFilters(t *testing.T) {
	var received queries.ListCustomersQuery
	e := newRouter(t, httpin.Handlers{
		ListCustomers: handlerFunc[queries.ListCustomersQuery, queries.ListCustomersQueryResponse](
			func(_ context.Context, q queries.ListCustomersQuery) (queries.ListCustomersQueryResponse, error) {
				received = q
				return queries.ListCustomersQueryResponse{
					Items:      []queries.CustomerListItem{},
					Pagination: queries.Pagination{Page: 2, PageSize: 5, Total: 12, LastPage: 3},
					Filters:    queries.CustomerFilters{Search: "ali", Sort: "name", Direction: "asc"},
				}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/customers?search=ali&sort=name&direction=asc&page=2&per_page=5", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ali", received.Search())
	assert.Equal(t, 2, received.Page())
	assert.Equal(t, 5, received.PageSize())

	var body struct {
		Links struct {
			First string  `json:"first"`
			Prev  *string `json:"prev"`
			Next  *string `json:"next"`
			Last  string  `json:"last"`
		} `json:"links"`
		Meta queries.Pagination `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/api/v1/customers?direction=asc&page=1&per_page=5&search=ali&sort=name", body.Links.First)
	require.NotNil(t, body.Links.Prev)
	assert.Equal(t, body.Links.First, *body.Links.Prev)
	require.NotNil(t, body.Links.Next)
	assert.Contains(t, *body.Links.Next, "page=3")
	assert.Contains(t, body.Links.Last, "page=3")
	assert.Equal(t, int64(12), body.Meta.Total)
}

func TestListCustomers_PageSizeOutOfRange(t *testing.T) {
	rec := do(newRouter(t, httpin.Handlers{}), http.MethodGet, "/api/v1/customers?per_page=500", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCustomers_PageOutOfRange(t *testing.T) {
	e := newRouter(t, httpin.Handlers{})

	for _, page := range []string{"0", "9223372036854775807"} {
		rec := do(e, http.MethodGet, "/api/v1/customers?page="+page, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "page %s", page)
	}
}

func TestListOrders_RejectsNonNumericPage(t *testing.T) {
	rec := do(newRouter(t, httpin.Handlers{}), http.MethodGet, "/api/v1/orders?page=two", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_DeadlineRule(t *testing.T) {
	called := false
	e := newRouter(t, httpin.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
			func(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
				called = true
				_, err := order.NewOrder(cmd.CustomerID(), cmd.OrderDate(), cmd.Deadline(), cmd.ItemType())
				return nil, err
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/orders",
		`{"customer_id":1,"order_date":"2024-01-10","deadline":"2024-01-10","item_type":"Shirt"}`)

	require.True(t, called)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, order.DeadlineMustFollowOrderDateMessage, decodeError(t, rec).Message)
}

func TestCreateOrder_InvalidStatus(t *testing.T) {
	e := newRouter(t, httpin.Handlers{})

	rec := do(e, http.MethodPost, "/api/v1/orders",
		`{"customer_id":1,"order_date":"2024-01-01","deadline":"2024-01-10","item_type":"Shirt","status":"shipped"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateOrder_Created(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
			func(context.Context, commands.CreateOrderCommand) (*order.Order, error) {
				return persistedOrder(t, order.Pending), nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/orders",
		`{"customer_id":1,"order_date":"2024-01-01","deadline":"2024-01-10","item_type":"Shirt"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "Pending", body["status_label"])
	assert.Equal(t, "2024-01-10", body["deadline"])
}

func TestUpdateOrder_PassesOnlyPresentFields(t *testing.T) {
	var received commands.UpdateOrderCommand
	e := newRouter(t, httpin.Handlers{
		UpdateOrder: handlerFunc[commands.UpdateOrderCommand, *order.Order](
			func(_ context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
				received = cmd
				return persistedOrder(t, order.Ready), nil
			}),
	})

	rec := do(e, http.MethodPatch, "/api/v1/orders/5", `{"deadline":"2024-02-01","status":"ready"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patch := received.Patch()
	assert.False(t, patch.OrderDate.IsSpecified())
	assert.False(t, patch.ItemType.IsSpecified())
	deadline, err := patch.Deadline.Get()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", deadline.String())
}

func TestUpdateCustomer_DistinguishesAbsentNullAndValue(t *testing.T) {
	var received commands.UpdateCustomerCommand
	e := newRouter(t, httpin.Handlers{
		UpdateCustomer: handlerFunc[commands.UpdateCustomerCommand, *customer.Customer](
			func(_ context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error) {
				received = cmd
				return customer.RestoreCustomer(kernel.ID(1), "Alice", nil, nil, fixedTime, fixedTime, nil)
			}),
	})

	rec := do(e, http.MethodPatch, "/api/v1/customers/1", `{"phone":null,"address":"Main St 1"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patch := received.Patch()
	assert.False(t, patch.Name.IsSpecified())
	assert.True(t, patch.Phone.IsSpecified())
	assert.True(t, patch.Phone.IsNull())
	address, err := patch.Address.Get()
	require.NoError(t, err)
	assert.Equal(t, "Main St 1", address)
}

func TestChangeOrderStatus(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		ChangeOrderStatus: handlerFunc[commands.ChangeOrderStatusCommand, *order.Order](
			func(_ context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
				return persistedOrder(t, cmd.Status()), nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/orders/5/status", `{"status":"processing"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"processing"`)

	rec = do(e, http.MethodPost, "/api/v1/orders/5/status", `{"status":"Processing"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDashboard(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		GetOrderSummary: handlerFunc[queries.GetOrderSummaryQuery, []queries.StatusCount](
			func(context.Context, queries.GetOrderSummaryQuery) ([]queries.StatusCount, error) {
				return []queries.StatusCount{{Status: order.Pending, Label: "Pending", Color: "gray", Count: 2}}, nil
			}),
		GetCustomerGrowth: handlerFunc[queries.GetCustomerGrowthQuery, []queries.MonthlyCount](
			func(context.Context, queries.GetCustomerGrowthQuery) ([]queries.MonthlyCount, error) {
				return []queries.MonthlyCount{{Month: "2024-01", Count: 3}}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"order_summary":[{"status":"pending","label":"Pending","color":"gray","count":2}],
		"customer_growth":[{"month":"2024-01","count":3}]
	}`, rec.Body.String())
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		ListCustomersForSelection: handlerFunc[queries.ListCustomersForSelectionQuery, []queries.CustomerOption](
			func(context.Context, queries.ListCustomersForSelectionQuery) ([]queries.CustomerOption, error) {
				return nil, assert.AnError
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/customers/selection", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
}

func TestSwaggerDocIsServed(t *testing.T) {
	rec := do(newRouter(t, httpin.Handlers{}), http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
}
