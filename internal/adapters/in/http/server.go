// Package http exposes the tailor shop over a JSON HTTP API built on echo.
package http

import (
	"context"
	"net/http"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handler runs one command or query and returns its result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// VoidHandler runs one command that has no result.
type VoidHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers lists every use case the API serves.
type Handlers struct {
	CreateCustomer Handler[commands.CreateCustomerCommand, *customer.Customer]
	UpdateCustomer Handler[commands.UpdateCustomerCommand, *customer.Customer]
	DeleteCustomer VoidHandler[commands.DeleteCustomerCommand]

	CreateMeasurement Handler[commands.CreateMeasurementCommand, *measurement.Measurement]
	UpdateMeasurement Handler[commands.UpdateMeasurementCommand, *measurement.Measurement]
	DeleteMeasurement VoidHandler[commands.DeleteMeasurementCommand]

	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder       Handler[commands.UpdateOrderCommand, *order.Order]
	ChangeOrderStatus Handler[commands.ChangeOrderStatusCommand, *order.Order]
	DeleteOrder       VoidHandler[commands.DeleteOrderCommand]

	ListCustomers             Handler[queries.ListCustomersQuery, queries.ListCustomersQueryResponse]
	ListCustomersForSelection Handler[queries.ListCustomersForSelectionQuery, []queries.CustomerOption]
	GetCustomer               Handler[queries.GetCustomerQuery, queries.CustomerDetails]
	GetCustomerGrowth         Handler[queries.GetCustomerGrowthQuery, []queries.MonthlyCount]
	ListMeasurements          Handler[queries.ListMeasurementsByCustomerQuery, []queries.MeasurementItem]
	ListOrders                Handler[queries.ListOrdersQuery, queries.ListOrdersQueryResponse]
	GetOrder                  Handler[queries.GetOrderQuery, queries.OrderItem]
	GetOrderSummary           Handler[queries.GetOrderSummaryQuery, []queries.StatusCount]
}

// Server translates HTTP requests into commands and queries. Handlers return
// domain errors unchanged; errorHandler turns them into responses.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := s.h.GetOrderSummary.Handle(ctx, queries.NewGetOrderSummaryQuery())
	if err != nil {
		return err
	}
	growth, err := s.h.GetCustomerGrowth.Handle(ctx, queries.NewGetCustomerGrowthQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{OrderSummary: summary, CustomerGrowth: growth})
}

// ListOrderStatuses handles GET /api/v1/order-statuses.
func (s *Server) ListOrderStatuses(c echo.Context) error {
	statuses := order.AllStatuses()
	response := make([]statusOption, len(statuses))
	for i, status := range statuses {
		response[i] = statusOption{Value: status, Label: status.Label(), Color: status.Color()}
	}
	return c.JSON(http.StatusOK, response)
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(c echo.Context) error {
	params, err := bindListParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomersQuery(
		value(params.Search), value(params.Sort), value(params.Direction),
		value(params.Page), value(params.PerPage),
	)
	if err != nil {
		return err
	}

	result, err := s.h.ListCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pageResponse[queries.CustomerListItem, queries.CustomerFilters]{
		Data:    result.Items,
		Meta:    result.Pagination,
		Links:   newPageLinks(c.Request().URL, result.Pagination),
		Filters: result.Filters,
	})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var body newCustomerRequest
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Phone, body.Address)
	if err != nil {
		return err
	}

	created, err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newCustomerResponse(created))
}

// ListCustomersForSelection handles GET /api/v1/customers/selection.
func (s *Server) ListCustomersForSelection(c echo.Context) error {
	options, err := s.h.ListCustomersForSelection.Handle(c.Request().Context(), queries.NewListCustomersForSelectionQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, options)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var includeDeleted *bool
	if err = queryParam(c, "include_deleted", &includeDeleted); err != nil {
		return err
	}

	query, err := queries.NewGetCustomerQuery(id, value(includeDeleted))
	if err != nil {
		return err
	}

	details, err := s.h.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// UpdateCustomer handles PATCH /api/v1/customers/:id.
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var body customerPatchRequest
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, commands.CustomerPatch{
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCustomerResponse(updated))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMeasurements handles GET /api/v1/customers/:id/measurements.
func (s *Server) ListMeasurements(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewListMeasurementsByCustomerQuery(id)
	if err != nil {
		return err
	}

	items, err := s.h.ListMeasurements.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateMeasurement handles POST /api/v1/customers/:id/measurements.
func (s *Server) CreateMeasurement(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var body measurementRequest
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateMeasurementCommand(id, measurement.Values{
		Shoulder: body.Shoulder,
		Chest:    body.Chest,
		Waist:    body.Waist,
		Sleeve:   body.Sleeve,
		Other:    body.OtherMeasurements,
	})
	if err != nil {
		return err
	}

	created, err := s.h.CreateMeasurement.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newMeasurementResponse(created))
}

// UpdateMeasurement handles PATCH /api/v1/measurements/:id.
func (s *Server) UpdateMeasurement(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var body measurementPatchRequest
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMeasurementCommand(id, commands.MeasurementPatch{
		Shoulder: body.Shoulder,
		Chest:    body.Chest,
		Waist:    body.Waist,
		Sleeve:   body.Sleeve,
		Other:    body.OtherMeasurements,
	})
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateMeasurement.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newMeasurementResponse(updated))
}

// DeleteMeasurement handles DELETE /api/v1/measurements/:id.
func (s *Server) DeleteMeasurement(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMeasurementCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteMeasurement.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	params, err := bindListParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(
		value(params.Search), value(params.Status), value(params.Sort), value(params.Direction),
		value(params.Page), value(params.PerPage),
	)
	if err != nil {
		return err
	}

	result, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pageResponse[queries.OrderItem, queries.OrderFilters]{
		Data:    result.Items,
		Meta:    result.Pagination,
		Links:   newPageLinks(c.Request().URL, result.Pagination),
		Filters: result.Filters,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body newOrderRequest
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerID, body.OrderDate, body.Deadline, body.ItemType, body.Status)
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var includeDeleted *bool
	if err = queryParam(c, "include_deleted", &includeDeleted); err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id, value(includeDeleted))
	if err != nil {
		return err
	}

	item, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var body orderPatchRequest
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, commands.OrderPatch{
		CustomerID: body.CustomerID,
		OrderDate:  body.OrderDate,
		Deadline:   body.Deadline,
		ItemType:   body.ItemType,
		Status:     body.Status,
	})
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrderResponse(updated))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var body statusRequest
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
