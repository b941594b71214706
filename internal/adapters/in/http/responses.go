package http

import (
	"net/url"
	"strconv"
	"time"

	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/core/domain/model/order"

	"github.com/oapi-codegen/nullable"
)

// Request bodies.

type newCustomerRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type customerPatchRequest struct {
	Name    nullable.Nullable[string] `json:"name"`
	Phone   nullable.Nullable[string] `json:"phone"`
	Address nullable.Nullable[string] `json:"address"`
}

type measurementRequest struct {
	Shoulder          *float64           `json:"shoulder"`
	Chest             *float64           `json:"chest"`
	Waist             *float64           `json:"waist"`
	Sleeve            *float64           `json:"sleeve"`
	OtherMeasurements map[string]float64 `json:"other_measurements"`
}

type measurementPatchRequest struct {
	Shoulder          nullable.Nullable[float64]            `json:"shoulder"`
	Chest             nullable.Nullable[float64]            `json:"chest"`
	Waist             nullable.Nullable[float64]            `json:"waist"`
	Sleeve            nullable.Nullable[float64]            `json:"sleeve"`
	OtherMeasurements nullable.Nullable[map[string]float64] `json:"other_measurements"`
}

type newOrderRequest struct {
	CustomerID kernel.ID   `json:"customer_id"`
	OrderDate  kernel.Date `json:"order_date"`
	Deadline   kernel.Date `json:"deadline"`
	ItemType   string      `json:"item_type"`
	Status     string      `json:"status"`
}

type orderPatchRequest struct {
	CustomerID nullable.Nullable[kernel.ID]   `json:"customer_id"`
	OrderDate  nullable.Nullable[kernel.Date] `json:"order_date"`
	Deadline   nullable.Nullable[kernel.Date] `json:"deadline"`
	ItemType   nullable.Nullable[string]      `json:"item_type"`
	Status     nullable.Nullable[string]      `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// Response bodies.

type customerResponse struct {
	ID        kernel.ID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCustomerResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

type measurementResponse struct {
	ID                kernel.ID          `json:"id"`
	CustomerID        kernel.ID          `json:"customer_id"`
	Shoulder          *float64           `json:"shoulder"`
	Chest             *float64           `json:"chest"`
	Waist             *float64           `json:"waist"`
	Sleeve            *float64           `json:"sleeve"`
	OtherMeasurements map[string]float64 `json:"other_measurements"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func newMeasurementResponse(m *measurement.Measurement) measurementResponse {
	values := m.Values()
	return measurementResponse{
		ID:                m.ID(),
		CustomerID:        m.CustomerID(),
		Shoulder:          values.Shoulder,
		Chest:             values.Chest,
		Waist:             values.Waist,
		Sleeve:            values.Sleeve,
		OtherMeasurements: values.Other,
		CreatedAt:         m.CreatedAt(),
		UpdatedAt:         m.UpdatedAt(),
	}
}

type orderResponse struct {
	ID          kernel.ID    `json:"id"`
	CustomerID  kernel.ID    `json:"customer_id"`
	OrderDate   kernel.Date  `json:"order_date"`
	Deadline    kernel.Date  `json:"deadline"`
	ItemType    string       `json:"item_type"`
	Status      order.Status `json:"status"`
	StatusLabel string       `json:"status_label"`
	StatusColor string       `json:"status_color"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func newOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:          o.ID(),
		CustomerID:  o.CustomerID(),
		OrderDate:   o.OrderDate(),
		Deadline:    o.Deadline(),
		ItemType:    o.ItemType(),
		Status:      o.Status(),
		StatusLabel: o.Status().Label(),
		StatusColor: o.Status().Color(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

type statusOption struct {
	Value order.Status `json:"value"`
	Label string       `json:"label"`
	Color string       `json:"color"`
}

type dashboardResponse struct {
	OrderSummary   []queries.StatusCount  `json:"order_summary"`
	CustomerGrowth []queries.MonthlyCount `json:"customer_growth"`
}

// pageLinks point at the neighbouring pages of a list. Prev and Next are
// null on the first and last page.
type pageLinks struct {
	First string  `json:"first"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
	Last  string  `json:"last"`
}

type pageResponse[T any, F any] struct {
	Data    []T                `json:"data"`
	Meta    queries.Pagination `json:"meta"`
	Links   pageLinks          `json:"links"`
	Filters F                  `json:"filters"`
}

// newPageLinks keeps every query parameter of u and only swaps page.
func newPageLinks(u *url.URL, p queries.Pagination) pageLinks {
	link := func(page int) string {
		q := u.Query()
		q.Set("page", strconv.Itoa(page))
		return u.Path + "?" + q.Encode()
	}

	links := pageLinks{First: link(1), Last: link(p.LastPage)}
	if p.Page > 1 {
		prev := link(min(p.Page-1, p.LastPage))
		links.Prev = &prev
	}
	if p.Page < p.LastPage {
		next := link(p.Page + 1)
		links.Next = &next
	}
	return links
}
