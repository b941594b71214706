package http

import (
	"fmt"
	"net/http"

	"tailor/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathID binds a required int64 path parameter.
func pathID(c echo.Context, name string) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return kernel.NewID(raw)
}

// queryParam binds an optional query parameter into dest, which must be a
// pointer to a pointer. dest is left nil when the parameter is absent.
func queryParam(c echo.Context, name string, dest any) error {
	err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

type listParams struct {
	Search    *string
	Status    *string
	Sort      *string
	Direction *string
	Page      *int
	PerPage   *int
}

func bindListParams(c echo.Context) (listParams, error) {
	var p listParams
	for name, dest := range map[string]any{
		"search":    &p.Search,
		"status":    &p.Status,
		"sort":      &p.Sort,
		"direction": &p.Direction,
		"page":      &p.Page,
		"per_page":  &p.PerPage,
	} {
		if err := queryParam(c, name, dest); err != nil {
			return listParams{}, err
		}
	}
	return p, nil
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
