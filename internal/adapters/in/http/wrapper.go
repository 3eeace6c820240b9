package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of api/openapi.yaml.
type ServerInterface interface {
	// (GET /customers)
	GetCustomers(ctx echo.Context, params ListParams) error
	// (POST /customers)
	AddCustomer(ctx echo.Context) error
	// (POST /customers/next)
	ProcessNextCustomer(ctx echo.Context) error
	// (GET /parcels)
	GetParcels(ctx echo.Context, params ListParams) error
	// (POST /parcels)
	AddParcel(ctx echo.Context) error
	// (GET /parcels/{id})
	GetParcel(ctx echo.Context, id string) error
	// (POST /collections)
	CollectParcel(ctx echo.Context) error
	// (GET /processed)
	GetProcessed(ctx echo.Context, params ListParams) error
	// (GET /report)
	GetReport(ctx echo.Context, params GetReportParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomers(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCustomers(ctx, params)
}

// AddCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) AddCustomer(ctx echo.Context) error {
	return w.Handler.AddCustomer(ctx)
}

// ProcessNextCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) ProcessNextCustomer(ctx echo.Context) error {
	return w.Handler.ProcessNextCustomer(ctx)
}

// GetParcels converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcels(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetParcels(ctx, params)
}

// AddParcel converts echo context to params.
func (w *ServerInterfaceWrapper) AddParcel(ctx echo.Context) error {
	return w.Handler.AddParcel(ctx)
}

// GetParcel converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return w.Handler.GetParcel(ctx, id)
}

// CollectParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CollectParcel(ctx echo.Context) error {
	return w.Handler.CollectParcel(ctx)
}

// GetProcessed converts echo context to params.
func (w *ServerInterfaceWrapper) GetProcessed(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetProcessed(ctx, params)
}

// GetReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetReport(ctx echo.Context) error {
	var params GetReportParams
	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.GetReport(ctx, params)
}

func bindListParams(ctx echo.Context) (ListParams, error) {
	var params ListParams
	err := runtime.BindQueryParameter("form", true, false, "format", ctx.QueryParams(), &params.Format)
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter format: %s", err))
	}
	return params, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/customers", wrapper.GetCustomers)
	router.POST(baseURL+"/customers", wrapper.AddCustomer)
	router.POST(baseURL+"/customers/next", wrapper.ProcessNextCustomer)
	router.GET(baseURL+"/parcels", wrapper.GetParcels)
	router.POST(baseURL+"/parcels", wrapper.AddParcel)
	router.GET(baseURL+"/parcels/:id", wrapper.GetParcel)
	router.POST(baseURL+"/collections", wrapper.CollectParcel)
	router.GET(baseURL+"/processed", wrapper.GetProcessed)
	router.GET(baseURL+"/report", wrapper.GetReport)
}
