package http

import (
	"context"
	"net/http"
	"sync"

	"depot/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// apiDoc serves the OpenAPI document to swag, which backs the swagger UI.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// registerDocs mounts the OpenAPI document at /api/v1/openapi.json and the
// swagger UI at /swagger/*. swag keeps a process-wide registry, so the
// document is registered with it only once.
func registerDocs(ctx context.Context, e *echo.Echo) error {
	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(raw)})
	})

	e.GET("/api/v1/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, raw)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
