package handler

import (
	_ "embed"
	"net/http"

	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static/openapi.json
var openAPISpec []byte

// OpenAPIHandler serves the OpenAPI document describing the API.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec writes the embedded document. Caching is disabled so
// a redeploy is picked up immediately.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPISpec)
}
