package metrics

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

// ConfigureRouter mounts the operational endpoints served next to the
// main API: the Prometheus scrape target and a liveness check.
func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
	handler.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}
