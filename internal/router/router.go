package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/visit-counter/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/visit-counter/internal/middleware" // request instrumentation
)

// RegisterRoutes registers the service's routes on the provided Echo
// instance.  /ping and /count are the public surface; /healthz serves
// load-balancer probes and /metrics the Prometheus exposition.
func RegisterRoutes(e *echo.Echo, h *handler.CounterHandler) {
	e.Use(middleware.Metrics())

	e.GET("/ping", h.Ping)
	e.GET("/count", h.Count)
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
