package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/visit-counter/internal/metrics"
)

// Metrics records per-request Prometheus metrics: a duration histogram per
// route and a counter per route and status code.  The registered route
// pattern is used as the label so unknown paths cannot blow up cardinality.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler run first so the recorded
				// status matches what the client actually received.
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
			metrics.RequestsTotal.WithLabelValues(path, strconv.Itoa(c.Response().Status)).Inc()
			return err
		}
	}
}
