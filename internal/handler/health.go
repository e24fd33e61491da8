package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers load-balancer probes with a plain "ok".  Unlike /ping it
// never touches the backend, so it stays cheap no matter how Redis is doing.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
