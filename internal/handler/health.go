package handler // handler contains the HTTP handlers for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint used by load balancers.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
