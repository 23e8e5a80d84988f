package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

// Health is used by load balancers to verify that service is running
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
