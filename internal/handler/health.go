package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health responds to liveness probes from load balancers and monitoring.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Root answers GET /api/ so that uptime checks against the API prefix get a
// stable response.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Hello World"})
}
