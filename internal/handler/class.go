package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tcprodojo/backend/internal/model"
)

// Classes handles GET /api/classes and returns the static weekly schedule.
// The catalog is compiled in; nothing is read from storage.
func Classes(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Classes())
}
