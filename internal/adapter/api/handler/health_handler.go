package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bazarbd/pkg/response"
)

type HealthHandler struct {
	databaseDriver string
}

func NewHealthHandler(databaseDriver string) *HealthHandler {
	return &HealthHandler{databaseDriver: databaseDriver}
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "BazarBD server is running...")
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return response.Success(c, map[string]string{
		"status":   "ok",
		"database": h.databaseDriver,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
