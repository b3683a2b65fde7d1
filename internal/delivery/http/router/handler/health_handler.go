package handler

import (
	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/response"
)

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.OK(c, echo.Map{"status": "ok"})
}
