// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"alerts/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness endpoint
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck reports service liveness.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
