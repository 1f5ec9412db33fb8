package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "VALIDATION_FAILED"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Created 201 response with a Location header pointing at the new resource.
func Created(c echo.Context, location string, data any, message string) error {
	c.Response().Header().Set(echo.HeaderLocation, location)

	return Success(c, http.StatusCreated, data, message)
}

// NoContent 204 response; the boundary's shape for empty results,
// not-found, already-exists and already-up-to-date outcomes alike.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

