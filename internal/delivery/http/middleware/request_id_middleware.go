package middleware

import (
	"log/slog"

	deliveryctx "alerts/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with a request ID
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process propagates the inbound X-Request-ID, generating one when absent,
// and attaches a request-scoped logger to the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliveryctx.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Response().Header().Set(deliveryctx.HeaderXRequestID, requestID)

		ctx := deliveryctx.WithRequestID(c.Request().Context(), requestID)
		ctx = deliveryctx.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
