package middleware

import (
	"strconv"
	"time"

	"alerts/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records per-request Prometheus metrics
type MetricsMiddleware struct {
	metrics *metrics.HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: m,
	}
}

// Observe records request count and latency, labelled by the route
// template rather than the raw URL to keep cardinality bounded.
func (m *MetricsMiddleware) Observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}

		status := c.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
		}

		m.metrics.RequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
		m.metrics.RequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

		return err
	}
}
