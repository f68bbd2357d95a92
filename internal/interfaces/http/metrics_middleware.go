package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/pkg/metrics"
)

// MetricsMiddleware observa cada request con método, ruta registrada y status.
// Usa c.Route().Path (la plantilla con :params) para no explotar la
// cardinalidad de las series.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		if status == fiber.StatusForbidden {
			m.PermissionDeniedTotal.Inc()
		}
		return err
	}
}
