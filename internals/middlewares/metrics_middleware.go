package middlewares

import (
	"strconv"
	"time"

	"quranku_backend/internals/metrics"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware counts requests per matched route pattern, so
// /surah/1 and /surah/2 share one series.
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
		route := c.Route().Path
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
