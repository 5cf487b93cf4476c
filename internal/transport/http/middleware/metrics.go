package middleware

import (
	"errors"
	"time"

	"teamboard/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency by matched route.
func Metrics(collector metrics.MetricsCollector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}
