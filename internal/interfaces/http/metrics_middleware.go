package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/knowledgebase-api/pkg/metrics"
)

// MetricsMiddleware registra contador y duración por método/ruta/status.
// Usa la plantilla de la ruta (p.ej. /api/resource/:resourceId) para no
// explotar la cardinalidad de labels con IDs.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		path := c.Route().Path
		metrics.ObserveHTTPRequest(c.Method(), path, strconv.Itoa(status), time.Since(start))
		return err
	}
}
