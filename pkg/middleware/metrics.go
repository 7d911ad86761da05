package middleware

import (
	"strconv"
	"time"

	"github.com/MessageComply/ComplyGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		path := c.Route().Path
		prometheus.RequestTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(path).Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
