package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bracketpress_http_requests_total",
		Help: "Total number of viewer HTTP requests",
	}, []string{"status", "route"})
	httpRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bracketpress_http_request_duration_seconds",
		Help:    "Duration of viewer HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		httpRequestsTotal.WithLabelValues(status, route).Inc()
		httpRequestDurationSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}
