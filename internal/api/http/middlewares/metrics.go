package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"kafkaBridge/internal/pkg/metrics"
)

const (
	metricsPath    = "/metrics"
	unmatchedRoute = "unmatched"
)

// PrometheusMetrics возвращает middleware, которое пишет bridge_http_* с меткой role процесса (all, sender, receiver).
// Запросы к самому /metrics не считаются.
func PrometheusMetrics(role string) gin.HandlerFunc {
	if role == "" {
		role = "all"
	}
	inFlight := metrics.HTTPInFlight.WithLabelValues(role)

	return func(c *gin.Context) {
		if c.Request.URL.Path == metricsPath {
			c.Next()
			return
		}

		inFlight.Inc()
		defer inFlight.Dec()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTP(role, route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
