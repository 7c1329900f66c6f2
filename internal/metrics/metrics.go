// Package metrics provides Prometheus metrics collection for the portfolio service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ContentLoadsTotal tracks content collection loads from the backing source.
	ContentLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_loads_total",
			Help: "Total number of content collection loads",
		},
		[]string{"collection", "status"},
	)

	// ContentLoadDuration tracks how long a collection load takes.
	ContentLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_load_duration_seconds",
			Help:    "Content collection load duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"collection"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current number of cached entries",
		},
		[]string{"cache"},
	)

	// CircuitBreakerState tracks circuit breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordContentLoad records metrics for a collection load.
func RecordContentLoad(collection string, duration time.Duration, status string) {
	ContentLoadDuration.WithLabelValues(collection).Observe(duration.Seconds())
	ContentLoadsTotal.WithLabelValues(collection, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheSize sets the entry count gauge of a cache.
func UpdateCacheSize(cache string, size int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
}

// SetCircuitBreakerState publishes the numeric state of a circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
