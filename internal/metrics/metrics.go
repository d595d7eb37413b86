// Package metrics holds the Prometheus collectors shared by the storage
// layer and the HTTP middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StorageErrors counts slot failures the storage adapter swallowed.
	StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vibeloop",
		Name:      "storage_errors_total",
		Help:      "Snapshot read/write/clear failures that were logged and dropped.",
	}, []string{"op"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vibeloop",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vibeloop",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vibeloop",
		Name:      "http_rate_limited_total",
		Help:      "Write requests rejected by the rate limiter.",
	})
)
