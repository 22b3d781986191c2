// Package metrics holds the Prometheus collectors shared by the HTTP layer,
// the upstream client and the services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealdb_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealdb_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealdb_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Upstream recipe database metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealdb_upstream_requests_total",
			Help: "Total number of calls to the upstream recipe database",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealdb_upstream_request_duration_seconds",
			Help:    "Upstream recipe database latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Cache metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealdb_cache_lookups_total",
			Help: "Cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	// Corpus aggregation metrics
	AggregationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealdb_aggregation_failures_total",
			Help: "Upstream failures absorbed while assembling the meal corpus",
		},
		[]string{"scope"},
	)

	CorpusSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealdb_corpus_meals",
			Help: "Number of meals in the most recently assembled corpus",
		},
	)

	// Rate limiting metrics
	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mealdb_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	// Panic recovery metrics
	PanicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mealdb_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

// Upstream call outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Cache lookup results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
