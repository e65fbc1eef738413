package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mime_registry_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mime_registry_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mime_registry_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Lookup metrics
var (
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mime_registry_lookups_total",
			Help: "Total number of registry lookups",
		},
		[]string{"operation", "result"}, // result: "hit" or "miss"
	)

	TypesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mime_registry_types_added_total",
			Help: "Total number of AddType calls via the API",
		},
		[]string{"result"}, // "registered" or "ignored"
	)
)

// Registry size metrics
var (
	RegisteredTypes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mime_registry_types",
			Help: "Number of registered category/subtype pairs",
		},
	)

	RegisteredExtensions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mime_registry_extensions",
			Help: "Number of distinct registered extensions",
		},
	)

	SeedLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mime_registry_seed_load_duration_seconds",
			Help: "Time spent loading the seed tables at startup",
		},
	)
)

// Result label values for LookupsTotal.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// LookupResult converts a hit/miss bool to its metric label.
func LookupResult(hit bool) string {
	if hit {
		return ResultHit
	}
	return ResultMiss
}
