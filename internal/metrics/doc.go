// Package metrics defines the Prometheus metrics exported by the mime
// registry service.
//
// Metrics cover three areas:
//   - HTTP request counts, durations, and in-flight gauge
//   - Registry lookups, labeled by operation and hit/miss result
//   - Registry size (types, extensions) and seed load time
//
// All metrics are registered with the default Prometheus registry via
// promauto at package initialization. InitializeMetrics pre-populates
// label combinations so counters appear on the first scrape.
package metrics
