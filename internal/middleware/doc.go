// Package middleware provides HTTP middleware for the mime registry
// service.
//
// It includes:
//   - Request logging in W3C Extended Log Format, with health check
//     suppression and log injection sanitization
//   - Prometheus metrics collection (request counts, durations, in-flight
//     gauge) with path normalization to keep label cardinality bounded
//
// Middleware is applied as function wrappers around an http.Handler:
//
//	handler := middleware.Logger(logConfig)(middleware.Metrics(metricsConfig)(router))
package middleware
