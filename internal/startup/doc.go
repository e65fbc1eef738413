// Package startup handles application configuration and startup logging
// for the mime registry service.
//
// Configuration comes from environment variables with sensible defaults:
//
//	PORT              HTTP listen port (default 8080)
//	METRICS_PORT      Prometheus metrics port (default 9090)
//	METRICS_ENABLED   Enable the metrics endpoint (default true)
//	MIME_TYPES_FILE   Optional extra mime.types file layered on the
//	                  built-in table
//	ALLOW_EMPTY_TYPES Register types that list no extensions (default true)
//	LOG_HEALTH_CHECKS Log health probe requests (default true)
//
// The package also owns build-time version variables (injected via
// -ldflags) and the sectioned startup/shutdown log output.
package startup
