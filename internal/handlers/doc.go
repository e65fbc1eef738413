// Package handlers provides HTTP request handlers for the mime registry
// API.
//
// It includes handlers for:
//   - Type-to-extension lookups, with short-extension and first-element
//     modes
//   - Extension-to-type lookups (404 on unknown extensions)
//   - Alternative/equivalent type expansion
//   - Runtime type registration
//   - Health checks, version, and Prometheus metrics
//
// Handlers serialize access to the shared registry with an RWMutex; the
// registry itself performs no locking.
package handlers
