package handlers

import (
	"sync"
	"time"

	"mime-registry/internal/mimetypes"
)

// Handlers bundles the HTTP handlers and the shared registry they serve.
//
// The registry itself does no locking, so the handler layer serializes
// access: lookups take the read lock, AddType takes the write lock.
type Handlers struct {
	mu        sync.RWMutex
	registry  *mimetypes.Registry
	startTime time.Time
}

// New creates handlers serving the given registry.
func New(registry *mimetypes.Registry) *Handlers {
	return &Handlers{
		registry:  registry,
		startTime: time.Now(),
	}
}
