package mimetypes

import (
	_ "embed"
	"strings"
)

// seedTable is the built-in mime.types table. It is parsed at registry
// construction, never at lookup time.
//
//go:embed seed/mime.types
var seedTable string

// NewDefault returns a registry seeded with the built-in mime.types table.
// The embedded table is static data compiled into the binary, so seeding
// cannot fail; use AddTypesFromFile to layer an external table on top.
func NewDefault() *Registry {
	r := New()
	for _, line := range strings.Split(seedTable, "\n") {
		r.addTypeLine(line)
	}
	return r
}
