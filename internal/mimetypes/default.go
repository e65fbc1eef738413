package mimetypes

import "sync"

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared seeded registry, building it on first use.
// Callers that need isolated or divergently-mutated registries should use
// New, NewDefault, or Clone instead; the package-level functions below all
// operate on this shared instance, and writes to it must be serialized by
// the caller like any other shared registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewDefault()
	})
	return defaultRegistry
}

// The package-level functions mirror the Registry methods on the shared
// default instance, for callers that want lookups without managing an
// instance of their own.

// IsType reports whether a media type is registered in the default
// registry.
func IsType(mediaType string) ([]string, bool) { return Default().IsType(mediaType) }

// ExtsFromType returns all extensions for a media type from the default
// registry.
func ExtsFromType(mediaType string) []string { return Default().ExtsFromType(mediaType) }

// ExtFromType returns the preferred extension for a media type from the
// default registry.
func ExtFromType(mediaType string) string { return Default().ExtFromType(mediaType) }

// Ext3sFromType returns the short (≤3 character) extensions for a media
// type from the default registry.
func Ext3sFromType(mediaType string) []string { return Default().Ext3sFromType(mediaType) }

// Ext3FromType returns the preferred short extension for a media type from
// the default registry.
func Ext3FromType(mediaType string) string { return Default().Ext3FromType(mediaType) }

// IsExt reports whether an extension is registered in the default
// registry.
func IsExt(extension string) ([]string, bool) { return Default().IsExt(extension) }

// TypesFromExt returns all media types for an extension from the default
// registry, or ErrUnknownExtension.
func TypesFromExt(extension string) ([]string, error) { return Default().TypesFromExt(extension) }

// TypeFromExt returns the preferred media type for an extension from the
// default registry, or ErrUnknownExtension.
func TypeFromExt(extension string) (string, error) { return Default().TypeFromExt(extension) }

// AltTypes returns the registered alternatives for a media type from the
// default registry.
func AltTypes(mediaType string) []string { return Default().AltTypes(mediaType) }

// AltType returns the first registered alternative for a media type from
// the default registry.
func AltType(mediaType string) string { return Default().AltType(mediaType) }

// AddType registers a media type in the default registry.
func AddType(mediaType string, extensions ...string) { Default().AddType(mediaType, extensions...) }
