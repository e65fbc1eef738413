package mimetypes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownExtension is returned by TypesFromExt and TypeFromExt when the
// queried extension has never been registered. It is the only lookup in the
// package that treats "not found" as an error; every other query reports a
// miss as an empty result.
var ErrUnknownExtension = errors.New("unknown extension")

// Registry maps media types to file extensions and extensions back to media
// types. Both directions preserve insertion order and duplicates; the first
// element of a list is the preferred answer by convention.
//
// A Registry performs no internal locking. Independent instances share no
// state, so single-owner use needs no synchronization; callers that share
// one instance across goroutines must serialize access themselves.
type Registry struct {
	// RegisterEmptyTypes controls whether AddType with zero extensions
	// still registers the type (so IsType reports it). On by default.
	RegisterEmptyTypes bool

	// category -> subtype -> extensions, in insertion order
	typeExts map[string]map[string][]string
	// extension -> media types, in insertion order
	extTypes map[string][]string
}

// New returns an empty registry with RegisterEmptyTypes enabled.
func New() *Registry {
	return &Registry{
		RegisterEmptyTypes: true,
		typeExts:           make(map[string]map[string][]string),
		extTypes:           make(map[string][]string),
	}
}

// SplitType splits a media type into its category and subtype at the first
// '/'. Anything after the first '/' is the subtype verbatim, slashes
// included. ok is false when the string contains no '/' at all.
func SplitType(mediaType string) (category, subtype string, ok bool) {
	i := strings.IndexByte(mediaType, '/')
	if i < 0 {
		return "", "", false
	}
	return mediaType[:i], mediaType[i+1:], true
}

// AddType registers a media type with zero or more extensions. Extensions
// are appended to the type's list in the order given, and the type is
// appended to each extension's reverse list, keeping the two mappings
// consistent. Nothing is deduplicated: registering the same pair twice
// records it twice.
//
// A type with no '/' is silently ignored. With zero extensions the type is
// still registered unless RegisterEmptyTypes is off.
func (r *Registry) AddType(mediaType string, extensions ...string) {
	category, subtype, ok := SplitType(mediaType)
	if !ok {
		return
	}
	if len(extensions) == 0 && !r.RegisterEmptyTypes {
		return
	}

	subtypes := r.typeExts[category]
	if subtypes == nil {
		subtypes = make(map[string][]string)
		r.typeExts[category] = subtypes
	}
	if _, exists := subtypes[subtype]; !exists {
		subtypes[subtype] = []string{}
	}
	subtypes[subtype] = append(subtypes[subtype], extensions...)

	for _, ext := range extensions {
		if _, exists := r.extTypes[ext]; !exists {
			r.extTypes[ext] = []string{}
		}
		r.extTypes[ext] = append(r.extTypes[ext], mediaType)
	}
}

// IsType reports whether a media type is registered, returning its
// extension list when it is. A type with a missing or empty subtype is
// never registered. The returned slice is the registry's own storage and
// must not be modified.
func (r *Registry) IsType(mediaType string) ([]string, bool) {
	category, subtype, ok := SplitType(mediaType)
	if !ok || subtype == "" {
		return nil, false
	}
	subtypes, ok := r.typeExts[category]
	if !ok {
		return nil, false
	}
	extensions, ok := subtypes[subtype]
	return extensions, ok
}

// ExtsFromType returns all extensions registered for a media type, in
// insertion order, or an empty result for an unregistered type. The first
// element is the preferred extension.
func (r *Registry) ExtsFromType(mediaType string) []string {
	extensions, _ := r.IsType(mediaType)
	return extensions
}

// ExtFromType returns the preferred extension for a media type, or "" when
// the type is unregistered or has no extensions.
func (r *Registry) ExtFromType(mediaType string) string {
	return first(r.ExtsFromType(mediaType))
}

// Ext3sFromType returns the extensions registered for a media type that
// are at most three characters long, preserving relative order.
func (r *Registry) Ext3sFromType(mediaType string) []string {
	var short []string
	for _, ext := range r.ExtsFromType(mediaType) {
		if len(ext) <= 3 {
			short = append(short, ext)
		}
	}
	return short
}

// Ext3FromType returns the preferred short (≤3 character) extension for a
// media type, or "".
func (r *Registry) Ext3FromType(mediaType string) string {
	return first(r.Ext3sFromType(mediaType))
}

// IsExt reports whether an extension has ever been registered, returning
// its media type list when it has. The returned slice is the registry's
// own storage and must not be modified.
func (r *Registry) IsExt(extension string) ([]string, bool) {
	mediaTypes, ok := r.extTypes[extension]
	return mediaTypes, ok
}

// TypesFromExt returns all media types registered for an extension, in
// insertion order. Unlike ExtsFromType, an unknown extension is an error
// (ErrUnknownExtension), not an empty result.
func (r *Registry) TypesFromExt(extension string) ([]string, error) {
	mediaTypes, ok := r.extTypes[extension]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, extension)
	}
	return mediaTypes, nil
}

// TypeFromExt returns the preferred media type for an extension, or an
// ErrUnknownExtension error for an extension never registered.
func (r *Registry) TypeFromExt(extension string) (string, error) {
	mediaTypes, err := r.TypesFromExt(extension)
	if err != nil {
		return "", err
	}
	return first(mediaTypes), nil
}

// TypeCount returns the number of registered category/subtype pairs.
func (r *Registry) TypeCount() int {
	n := 0
	for _, subtypes := range r.typeExts {
		n += len(subtypes)
	}
	return n
}

// ExtCount returns the number of distinct registered extensions.
func (r *Registry) ExtCount() int {
	return len(r.extTypes)
}

// Clone returns an independent copy of the registry. The copy has fresh
// backing maps and fresh list storage; mutations on either side are
// invisible to the other.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		RegisterEmptyTypes: r.RegisterEmptyTypes,
		typeExts:           make(map[string]map[string][]string, len(r.typeExts)),
		extTypes:           make(map[string][]string, len(r.extTypes)),
	}
	for category, subtypes := range r.typeExts {
		copied := make(map[string][]string, len(subtypes))
		for subtype, extensions := range subtypes {
			copied[subtype] = append([]string{}, extensions...)
		}
		c.typeExts[category] = copied
	}
	for extension, mediaTypes := range r.extTypes {
		c.extTypes[extension] = append([]string{}, mediaTypes...)
	}
	return c
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
