// Package mimetypes implements a bidirectional registry mapping media
// types to file extensions and extensions back to media types.
//
// A registry holds two ordered mappings kept consistent by a single
// mutation path, AddType: category -> subtype -> extensions, and
// extension -> media types. Insertion order is preserved in both
// directions and is user-visible: the first element of any list is the
// preferred answer. Duplicates are preserved too; nothing is deduplicated
// on insert.
//
// # Construction
//
// NewDefault seeds a registry from the embedded mime.types table;
// New creates an empty one. AddTypesFromFile and AddTypesFromReader layer
// further mime.types-format records on top, and Clone produces a fully
// independent copy for divergent mutation:
//
//	reg := mimetypes.NewDefault()
//	if err := reg.AddTypesFromFile("/etc/mime.types"); err != nil {
//	    // file-level failures surface here; malformed lines do not
//	}
//	mine := reg.Clone()
//	mine.AddType("image/wxyz-foobar", "foobar")
//
// For callers that do not want to manage an instance, the package-level
// functions (mimetypes.ExtFromType, mimetypes.TypesFromExt, ...) operate
// on a shared default registry built lazily on first use.
//
// # Lookups
//
// Every list-returning lookup has a first-element counterpart for callers
// that want one canonical answer: ExtsFromType/ExtFromType,
// Ext3sFromType/Ext3FromType, TypesFromExt/TypeFromExt, AltTypes/AltType.
//
// Misses are soft almost everywhere: an unregistered type yields an empty
// result from ExtsFromType, and IsType/IsExt report absence through their
// bool. The one exception is TypesFromExt/TypeFromExt, which return
// ErrUnknownExtension for an extension never seen.
//
// # Alternative types
//
// AltTypes answers "which registered types mean the same thing as this
// one". It normalizes the query by stripping a leading "x-" from the
// category and "x-" or "vnd." from the subtype, probes the mechanical
// x-/vnd. spellings of the normalized form, folds in a curated table of
// equivalences that no prefix rule can derive (image/jpeg's legacy
// pjpeg/pipeg spellings, the dwg CAD formats, flac's application/audio
// split), and keeps only candidates registered in this registry:
//
//	mimetypes.AltTypes("image/jpeg")
//	// ["image/jpeg", "image/pipeg", "image/pjpeg"]
//
// # Concurrency
//
// A registry does no locking. Instances share no state, so distinct
// goroutines may each own one freely; a single instance shared across
// goroutines requires external serialization by the caller.
package mimetypes
