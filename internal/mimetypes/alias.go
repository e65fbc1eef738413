package mimetypes

import (
	"sort"
	"strings"
)

// aliasGroups maps a normalized category/subtype key to the full group of
// media types considered equivalent. Every member of a group keys the same
// shared slice, so the groups are symmetric: the alias list reached from
// image/pjpeg is the same list reached from image/jpeg.
var aliasGroups = make(map[string][]string)

// Curated equivalences that no mechanical rule can derive. These reflect
// how the types appear in the wild (legacy Internet Explorer jpeg names,
// CAD formats registered under three different categories, and so on),
// independent of what happens to be registered in any given registry.
var aliasGroupList = [][]string{
	{"image/jpeg", "image/pjpeg", "image/pipeg"},
	{"audio/flac", "application/flac"},
	{"model/vnd.dwg", "image/vnd.dwg", "image/x-dwg", "application/acad"},
	{"audio/wav", "audio/wave", "audio/vnd.wave", "audio/x-pn-wav"},
	{"application/ogg", "audio/ogg"},
	{"text/xml", "application/xml"},
	{"text/javascript", "application/javascript", "application/ecmascript", "text/ecmascript"},
	{"audio/mpeg", "audio/mp3"},
	{"audio/m4a", "audio/mp4"},
	{"image/bmp", "image/x-ms-bmp"},
	{"text/rtf", "application/rtf"},
	{"application/msword", "application/vnd.ms-word"},
	{"application/vnd.ms-excel", "application/excel", "application/x-msexcel"},
}

func init() {
	for _, group := range aliasGroupList {
		for _, mediaType := range group {
			if key, ok := normalizeType(mediaType); ok {
				aliasGroups[key] = group
			}
		}
	}
}

// normalizeType reduces a media type to its normalized category/subtype
// key: a leading "x-" is stripped from the category, and a leading "x-" or
// "vnd." from the subtype. The stripping is purely mechanical prefix
// removal, nothing more.
func normalizeType(mediaType string) (string, bool) {
	category, subtype, ok := SplitType(mediaType)
	if !ok {
		return "", false
	}
	category = strings.TrimPrefix(category, "x-")
	switch {
	case strings.HasPrefix(subtype, "x-"):
		subtype = subtype[len("x-"):]
	case strings.HasPrefix(subtype, "vnd."):
		subtype = subtype[len("vnd."):]
	}
	return category + "/" + subtype, true
}

// AltTypes returns the registered media types equivalent or closely
// related to the given one: the mechanical x-/vnd. variants of its
// normalized form, plus any curated alias group the normalized form
// belongs to. Candidates not registered in this registry are dropped. The
// result is deduplicated and sorted ascending; it is empty for a type with
// no '/'.
func (r *Registry) AltTypes(mediaType string) []string {
	key, ok := normalizeType(mediaType)
	if !ok {
		return nil
	}
	category, subtype, _ := SplitType(key)

	candidates := []string{
		category + "/" + subtype,
		category + "/x-" + subtype,
		"x-" + category + "/x-" + subtype,
		category + "/vnd." + subtype,
	}
	candidates = append(candidates, aliasGroups[key]...)

	seen := make(map[string]bool, len(candidates))
	var alts []string
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		if _, registered := r.IsType(candidate); registered {
			alts = append(alts, candidate)
		}
	}
	sort.Strings(alts)
	return alts
}

// AltType returns the first (lexicographically smallest) registered
// alternative for a media type, or "".
func (r *Registry) AltType(mediaType string) string {
	return first(r.AltTypes(mediaType))
}
