package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"mime-registry/internal/logging"
	"mime-registry/internal/metrics"
	"mime-registry/internal/mimetypes"

	"github.com/gorilla/mux"
)

// TypeResponse is the response body for type-to-extension lookups.
type TypeResponse struct {
	Type       string   `json:"type"`
	Registered bool     `json:"registered"`
	Extensions []string `json:"extensions"`
	Extension  string   `json:"extension,omitempty"`
}

// AltTypesResponse is the response body for alternative type lookups.
type AltTypesResponse struct {
	Type     string   `json:"type"`
	AltTypes []string `json:"altTypes"`
	AltType  string   `json:"altType,omitempty"`
}

// ExtensionResponse is the response body for extension-to-type lookups.
type ExtensionResponse struct {
	Extension string   `json:"extension"`
	Types     []string `json:"types"`
	Type      string   `json:"type,omitempty"`
}

// AddTypeRequest is the request body for registering a type.
type AddTypeRequest struct {
	Type       string   `json:"type"`
	Extensions []string `json:"extensions"`
}

// GetTypeExtensions returns the extensions registered for a media type.
// An unregistered type is a normal empty response, not an error. The
// "short" query parameter filters to extensions of at most three
// characters; "first" trims the list to the preferred extension.
func (h *Handlers) GetTypeExtensions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := vars["category"] + "/" + vars["subtype"]
	short := r.URL.Query().Get("short") != ""
	firstOnly := r.URL.Query().Get("first") != ""

	h.mu.RLock()
	_, registered := h.registry.IsType(mediaType)
	var extensions []string
	if short {
		extensions = h.registry.Ext3sFromType(mediaType)
	} else {
		extensions = h.registry.ExtsFromType(mediaType)
	}
	h.mu.RUnlock()

	operation := "ext_from_type"
	if short {
		operation = "ext3_from_type"
	}
	metrics.LookupsTotal.WithLabelValues(operation, metrics.LookupResult(registered)).Inc()

	response := TypeResponse{
		Type:       mediaType,
		Registered: registered,
		Extensions: extensions,
	}
	if response.Extensions == nil {
		response.Extensions = []string{}
	}
	if len(extensions) > 0 {
		response.Extension = extensions[0]
	}
	if firstOnly && len(extensions) > 1 {
		response.Extensions = extensions[:1]
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// GetAltTypes returns the registered media types equivalent to the given
// one, sorted ascending.
func (h *Handlers) GetAltTypes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := vars["category"] + "/" + vars["subtype"]

	h.mu.RLock()
	altTypes := h.registry.AltTypes(mediaType)
	h.mu.RUnlock()

	metrics.LookupsTotal.WithLabelValues("alt_types", metrics.LookupResult(len(altTypes) > 0)).Inc()

	response := AltTypesResponse{
		Type:     mediaType,
		AltTypes: altTypes,
	}
	if response.AltTypes == nil {
		response.AltTypes = []string{}
	}
	if len(altTypes) > 0 {
		response.AltType = altTypes[0]
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// GetExtensionTypes returns the media types registered for an extension.
// Unlike the type lookup, an unknown extension is a 404: this is the one
// lookup that treats a miss as an error.
func (h *Handlers) GetExtensionTypes(w http.ResponseWriter, r *http.Request) {
	extension := mux.Vars(r)["ext"]
	firstOnly := r.URL.Query().Get("first") != ""

	h.mu.RLock()
	types, err := h.registry.TypesFromExt(extension)
	h.mu.RUnlock()

	metrics.LookupsTotal.WithLabelValues("type_from_ext", metrics.LookupResult(err == nil)).Inc()

	if err != nil {
		if errors.Is(err, mimetypes.ErrUnknownExtension) {
			writeJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		logging.Error("extension lookup failed: %v", err)
		writeJSONError(w, "lookup failed", http.StatusInternalServerError)
		return
	}

	response := ExtensionResponse{
		Extension: extension,
		Types:     types,
	}
	if len(types) > 0 {
		response.Type = types[0]
	}
	if firstOnly && len(types) > 1 {
		response.Types = types[:1]
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// AddType registers a media type with extensions. A type with no '/' is
// not an error: the registry silently ignores it, and the response says
// so.
func (h *Handlers) AddType(w http.ResponseWriter, r *http.Request) {
	var request AddTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if request.Type == "" {
		writeJSONError(w, "type is required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.registry.AddType(request.Type, request.Extensions...)
	_, registered := h.registry.IsType(request.Type)
	types := h.registry.TypeCount()
	extensions := h.registry.ExtCount()
	h.mu.Unlock()

	metrics.RegisteredTypes.Set(float64(types))
	metrics.RegisteredExtensions.Set(float64(extensions))

	if !registered {
		// No '/', or an empty-extension type with registration disabled.
		metrics.TypesAdded.WithLabelValues("ignored").Inc()
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, map[string]string{"status": "ignored"})
		return
	}

	metrics.TypesAdded.WithLabelValues("registered").Inc()
	logging.Info("registered type %s with %d extension(s)", request.Type, len(request.Extensions))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]string{"status": "ok"})
}
