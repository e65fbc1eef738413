package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mime-registry/internal/mimetypes"
)

func TestHealthCheck(t *testing.T) {
	_, router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != statusHealthy {
		t.Errorf("Status = %q, want %q", response.Status, statusHealthy)
	}
	if response.Types == 0 {
		t.Error("Expected a seeded registry to report types")
	}
	if response.Extensions == 0 {
		t.Error("Expected a seeded registry to report extensions")
	}
	if response.GoVersion == "" {
		t.Error("Expected GoVersion to be populated")
	}
}

func TestLivenessCheck(t *testing.T) {
	_, router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/livez", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != "alive" {
		t.Errorf("status = %q, want alive", response["status"])
	}
}

func TestLivenessCheckHead(t *testing.T) {
	h := New(mimetypes.NewDefault())

	req := httptest.NewRequest(http.MethodHead, "/livez", nil)
	w := httptest.NewRecorder()
	h.LivenessCheck(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("HEAD response should have no body, got %q", w.Body.String())
	}
}

func TestReadinessCheck(t *testing.T) {
	_, router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/readyz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
}

func TestReadinessCheckEmptyRegistry(t *testing.T) {
	h := New(mimetypes.New())

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	h.ReadinessCheck(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 for an empty registry, got %d", w.Code)
	}
}

func TestGetVersion(t *testing.T) {
	_, router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/version", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["version"] == "" {
		t.Error("Expected version field to be populated")
	}
	if response["goVersion"] == "" {
		t.Error("Expected goVersion field to be populated")
	}
}
