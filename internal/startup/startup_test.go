package startup

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("STARTUP_TEST_VAR", "custom")

	if got := getEnv("STARTUP_TEST_VAR", "fallback"); got != "custom" {
		t.Errorf("getEnv = %q, want custom", got)
	}
	if got := getEnv("STARTUP_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		want         bool
	}{
		{
			name:         "true",
			value:        "true",
			defaultValue: false,
			want:         true,
		},
		{
			name:         "false",
			value:        "false",
			defaultValue: true,
			want:         false,
		},
		{
			name:         "numeric true",
			value:        "1",
			defaultValue: false,
			want:         true,
		},
		{
			name:         "invalid uses default",
			value:        "maybe",
			defaultValue: true,
			want:         true,
		},
		{
			name:         "unset uses default",
			value:        "",
			defaultValue: true,
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("STARTUP_TEST_BOOL", tt.value)
			} else {
				os.Unsetenv("STARTUP_TEST_BOOL")
			}
			if got := getEnvBool("STARTUP_TEST_BOOL", tt.defaultValue); got != tt.want {
				t.Errorf("getEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "METRICS_PORT", "METRICS_ENABLED", "MIME_TYPES_FILE", "ALLOW_EMPTY_TYPES", "LOG_HEALTH_CHECKS"} {
		os.Unsetenv(key)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if config.Port != "8080" {
		t.Errorf("Port = %q, want 8080", config.Port)
	}
	if config.MetricsPort != "9090" {
		t.Errorf("MetricsPort = %q, want 9090", config.MetricsPort)
	}
	if !config.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
	if config.ExtraTypesFile != "" {
		t.Errorf("ExtraTypesFile = %q, want empty", config.ExtraTypesFile)
	}
	if !config.AllowEmptyTypes {
		t.Error("AllowEmptyTypes should default to true")
	}
}

func TestLoadConfigExtraTypesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.types")
	if err := os.WriteFile(path, []byte("application/x-test xt\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	t.Setenv("MIME_TYPES_FILE", path)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.ExtraTypesFile != path {
		t.Errorf("ExtraTypesFile = %q, want %q", config.ExtraTypesFile, path)
	}
}

func TestLoadConfigMissingExtraTypesFile(t *testing.T) {
	t.Setenv("MIME_TYPES_FILE", filepath.Join(t.TempDir(), "missing.types"))

	if _, err := LoadConfig(); err == nil {
		t.Fatal("Expected an error for an unreadable MIME_TYPES_FILE")
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
	if info.OS == "" || info.Arch == "" {
		t.Error("OS and Arch should be populated")
	}
}

func TestGetRoutes(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(http.ResponseWriter, *http.Request) {}).Methods("GET")
	router.HandleFunc("/api/types", func(http.ResponseWriter, *http.Request) {}).Methods("POST")

	routes, err := GetRoutes(router)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("Expected 2 routes, got %d", len(routes))
	}

	found := map[string]string{}
	for _, route := range routes {
		found[route.Path] = route.Method
	}
	if found["/healthz"] != "GET" {
		t.Errorf("Expected GET /healthz, got %v", found)
	}
	if found["/api/types"] != "POST" {
		t.Errorf("Expected POST /api/types, got %v", found)
	}
}
