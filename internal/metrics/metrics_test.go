package metrics

import (
	"testing"
)

func TestHTTPMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"HTTPRequestsTotal", HTTPRequestsTotal},
		{"HTTPRequestDuration", HTTPRequestDuration},
		{"HTTPRequestsInFlight", HTTPRequestsInFlight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestLookupMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"LookupsTotal", LookupsTotal},
		{"TypesAdded", TypesAdded},
		{"RegisteredTypes", RegisteredTypes},
		{"RegisteredExtensions", RegisteredExtensions},
		{"SeedLoadDuration", SeedLoadDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestLookupResult(t *testing.T) {
	if got := LookupResult(true); got != ResultHit {
		t.Errorf("LookupResult(true) = %q, want %q", got, ResultHit)
	}
	if got := LookupResult(false); got != ResultMiss {
		t.Errorf("LookupResult(false) = %q, want %q", got, ResultMiss)
	}
}

func TestInitializeMetrics(t *testing.T) {
	// Must not panic and must be safe to call repeatedly.
	InitializeMetrics()
	InitializeMetrics()
}
