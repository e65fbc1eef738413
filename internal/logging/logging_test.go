package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected LogLevel
	}{
		{
			name:     "debug",
			value:    "debug",
			expected: LevelDebug,
		},
		{
			name:     "info",
			value:    "info",
			expected: LevelInfo,
		},
		{
			name:     "warn",
			value:    "warn",
			expected: LevelWarn,
		},
		{
			name:     "warning alias",
			value:    "warning",
			expected: LevelWarn,
		},
		{
			name:     "error",
			value:    "error",
			expected: LevelError,
		},
		{
			name:     "case insensitive",
			value:    "DEBUG",
			expected: LevelDebug,
		},
		{
			name:     "unknown falls back to info",
			value:    "verbose",
			expected: LevelInfo,
		},
		{
			name:     "empty falls back to info",
			value:    "",
			expected: LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.value); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestLogLevelOrdering(t *testing.T) {
	levels := []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i := 0; i < len(levels)-1; i++ {
		if levels[i] >= levels[i+1] {
			t.Errorf("Log levels should be in ascending order: %v >= %v", levels[i], levels[i+1])
		}
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{level: LevelDebug, expected: "debug"},
		{level: LevelInfo, expected: "info"},
		{level: LevelWarn, expected: "warn"},
		{level: LevelError, expected: "error"},
		{level: LogLevel(42), expected: "unknown(42)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelPrefixes(t *testing.T) {
	orig := log.Writer()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	Error("something failed: %s", "details")

	if !strings.Contains(buf.String(), "[ERROR] something failed: details") {
		t.Errorf("Expected [ERROR] prefix in output, got %q", buf.String())
	}
}
