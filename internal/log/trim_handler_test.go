package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTrimHandler_TruncatesLongValues tests that oversized string values are cut.
func TestTrimHandler_TruncatesLongValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		maxLen   int
		wantTrim bool
	}{
		{
			name:     "short value is kept",
			key:      "url",
			value:    "https://example.com",
			maxLen:   64,
			wantTrim: false,
		},
		{
			name:     "value at limit is kept",
			key:      "title",
			value:    strings.Repeat("a", 64),
			maxLen:   64,
			wantTrim: false,
		},
		{
			name:     "value over limit is truncated",
			key:      "markup",
			value:    strings.Repeat("<div>", 100),
			maxLen:   64,
			wantTrim: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := NewTrimHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), tt.maxLen)
			logger := slog.New(handler)

			logger.Info("test", tt.key, tt.value)

			output := buf.String()
			gotTrim := strings.Contains(output, TruncationMarker)
			if gotTrim != tt.wantTrim {
				t.Errorf("truncated = %v, want %v (output: %q)", gotTrim, tt.wantTrim, output)
			}
			if !tt.wantTrim && !strings.Contains(output, tt.value) {
				t.Errorf("output should contain untrimmed value %q", tt.value)
			}
		})
	}
}

// TestTrimHandler_PreservesMultibyteBoundaries tests that truncation never
// splits a UTF-8 sequence.
func TestTrimHandler_PreservesMultibyteBoundaries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewTrimHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), 10)
	logger := slog.New(handler)

	// Each rune is 3 bytes; byte 10 falls mid-rune.
	logger.Info("test", "text", strings.Repeat("あ", 8))

	output := buf.String()
	if !strings.Contains(output, TruncationMarker) {
		t.Fatalf("expected truncation, got %q", output)
	}
	if strings.Contains(output, "�") {
		t.Errorf("output contains replacement character: %q", output)
	}
}

// TestTrimHandler_TrimsGroupedAttrs tests that attributes inside groups are trimmed.
func TestTrimHandler_TrimsGroupedAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewTrimHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), 16)
	logger := slog.New(handler)

	logger.Info("test", slog.Group("page",
		slog.String("body", strings.Repeat("x", 100)),
		slog.String("domain", "example.com"),
	))

	output := buf.String()
	if !strings.Contains(output, TruncationMarker) {
		t.Errorf("grouped attribute was not truncated: %q", output)
	}
	if !strings.Contains(output, "example.com") {
		t.Errorf("short grouped attribute was altered: %q", output)
	}
}

// TestTrimHandler_WithAttrs tests that pre-bound attributes are trimmed.
func TestTrimHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewTrimHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), 16)
	logger := slog.New(handler).With("excerpt", strings.Repeat("y", 50))

	logger.Info("test")

	if !strings.Contains(buf.String(), TruncationMarker) {
		t.Errorf("bound attribute was not truncated: %q", buf.String())
	}
}

// TestNewLogger_Levels tests the verbose flag controls the log level.
func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, false)
	logger.Debug("hidden")
	logger.Warn("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug message logged at warn level: %q", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn message missing: %q", output)
	}

	buf.Reset()
	verbose := NewLogger(&buf, true)
	verbose.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message missing in verbose mode: %q", buf.String())
	}
}
