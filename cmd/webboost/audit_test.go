package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/webboost/webboost/internal/config"
)

func TestNormalizeTargetURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare domain gets https",
			input:    "example.com",
			expected: "https://example.com",
		},
		{
			name:     "path without scheme gets https",
			input:    "example.com/blog/post",
			expected: "https://example.com/blog/post",
		},
		{
			name:     "https URL unchanged",
			input:    "https://example.com",
			expected: "https://example.com",
		},
		{
			name:     "http URL unchanged",
			input:    "http://example.com",
			expected: "http://example.com",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeTargetURL(tt.input); got != tt.expected {
				t.Errorf("normalizeTargetURL(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildConfig_Defaults(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	cfg, err := buildConfig(cmd, []string{"example.com"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.TargetURL != "https://example.com" {
		t.Errorf("TargetURL = %q, expected https://example.com", cfg.TargetURL)
	}
	if cfg.Timeout != config.DefaultTimeout {
		t.Errorf("Timeout = %v, expected %v", cfg.Timeout, config.DefaultTimeout)
	}
	if cfg.UserAgent != config.DefaultUserAgent {
		t.Errorf("UserAgent = %q, expected %q", cfg.UserAgent, config.DefaultUserAgent)
	}
	if cfg.EnableLighthouse || cfg.SkipIndexCheck {
		t.Error("probe toggles should default to false")
	}
	if cfg.JSONReport || cfg.MarkdownReport {
		t.Error("report format flags should default to false")
	}
}

func TestBuildConfig_FlagOverrides(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	err := cmd.ParseFlags([]string{
		"--timeout", "45s",
		"--user-agent", "AuditBot/2.0",
		"--skip-index-check",
		"--json",
		"--output", "report.json",
	})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg, err := buildConfig(cmd, []string{"https://example.com"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, expected 45s", cfg.Timeout)
	}
	if cfg.UserAgent != "AuditBot/2.0" {
		t.Errorf("UserAgent = %q, expected AuditBot/2.0", cfg.UserAgent)
	}
	if !cfg.SkipIndexCheck {
		t.Error("SkipIndexCheck should be true")
	}
	if !cfg.JSONReport {
		t.Error("JSONReport should be true")
	}
	if cfg.ReportFile != "report.json" {
		t.Errorf("ReportFile = %q, expected report.json", cfg.ReportFile)
	}
}

func TestBuildConfig_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultConfigFile)
	content := `weights:
  informativeness: 0.15
  readability: 0.20
fetch:
  timeout: 45s
  userAgent: "FileBot/1.0"
lighthouse: true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := NewAuditCmd()
	if err := cmd.ParseFlags([]string{"--config", path}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg, err := buildConfig(cmd, []string{"example.com"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, expected 45s from config file", cfg.Timeout)
	}
	if cfg.UserAgent != "FileBot/1.0" {
		t.Errorf("UserAgent = %q, expected FileBot/1.0", cfg.UserAgent)
	}
	if !cfg.EnableLighthouse {
		t.Error("EnableLighthouse should be true from config file")
	}
	if cfg.Weights["informativeness"] != 0.15 {
		t.Errorf("informativeness weight = %v, expected 0.15", cfg.Weights["informativeness"])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, swapped weights still sum to 1.0", err)
	}
}

func TestBuildConfig_FlagBeatsConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultConfigFile)
	if err := os.WriteFile(path, []byte("fetch:\n  timeout: 45s\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := NewAuditCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--timeout", "10s"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg, err := buildConfig(cmd, []string{"example.com"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, explicit flag should override config file", cfg.Timeout)
	}
}

func TestBuildConfig_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if err := cmd.ParseFlags([]string{"--config", missing}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	_, err := buildConfig(cmd, []string{"example.com"})
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("error = %v, expected ErrConfigNotFound", err)
	}
}

func TestBuildConfig_ConflictingFormats(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	if err := cmd.ParseFlags([]string{"--json", "--markdown"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg, err := buildConfig(cmd, []string{"example.com"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if err := cfg.Validate(); !errors.Is(err, config.ErrConflictingReportFormats) {
		t.Errorf("Validate() error = %v, expected ErrConflictingReportFormats", err)
	}
}

func TestAuditCmd_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="en">
<head>
<title>Growing Heirloom Tomatoes: A Complete Garden Guide</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content="Learn how to grow heirloom tomatoes from seed to harvest, with soil preparation, watering schedules, and pest control advice for home gardens.">
</head>
<body>
<nav><a href="/">Home</a> <a href="/guides">Guides</a></nav>
<h1>Growing Heirloom Tomatoes</h1>
<p>According to research by the state extension office, heirloom varieties
thrive in well-drained soil [1]. Our study from 2023 found consistent
results across three growing seasons. Updated 2024-05-10.</p>
<h2>Soil Preparation</h2>
<p>Start with compost. How deep should you dig? About twelve inches works
well for most beds.</p>
<ul><li>Loosen the soil</li><li>Mix in compost</li></ul>
<img src="/tomato.jpg" alt="ripe heirloom tomato on the vine">
<h2>Watering</h2>
<p>Water deeply twice a week. See our <a href="/guides/watering">watering
guide</a> and the <a href="https://extension.example.edu/tomatoes">extension
handbook</a> for more.</p>
</body>
</html>`))
	}))
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "reports", "audit.json")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"audit", srv.URL, "--skip-index-check", "--json", "--output", outPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}

	var decoded struct {
		URL            string   `json:"url"`
		OverallScore   float64  `json:"overall_score"`
		Recommendation []string `json:"recommendations"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if decoded.URL != srv.URL {
		t.Errorf("url = %q, expected %q", decoded.URL, srv.URL)
	}
	if decoded.OverallScore <= 0 || decoded.OverallScore > 100 {
		t.Errorf("overall_score = %v, expected (0, 100]", decoded.OverallScore)
	}
	if len(decoded.Recommendation) == 0 {
		t.Error("expected at least one recommendation")
	}
}

func TestAuditCmd_UnreachableTarget(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"audit", url, "--skip-index-check", "--timeout", "2s"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() should fail for an unreachable target")
	}
}
