package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout is the page fetch timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the auditor in HTTP requests.
	DefaultUserAgent = "WebBoost/1.0 (+https://github.com/webboost/webboost)"

	// DefaultMaxBodySize limits how much of a response body is read.
	// 5MB covers any reasonable HTML document while preventing memory
	// exhaustion on unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultLighthouseTimeout bounds the optional Lighthouse CLI probe.
	// Lighthouse renders the page in a headless browser, so it needs
	// far more time than the plain fetch.
	DefaultLighthouseTimeout = 60 * time.Second

	// DefaultIndexProbeTimeout bounds the live search-index check.
	DefaultIndexProbeTimeout = 10 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "webboost"
)

// Config holds all options for one audit run.
// This struct is populated from CLI flags and the optional config file,
// then passed through the application via dependency injection rather
// than global state.
type Config struct {
	// TargetURL is the page to audit. Must be an absolute http(s) URL.
	TargetURL string

	// Timeout is the page fetch timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// Weights is the scoring weight vector. Validated once at load;
	// never mutated afterwards.
	Weights Weights

	// EnableLighthouse enables the optional Lighthouse CLI performance
	// probe. Off by default because it requires the lighthouse binary
	// and a headless Chrome on the PATH.
	EnableLighthouse bool

	// SkipIndexCheck disables the live search-index probe. Useful for
	// offline runs and deterministic output.
	SkipIndexCheck bool

	// JSONReport enables JSON report output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .webboost in the current directory, the
	// home directory, and the XDG config directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (timeout, user agent,
// the weight vector). This also serves as documentation of the defaults.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Weights:     DefaultWeights(),
	}
}

// Validate checks the configuration for correctness.
// It returns a sentinel error describing the first problem found.
// An invalid weight vector is the one configuration error that must
// prevent the audit from starting at all.
func (c *Config) Validate() error {
	if c.TargetURL == "" {
		return ErrNoTarget
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return c.Weights.Validate()
}

// XDGConfigPath returns the XDG location of the configuration file
// (e.g. ~/.config/webboost/.webboost on Linux).
func XDGConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}
