package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".webboost"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .webboost configuration file.
type File struct {
	// Weights overrides individual criterion weights. Criteria not
	// listed keep their default weight. The merged vector must still
	// sum to 1.0, or loading fails.
	Weights map[string]float64 `yaml:"weights,omitempty"`

	// Fetch holds page acquisition settings.
	Fetch FetchSettings `yaml:"fetch,omitempty"`

	// Lighthouse enables the Lighthouse CLI performance probe.
	Lighthouse bool `yaml:"lighthouse,omitempty"`

	// SkipIndexCheck disables the live search-index probe.
	SkipIndexCheck bool `yaml:"skipIndexCheck,omitempty"`
}

// FetchSettings holds page acquisition options from the config file.
type FetchSettings struct {
	// Timeout is the page fetch timeout (Go duration string in YAML).
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// MaxBodySize overrides the response body read limit in bytes.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty"`
}

// LoadConfigFile loads audit settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this error based on whether the path was explicitly
// specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply merges the file settings into the config. File values only
// override fields the user set in the file; zero values leave the
// config untouched. The merged weight vector is not validated here;
// Config.Validate does that once all sources are merged.
func (cf *File) Apply(cfg *Config) {
	if len(cf.Weights) > 0 {
		cfg.Weights = cfg.Weights.Merge(cf.Weights)
	}
	if cf.Fetch.Timeout > 0 {
		cfg.Timeout = cf.Fetch.Timeout
	}
	if cf.Fetch.UserAgent != "" {
		cfg.UserAgent = cf.Fetch.UserAgent
	}
	if cf.Fetch.MaxBodySize > 0 {
		cfg.MaxBodySize = cf.Fetch.MaxBodySize
	}
	if cf.Lighthouse {
		cfg.EnableLighthouse = true
	}
	if cf.SkipIndexCheck {
		cfg.SkipIndexCheck = true
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .webboost in the current directory
// 3. Look for .webboost in the user's home directory
// 4. Look for the XDG config location
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	xdgConfig := XDGConfigPath()
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
