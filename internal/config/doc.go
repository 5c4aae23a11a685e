// Package config provides configuration structures and utilities for the
// WebBoost audit. It defines fetch settings, report output preferences,
// and the scoring weight vector with its load-time validation.
package config
