// Package log provides logging utilities for webboost.
// It offers a slog handler wrapper that trims oversized attribute
// values, such as raw HTML markup excerpts, before they reach the
// underlying handler.
package log
