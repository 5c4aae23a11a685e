package collect

import "errors"

var (
	// ErrLighthouseNotFound is returned when the lighthouse binary is
	// not on PATH.
	ErrLighthouseNotFound = errors.New("collect: lighthouse binary not found")

	// ErrIndexProbeFailed is returned when the search index probe could
	// not complete. The SEO signal degrades to not indexed.
	ErrIndexProbeFailed = errors.New("collect: search index probe failed")
)
