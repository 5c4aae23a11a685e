package pipeline

import "errors"

// ErrNoSnapshot is returned when a step that needs fetched page data
// runs before the fetch step has populated the report.
var ErrNoSnapshot = errors.New("report has no page snapshot")
