package fetch

import "errors"

var (
	// ErrInvalidURL is returned when the target URL cannot be parsed or
	// uses a scheme other than http or https.
	ErrInvalidURL = errors.New("fetch: invalid target URL")

	// ErrUnreachable is returned when the page could not be retrieved:
	// connection failure, timeout, or a non-success HTTP status.
	ErrUnreachable = errors.New("fetch: page unreachable")

	// ErrEmptyBody is returned when the server responded with success
	// but an empty body. There is nothing to analyze.
	ErrEmptyBody = errors.New("fetch: empty response body")
)
