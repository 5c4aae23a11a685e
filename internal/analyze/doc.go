// Package analyze holds the signal extractors: pure functions over the
// page snapshot and its text that produce the intermediate metrics the
// scorers consume. Extractors never fail; degenerate input (empty text,
// no DOM) yields each metric's documented zero default.
package analyze
