// Package score maps extracted signals to the nine criterion scores and
// aggregates them into the weighted overall score. Scorers are pure
// functions: degenerate input yields each scorer's documented floor
// instead of an error.
package score
