// Package model defines the core data types for a content audit:
// the page snapshot built from a fetched page, the signal bundle produced
// by extractors and collectors, the per-criterion score set, and the
// final audit report returned to callers.
package model
