package model

import "encoding/json"

// Recommendation is one actionable suggestion produced by the audit.
// Recommendations are ephemeral: generated fresh per audit and never
// merged across runs.
type Recommendation struct {
	// Tier is the priority bucket used for ordering.
	Tier Tier

	// Criterion is the criterion that produced the recommendation,
	// empty for data-driven rules not tied to a single criterion.
	Criterion Criterion

	// Message is the human-readable suggestion, without the tier prefix.
	Message string
}

// String renders the recommendation the way reports display it,
// with the tier prefix.
func (r Recommendation) String() string {
	return r.Tier.String() + ": " + r.Message
}

// MarshalJSON serializes the recommendation as its display string.
// The report contract expects recommendations as a list of strings.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// TopRecommendations returns at most n recommendations from the already
// sorted list. The cap is a presentation concern: terminal and markdown
// reports show the top entries while JSON carries the full list.
func TopRecommendations(recs []Recommendation, n int) []Recommendation {
	if len(recs) <= n {
		return recs
	}
	return recs[:n]
}
