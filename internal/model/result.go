package model

import "time"

// Report is the terminal artifact of one audit run. It is owned solely
// by the caller once returned; the pipeline holds no reference after
// producing it.
//
// Design decision: We use a single struct for both in-flight pipeline
// state and the serialized result rather than separate types. Steps fill
// in their sections as they run, and the JSON tags define the stable
// output contract consumed by every report writer.
type Report struct {
	// URL is the audited page URL.
	URL string `json:"url"`

	// AnalyzedAt is when the audit ran. It is the only time-dependent
	// field: two audits of identical input differ only here.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Scores holds the nine criterion scores.
	Scores ScoreSet `json:"scores"`

	// OverallScore is the weighted average of all criteria, rounded to
	// two decimals.
	OverallScore float64 `json:"overall_score"`

	// ScoreBreakdown maps each criterion to its weighted contribution.
	// The contributions sum to OverallScore within 0.1.
	ScoreBreakdown map[Criterion]float64 `json:"score_breakdown"`

	// FreeDataSources is the signal bundle collected during the audit.
	// The name is part of the output contract.
	FreeDataSources SignalBundle `json:"free_data_sources"`

	// Recommendations is the full tier-sorted recommendation list.
	// Serialized as display strings.
	Recommendations []Recommendation `json:"recommendations"`

	// Snapshot is the fetched page data. Excluded from serialization
	// due to size; report writers only need the fields above.
	Snapshot *PageSnapshot `json:"-"`
}

// NewReport creates an empty report for the given URL, stamped with the
// current time.
func NewReport(url string) *Report {
	return &Report{
		URL:            url,
		AnalyzedAt:     time.Now(),
		ScoreBreakdown: make(map[Criterion]float64),
	}
}
