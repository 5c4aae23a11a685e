package analyze

import (
	"testing"

	"github.com/webboost/webboost/internal/model"
)

func TestContentFreshness(t *testing.T) {
	t.Parallel()

	text := "Updated on 2024-03-15. Previously published January 2, 2023."
	data := ContentFreshness(text)

	if data.UpdateFrequency != 2 {
		t.Errorf("UpdateFrequency = %d, want 2", data.UpdateFrequency)
	}
	if data.FreshnessScore != 4 {
		t.Errorf("FreshnessScore = %v, want 4", data.FreshnessScore)
	}
	if data.LastUpdated != "2024-03-15" {
		t.Errorf("LastUpdated = %q, want most recent date 2024-03-15", data.LastUpdated)
	}
}

func TestContentFreshness_ScoreCap(t *testing.T) {
	t.Parallel()

	text := "2020-01-01 2020-02-01 2020-03-01 2020-04-01 2020-05-01 2020-06-01 2020-07-01"
	data := ContentFreshness(text)

	if data.UpdateFrequency != 7 {
		t.Errorf("UpdateFrequency = %d, want 7", data.UpdateFrequency)
	}
	if data.FreshnessScore != 10 {
		t.Errorf("FreshnessScore = %v, want cap 10", data.FreshnessScore)
	}
}

func TestContentFreshness_SlashedDates(t *testing.T) {
	t.Parallel()

	data := ContentFreshness("Posted 3/15/2024 and revised 12-01-2024.")
	if data.UpdateFrequency != 2 {
		t.Errorf("UpdateFrequency = %d, want 2", data.UpdateFrequency)
	}
}

func TestContentFreshness_NoDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "no dates", text: "timeless content with no dates at all"},
		{name: "bare year", text: "founded in 1999 and still going"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ContentFreshness(tt.text); got != (model.FreshnessData{}) {
				t.Errorf("ContentFreshness(%q) = %+v, want zero value", tt.text, got)
			}
		})
	}
}
