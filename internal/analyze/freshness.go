package analyze

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"

	"github.com/webboost/webboost/internal/model"
)

// maxFreshnessScore caps the freshness contribution to the SEO score.
const maxFreshnessScore = 10

// datePatterns match the three date shapes counted as update signals:
// slashed or dashed numeric dates, month-name dates, and ISO dates.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{4}\b`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
}

// ContentFreshness counts date mentions in the text and reports the
// most recent parseable one as the last-updated date.
func ContentFreshness(text string) model.FreshnessData {
	var data model.FreshnessData
	if text == "" {
		return data
	}

	var mentions []string
	for _, pattern := range datePatterns {
		mentions = append(mentions, pattern.FindAllString(text, -1)...)
	}
	if len(mentions) == 0 {
		return data
	}

	data.UpdateFrequency = len(mentions)
	data.FreshnessScore = min(float64(maxFreshnessScore), float64(len(mentions)*2))

	if latest, ok := latestDate(mentions); ok {
		data.LastUpdated = latest.Format("2006-01-02")
	}
	return data
}

// latestDate parses the date mentions and returns the most recent.
// Unparseable mentions are skipped.
func latestDate(mentions []string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, mention := range mentions {
		parsed, err := dateparse.ParseAny(mention)
		if err != nil {
			continue
		}
		if !found || parsed.After(latest) {
			latest = parsed
			found = true
		}
	}
	return latest, found
}
