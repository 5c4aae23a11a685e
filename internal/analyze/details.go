package analyze

import (
	"regexp"
	"strings"

	"github.com/webboost/webboost/internal/model"
)

// Engagement and uniqueness word patterns.
var (
	positiveWordPattern = regexp.MustCompile(`\b(great|excellent|amazing|love|perfect|wonderful|good|nice|awesome)\b`)
	negativeWordPattern = regexp.MustCompile(`\b(bad|terrible|awful|hate|worst|horrible|poor|disappointing)\b`)
	ctaWordPattern      = regexp.MustCompile(`\b(click|learn|discover|join|subscribe|download|sign up|get started)\b`)

	researchWordPattern    = regexp.MustCompile(`\b(research|study|survey|data|analysis|experiment|finding)\b`)
	firstPersonPattern     = regexp.MustCompile(`(?i)\b(i|we|our|us|my|mine|ours)\b`)
	primaryResearchPattern = regexp.MustCompile(`\b(interview|surveyed|studied|analyzed|experimented|observed)\b`)

	uniquenessTokenPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)
)

// EngagementCounts extracts the raw counts behind the engagement score.
// The tone and call-to-action word lists are matched against lowercased
// text.
func EngagementCounts(text string) model.EngagementDetails {
	var details model.EngagementDetails
	if text == "" {
		return details
	}

	lower := strings.ToLower(text)
	details.PositiveWords = len(positiveWordPattern.FindAllString(lower, -1))
	details.NegativeWords = len(negativeWordPattern.FindAllString(lower, -1))
	details.Questions = strings.Count(text, "?")
	details.Exclamations = strings.Count(text, "!")
	details.CTAWords = len(ctaWordPattern.FindAllString(lower, -1))
	return details
}

// UniquenessCounts extracts the raw counts behind the uniqueness score:
// research vocabulary, first-person voice, vocabulary variety, and
// primary research verbs.
func UniquenessCounts(text string) model.UniquenessDetails {
	var details model.UniquenessDetails
	if text == "" {
		return details
	}

	lower := strings.ToLower(text)
	details.ResearchWords = len(researchWordPattern.FindAllString(lower, -1))
	details.FirstPersonCount = len(firstPersonPattern.FindAllString(text, -1))
	details.PrimaryResearch = len(primaryResearchPattern.FindAllString(lower, -1))

	tokens := uniquenessTokenPattern.FindAllString(lower, -1)
	if len(tokens) > 0 {
		distinct := make(map[string]bool, len(tokens))
		for _, token := range tokens {
			distinct[token] = true
		}
		details.UniqueRatio = float64(len(distinct)) / float64(len(tokens))
	}
	return details
}

// ContentStatistics extracts raw element and word counts.
func ContentStatistics(text string, snapshot *model.PageSnapshot) model.ContentStats {
	var stats model.ContentStats
	stats.WordCount = len(strings.Fields(text))

	if snapshot != nil && snapshot.HasDOM {
		stats.HeaderCount = snapshot.HeadingCount(1, 2, 3, 4, 5, 6)
		stats.ImageCount = len(snapshot.Images)
		stats.LinkCount = len(snapshot.Anchors)
		stats.SchemaMarkupCount = snapshot.SchemaScriptCount
	}
	return stats
}
