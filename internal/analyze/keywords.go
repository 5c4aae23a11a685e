package analyze

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/webboost/webboost/internal/model"
)

// maxPrimaryKeywords is how many top keywords are reported.
const maxPrimaryKeywords = 10

// keywordTokenPattern matches alphabetic tokens of length at least five.
var keywordTokenPattern = regexp.MustCompile(`\b[a-zA-Z]{5,}\b`)

// keywordStopWords are common tokens excluded from keyword ranking.
var keywordStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "were": true, "been": true,
	"their": true, "what": true,
}

// Keywords ranks the most frequent meaningful tokens and bands their
// combined density into a score: 15 when density lands in the 1-2%
// sweet spot, 10 from 0.5% up, 5 below that.
func Keywords(text string) model.KeywordData {
	data := model.KeywordData{PrimaryKeywords: []string{}}
	if text == "" {
		return data
	}

	tokens := keywordTokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return data
	}

	freq := make(map[string]int)
	var order []string
	for _, token := range tokens {
		if keywordStopWords[token] {
			continue
		}
		if freq[token] == 0 {
			order = append(order, token)
		}
		freq[token]++
	}

	// Stable sort keeps first-occurrence order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxPrimaryKeywords {
		order = order[:maxPrimaryKeywords]
	}
	data.PrimaryKeywords = order

	topTotal := 0
	for _, keyword := range order {
		topTotal += freq[keyword]
	}

	density := float64(topTotal) / float64(len(tokens)) * 100
	data.KeywordDensity = math.Round(density*100) / 100

	switch {
	case density >= 1 && density <= 2:
		data.KeywordScore = 15
	case density >= 0.5:
		data.KeywordScore = 10
	default:
		data.KeywordScore = 5
	}
	return data
}
