package analyze

import (
	"regexp"
	"strings"

	"github.com/webboost/webboost/internal/model"
)

// Design heuristic patterns.
var (
	crowdedStylePattern = regexp.MustCompile(`(?i)margin:\s*0|padding:\s*0`)
	fontFamilyPattern   = regexp.MustCompile(`font-family:\s*([^;]+)`)
	hexColorPattern     = regexp.MustCompile(`(?i)color:\s*#([0-9a-f]{6})`)
)

// DesignQuality computes the four design heuristic sub-scores, each in
// [0,10]: whitespace (penalized by zero-margin styles), typography
// (rewarded by font variety), color contrast (penalized by heavy hex
// color use), and visual hierarchy (rewarded by heading level variety).
func DesignQuality(snapshot *model.PageSnapshot) model.DesignMetrics {
	var metrics model.DesignMetrics
	if snapshot == nil || !snapshot.HasDOM {
		return metrics
	}

	crowded := snapshot.CountStyleMatch(crowdedStylePattern)
	metrics.WhitespaceScore = max(0, float64(10-crowded))

	fonts := make(map[string]bool)
	for _, match := range fontFamilyPattern.FindAllStringSubmatch(snapshot.HTML, -1) {
		fonts[strings.TrimSpace(match[1])] = true
	}
	metrics.TypographyScore = min(10, float64(len(fonts)*2))

	hexColors := len(hexColorPattern.FindAllString(snapshot.HTML, -1))
	metrics.ColorContrastScore = max(0, 10-float64(hexColors)*0.1)

	metrics.VisualHierarchyScore = min(10, float64(snapshot.DistinctHeadingLevels()*2))

	return metrics
}
