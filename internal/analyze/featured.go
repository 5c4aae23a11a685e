package analyze

import (
	"regexp"

	"github.com/webboost/webboost/internal/model"
)

// maxFeaturedCount caps the featured section count.
const maxFeaturedCount = 5

// featuredPatterns match featured and popular content section classes.
var featuredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)featured`),
	regexp.MustCompile(`(?i)popular`),
	regexp.MustCompile(`(?i)trending`),
	regexp.MustCompile(`(?i)recommended`),
	regexp.MustCompile(`(?i)editor.pick`),
	regexp.MustCompile(`(?i)most.read`),
	regexp.MustCompile(`(?i)top.posts`),
	regexp.MustCompile(`(?i)best.of`),
}

// FeaturedContent counts featured or popular post sections, capped at 5.
func FeaturedContent(snapshot *model.PageSnapshot) int {
	if snapshot == nil || !snapshot.HasDOM {
		return 0
	}

	count := 0
	for _, pattern := range featuredPatterns {
		count += snapshot.CountClassMatch(pattern)
	}
	return min(count, maxFeaturedCount)
}
