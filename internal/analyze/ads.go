package analyze

import (
	"regexp"
	"strings"

	"github.com/webboost/webboost/internal/model"
)

// Penalty caps for the ad experience sub-scores.
const (
	maxPlacementScore = 30
	maxAutoplayScore  = 30
)

// autoplayPenaltyPerElement is the penalty for each autoplaying element.
const autoplayPenaltyPerElement = 15

// adIndicators are markup substrings that indicate advertising.
var adIndicators = []string{
	"googleads", "doubleclick", "adsbygoogle", "advertisement",
	"banner-ad", "popup", "modal", "overlay", "ad-container",
	"ad-unit", "ad-slot", "ad-wrapper",
}

// placementIndicators flag intrusive ads near the top of the page.
var placementIndicators = []string{"ad", "banner", "popup"}

// contentAreaPattern matches main content region classes.
var contentAreaPattern = regexp.MustCompile(`(?i)content|article|post`)

// AdCount counts ad indicator substring hits across the raw markup.
func AdCount(markup string) int {
	if markup == "" {
		return 0
	}

	lower := strings.ToLower(markup)
	count := 0
	for _, indicator := range adIndicators {
		count += strings.Count(lower, indicator)
	}
	return count
}

// AdPlacement scores ad placement intrusiveness: 10 per indicator found
// in the opening body markup plus 5 per content region containing ad
// markup, capped at 30.
func AdPlacement(snapshot *model.PageSnapshot) int {
	if snapshot == nil || !snapshot.HasDOM {
		return 0
	}

	score := 0
	prefix := strings.ToLower(snapshot.BodyPrefix)
	if prefix != "" {
		for _, indicator := range placementIndicators {
			if strings.Contains(prefix, indicator) {
				score += 10
			}
		}
	}

	for _, region := range snapshot.RegionsByClass(contentAreaPattern) {
		markup := strings.ToLower(region.Markup)
		if strings.Contains(markup, "ad") || strings.Contains(markup, "banner") {
			score += 5
		}
	}

	return min(score, maxPlacementScore)
}

// AutoplayPenalty scores auto-playing media: 15 per autoplaying video
// or audio element, capped at 30.
func AutoplayPenalty(snapshot *model.PageSnapshot) int {
	if snapshot == nil || !snapshot.HasDOM {
		return 0
	}

	penalty := (snapshot.AutoplayVideoCount + snapshot.AutoplayAudioCount) * autoplayPenaltyPerElement
	return min(penalty, maxAutoplayScore)
}
