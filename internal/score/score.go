package score

import (
	"regexp"
	"strings"

	"github.com/webboost/webboost/internal/analyze"
	"github.com/webboost/webboost/internal/model"
)

// Discoverability element patterns.
var (
	breadcrumbPattern = regexp.MustCompile(`(?i)breadcrumb`)
	sitemapPattern    = regexp.MustCompile(`(?i)sitemap`)
)

// All computes the nine criterion scores from the snapshot and its
// signal bundle. The bundle must already carry the extractor outputs;
// the scorers only combine them.
func All(snapshot *model.PageSnapshot, bundle *model.SignalBundle) model.ScoreSet {
	var scores model.ScoreSet
	scores.Readability = Readability(snapshot.Text, bundle.ReadabilityDetails)
	scores.Informativeness = Informativeness(snapshot, bundle.ContentStats, bundle.CitationAnalysis)
	scores.Engagement = Engagement(snapshot, bundle.EngagementDetails)
	scores.Uniqueness = Uniqueness(snapshot.Text, bundle.UniquenessDetails)
	scores.Discoverability = Discoverability(snapshot)
	scores.AdExperience = AdExperience(snapshot, bundle.AdDetails)
	scores.SocialIntegration = SocialIntegration(bundle.Social)
	scores.LayoutQuality = LayoutQuality(snapshot, bundle.Mobile, bundle.Security, bundle.Design)
	scores.SEOKeywords = SEOKeywords(snapshot, bundle)
	return scores
}

// Attach mirrors the computed criterion scores into the bundle's detail
// entries so presentation layers can render each card standalone.
func Attach(bundle *model.SignalBundle, scores model.ScoreSet) {
	bundle.ReadabilityDetails.Score = scores.Readability
	bundle.ContentStats.InformativenessScore = scores.Informativeness
	bundle.EngagementDetails.Score = scores.Engagement
	bundle.UniquenessDetails.Score = scores.Uniqueness
	bundle.AdDetails.Score = scores.AdExperience
	bundle.Social.SocialScore = scores.SocialIntegration
	bundle.Design.LayoutScore = scores.LayoutQuality
}

// Readability normalizes the available readability formulas to a 0-100
// score. Text under 100 characters scores a neutral 50. When every
// formula is unavailable the average sentence length decides: short
// sentences score 80, moderate 60, long 40.
func Readability(text string, metrics model.ReadabilityMetrics) float64 {
	if len(strings.TrimSpace(text)) < 100 {
		return 50
	}

	total := 0.0
	available := 0

	if metrics.FleschReadingEase > 0 {
		total += clamp(metrics.FleschReadingEase, 0, 100)
		available++
	}
	for _, grade := range []float64{
		metrics.FleschKincaidGrade,
		metrics.GunningFog,
		metrics.SMOGIndex,
		metrics.AutomatedReadability,
		metrics.ColemanLiau,
	} {
		if grade > 0 {
			total += max(0, 100-grade*5)
			available++
		}
	}

	if available > 0 {
		return clamp(total/float64(available), 0, 100)
	}

	return sentenceLengthFallback(text)
}

// sentenceLengthFallback scores readability from average sentence length
// alone.
func sentenceLengthFallback(text string) float64 {
	words := len(strings.Fields(text))
	sentences := 0
	for _, chunk := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(chunk) != "" {
			sentences++
		}
	}

	if words == 0 || sentences == 0 {
		return 50
	}

	avgSentenceLength := float64(words) / float64(sentences)
	switch {
	case avgSentenceLength <= 15:
		return 80
	case avgSentenceLength <= 25:
		return 60
	default:
		return 40
	}
}

// Informativeness scores content depth, structure, media richness, and
// citations.
func Informativeness(snapshot *model.PageSnapshot, stats model.ContentStats, citations model.CitationData) float64 {
	if snapshot.Text == "" || !snapshot.HasDOM {
		return 0
	}

	depth := min(30, float64(stats.WordCount)/100)
	structure := min(25, float64(stats.HeaderCount*2))
	media := min(20, float64(stats.ImageCount+stats.LinkCount)*1.5)
	citation := min(25, citations.CitationScore)

	return min(100, depth+structure+media+citation)
}

// Engagement scores tone, interaction prompts, and skimmability.
func Engagement(snapshot *model.PageSnapshot, details model.EngagementDetails) float64 {
	if snapshot.Text == "" {
		return 0
	}

	sentiment := clamp(50+float64(details.PositiveWords-details.NegativeWords)*3, 0, 100)
	interaction := min(30, float64(details.Questions*2)+float64(details.Exclamations)*1.5+float64(details.CTAWords*2))
	skimming := analyze.SkimmingOptimization(snapshot)

	return min(100, sentiment+interaction+skimming)
}

// Uniqueness scores originality markers: research vocabulary, personal
// voice, vocabulary variety, and primary research verbs over a base of 40.
func Uniqueness(text string, details model.UniquenessDetails) float64 {
	if text == "" {
		return 0
	}

	score := 40.0
	score += min(20, float64(details.ResearchWords*3))
	score += min(15, float64(details.FirstPersonCount)*0.8)
	score += min(15, details.UniqueRatio*30)
	score += min(10, float64(details.PrimaryResearch*2))

	return min(100, score)
}

// Discoverability scores navigation affordances: search, nav elements,
// breadcrumbs, a sitemap link, featured sections, and taxonomy.
func Discoverability(snapshot *model.PageSnapshot) float64 {
	if !snapshot.HasDOM {
		return 0
	}

	score := 0.0
	if snapshot.SearchInputCount > 0 {
		score += 15
	} else {
		score += 5
	}
	score += min(20, float64(snapshot.NavCount*5))
	if snapshot.CountClassMatch(breadcrumbPattern) > 0 {
		score += 15
	}
	if snapshot.HasAnchorHrefMatch(sitemapPattern) {
		score += 10
	}
	score += min(15, float64(analyze.FeaturedContent(snapshot)*3))
	score += min(25, float64(analyze.CategoryOrganization(snapshot)))

	return min(100, score)
}

// AdExperience scores the absence of intrusive advertising. It starts
// from 100 and subtracts 5 per ad indicator hit plus the placement and
// autoplay penalties.
func AdExperience(snapshot *model.PageSnapshot, details model.AdDetails) float64 {
	if snapshot.HTML == "" {
		return 0
	}

	quality := 100 - float64(details.AdCount*5) - float64(details.PlacementScore) - float64(details.AutoplayScore)
	return clamp(quality, 0, 100)
}

// SocialIntegration scores platform presence, sharing buttons, and
// social proof.
func SocialIntegration(social model.SocialData) float64 {
	platformCount := 0
	for _, platform := range model.SocialPlatforms {
		if social.Platforms[platform] {
			platformCount++
		}
	}

	score := float64(platformCount*10) + float64(social.SharingButtons*3)
	score += min(float64(social.SocialProof.ShareCounts*2), 10)
	score += min(float64(social.SocialProof.FollowerCounts*2), 10)
	score += min(float64(social.SocialProof.Testimonials*3), 15)

	return min(100, score)
}

// LayoutQuality scores mobile readiness, transport security, heading
// discipline, and the design heuristics over a base of 40.
func LayoutQuality(snapshot *model.PageSnapshot, mobile model.MobileData, security model.SecurityData, design model.DesignMetrics) float64 {
	score := 40.0

	if mobile.HasViewport {
		score += 10
	}
	if mobile.HandheldFriendly {
		score += 5
	}
	if mobile.TouchOptimized {
		score += 5
	}
	if security.HTTPS {
		score += 10
	}
	if snapshot.HasDOM && snapshot.H1Count() == 1 {
		score += 5
	}

	score += design.WhitespaceScore
	score += design.TypographyScore
	score += design.ColorContrastScore

	return min(100, score)
}

// SEOKeywords scores on-page SEO: tag lengths, heading discipline,
// index presence, keyword and linking bands, freshness, structured
// data, and URL structure, plus a 15 point base.
func SEOKeywords(snapshot *model.PageSnapshot, bundle *model.SignalBundle) float64 {
	if !snapshot.HasDOM {
		return 0
	}

	score := 0.0

	if titleLen := len(snapshot.Title); titleLen >= 30 && titleLen <= 60 {
		score += 10
	}
	if descLen := len(snapshot.MetaTags["description"]); descLen >= 120 && descLen <= 160 {
		score += 10
	}
	if snapshot.H1Count() == 1 {
		score += 5
	}
	if bundle.SEO.Indexed {
		score += 10
	}

	score += bundle.KeywordAnalysis.KeywordScore
	score += bundle.InternalLinking.LinkingScore
	score += bundle.ContentFreshness.FreshnessScore
	score += min(float64(snapshot.SchemaScriptCount*3), 10)
	score += float64(analyze.URLStructure(snapshot.URL))

	return min(100, score+15)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}
