package recommend

import (
	"fmt"

	"github.com/webboost/webboost/internal/model"
)

// criterionMessages holds one message template per criterion and tier.
// Each template takes the criterion score as its single %.1f argument.
var criterionMessages = map[model.Criterion]map[model.Tier]string{
	model.CriterionReadability: {
		model.TierCritical:  "Rewrite for readability (score: %.1f) - sentences are far too long or complex for most readers",
		model.TierHigh:      "Improve readability (score: %.1f) - use shorter sentences and simpler vocabulary",
		model.TierMedium:    "Tighten readability (score: %.1f) - break up the longest paragraphs and sentences",
		model.TierLow:       "Readability is solid (score: %.1f) - a light editing pass could still simplify a few passages",
		model.TierExcellent: "Readability is excellent (score: %.1f) - keep the current writing style",
	},
	model.CriterionInformativeness: {
		model.TierCritical:  "Substantially expand the content (score: %.1f) - add depth, supporting detail, and citations",
		model.TierHigh:      "Add more citations and depth to content (score: %.1f)",
		model.TierMedium:    "Deepen the content (score: %.1f) - add examples, data, or references",
		model.TierLow:       "Content depth is good (score: %.1f) - a few more sources would round it out",
		model.TierExcellent: "Content depth is excellent (score: %.1f) - keep citing sources",
	},
	model.CriterionEngagement: {
		model.TierCritical:  "Content reads flat (score: %.1f) - add questions, calls to action, and skimmable structure",
		model.TierHigh:      "Add more interactive elements and improve skimmability (score: %.1f)",
		model.TierMedium:    "Boost engagement (score: %.1f) - more headings, lists, and direct reader address",
		model.TierLow:       "Engagement is good (score: %.1f) - consider an extra call to action",
		model.TierExcellent: "Engagement is excellent (score: %.1f) - the content invites interaction",
	},
	model.CriterionUniqueness: {
		model.TierCritical:  "Content offers little original value (score: %.1f) - add first-hand research or analysis",
		model.TierHigh:      "Include more original research and unique perspectives (score: %.1f)",
		model.TierMedium:    "Differentiate the content (score: %.1f) - add personal experience or original data",
		model.TierLow:       "Uniqueness is good (score: %.1f) - one original study or survey would stand out",
		model.TierExcellent: "Uniqueness is excellent (score: %.1f) - the original perspective shows",
	},
	model.CriterionLayoutQuality: {
		model.TierCritical:  "Layout needs rework (score: %.1f) - add a viewport meta tag, HTTPS, and mobile-friendly styles",
		model.TierHigh:      "Improve mobile responsiveness and design (score: %.1f)",
		model.TierMedium:    "Polish the layout (score: %.1f) - review spacing, typography, and heading structure",
		model.TierLow:       "Layout is good (score: %.1f) - minor spacing or contrast tweaks remain",
		model.TierExcellent: "Layout is excellent (score: %.1f) - clean and mobile ready",
	},
	model.CriterionDiscoverability: {
		model.TierCritical:  "Visitors cannot navigate the site (score: %.1f) - add search, navigation, and categories",
		model.TierHigh:      "Improve navigation and content organization (score: %.1f)",
		model.TierMedium:    "Strengthen discoverability (score: %.1f) - breadcrumbs and a sitemap link help",
		model.TierLow:       "Discoverability is good (score: %.1f) - featured content sections could surface more pages",
		model.TierExcellent: "Discoverability is excellent (score: %.1f) - navigation covers the site well",
	},
	model.CriterionSEOKeywords: {
		model.TierCritical:  "SEO fundamentals are missing (score: %.1f) - fix title, meta description, and heading tags",
		model.TierHigh:      "Optimize SEO tags and keyword strategy (score: %.1f)",
		model.TierMedium:    "Refine SEO (score: %.1f) - tune keyword density and internal linking",
		model.TierLow:       "SEO is good (score: %.1f) - structured data could add rich results",
		model.TierExcellent: "SEO is excellent (score: %.1f) - tags and keywords are well tuned",
	},
	model.CriterionAdExperience: {
		model.TierCritical:  "Ads overwhelm the content (score: %.1f) - remove popups and autoplay media",
		model.TierHigh:      "Reduce ad density and improve placement (score: %.1f)",
		model.TierMedium:    "Review ad placement (score: %.1f) - keep ads out of the main content area",
		model.TierLow:       "Ad experience is good (score: %.1f) - current density is tolerable",
		model.TierExcellent: "Ad experience is excellent (score: %.1f) - content stays in front",
	},
	model.CriterionSocialIntegration: {
		model.TierCritical:  "No social presence detected (score: %.1f) - add profile links and sharing buttons",
		model.TierHigh:      "Enhance social media integration and sharing options (score: %.1f)",
		model.TierMedium:    "Extend social integration (score: %.1f) - add share counts or testimonials",
		model.TierLow:       "Social integration is good (score: %.1f) - another platform link could widen reach",
		model.TierExcellent: "Social integration is excellent (score: %.1f) - sharing is frictionless",
	},
}

// criterionMessage renders the message for a criterion at a tier.
// Unknown criteria fall back to a generic template so a new criterion
// never produces an empty recommendation.
func criterionMessage(criterion model.Criterion, tier model.Tier, score float64) string {
	if template, ok := criterionMessages[criterion][tier]; ok {
		return fmt.Sprintf(template, score)
	}
	return fmt.Sprintf("Improve %s (score: %.1f)", criterion, score)
}
