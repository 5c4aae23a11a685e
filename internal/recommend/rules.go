package recommend

import "github.com/webboost/webboost/internal/model"

// rule is one data-driven recommendation. Each rule inspects the raw
// signal bundle independently of the scorers and fires at most once.
type rule struct {
	tier    model.Tier
	applies func(*model.SignalBundle) bool
	message string
}

// signalRules are evaluated in order against the signal bundle.
var signalRules = []rule{
	{
		tier:    model.TierCritical,
		applies: func(b *model.SignalBundle) bool { return !b.Security.HTTPS },
		message: "Implement HTTPS for security and SEO",
	},
	{
		tier:    model.TierHigh,
		applies: func(b *model.SignalBundle) bool { return b.ContentStats.WordCount < 300 },
		message: "Expand the content beyond 300 words - thin pages rarely rank",
	},
	{
		tier:    model.TierHigh,
		applies: func(b *model.SignalBundle) bool { return b.ContentStats.HeaderCount == 0 },
		message: "Add headings to structure the content",
	},
	{
		tier:    model.TierHigh,
		applies: func(b *model.SignalBundle) bool { return !b.Mobile.HasViewport },
		message: "Add a viewport meta tag for mobile rendering",
	},
	{
		tier:    model.TierHigh,
		applies: func(b *model.SignalBundle) bool { return b.Performance.LoadTime > 3 },
		message: "Reduce page load time below 3 seconds",
	},
	{
		tier:    model.TierMedium,
		applies: func(b *model.SignalBundle) bool { return b.KeywordAnalysis.KeywordDensity < 0.5 },
		message: "Increase keyword density to 1-2% for better SEO",
	},
	{
		tier:    model.TierMedium,
		applies: func(b *model.SignalBundle) bool { return b.KeywordAnalysis.KeywordDensity > 3 },
		message: "Reduce keyword density below 3% to avoid keyword stuffing",
	},
	{
		tier:    model.TierMedium,
		applies: func(b *model.SignalBundle) bool { return b.InternalLinking.InternalLinks < 5 },
		message: "Add more internal links to improve navigation and SEO",
	},
	{
		tier:    model.TierMedium,
		applies: func(b *model.SignalBundle) bool { return b.CitationAnalysis.CitationCount < 3 },
		message: "Add more citations to improve content credibility",
	},
	{
		tier:    model.TierMedium,
		applies: func(b *model.SignalBundle) bool { return b.ContentStats.ImageCount == 0 },
		message: "Add images to support the text",
	},
	{
		tier:    model.TierMedium,
		applies: func(b *model.SignalBundle) bool { return b.ContentStats.SchemaMarkupCount == 0 },
		message: "Add schema.org structured data for rich search results",
	},
	{
		tier:    model.TierMedium,
		applies: func(b *model.SignalBundle) bool { return b.Mobile.TinyFonts > 5 },
		message: "Increase small font sizes - text under 14px is hard to read on mobile",
	},
	{
		tier: model.TierLow,
		applies: func(b *model.SignalBundle) bool {
			return b.ContentStats.WordCount >= 300 && b.ContentStats.WordCount < 1000
		},
		message: "Consider growing the content toward 1000+ words for competitive topics",
	},
	{
		tier: model.TierLow,
		applies: func(b *model.SignalBundle) bool {
			return b.Performance.LoadTime > 1 && b.Performance.LoadTime <= 3
		},
		message: "Trim page load time toward 1 second",
	},
	{
		tier:    model.TierLow,
		applies: func(b *model.SignalBundle) bool { return b.ContentFreshness.UpdateFrequency == 0 },
		message: "Add a visible publication or updated date",
	},
	{
		tier: model.TierLow,
		applies: func(b *model.SignalBundle) bool {
			return b.Mobile.HasViewport && !b.Mobile.HandheldFriendly
		},
		message: "Consider a HandheldFriendly meta tag for legacy mobile clients",
	},
}
