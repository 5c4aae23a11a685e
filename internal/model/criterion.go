package model

import "fmt"

// Criterion identifies one of the nine scoring dimensions.
type Criterion string

// The nine audit criteria. These names are stable: they appear as JSON
// keys in reports and as keys in the weight configuration.
const (
	CriterionReadability       Criterion = "readability"
	CriterionInformativeness   Criterion = "informativeness"
	CriterionEngagement        Criterion = "engagement"
	CriterionUniqueness        Criterion = "uniqueness"
	CriterionDiscoverability   Criterion = "discoverability"
	CriterionAdExperience      Criterion = "ad_experience"
	CriterionSocialIntegration Criterion = "social_integration"
	CriterionLayoutQuality     Criterion = "layout_quality"
	CriterionSEOKeywords       Criterion = "seo_keywords"
)

// Criteria returns all criteria in their canonical display order.
// The order matches the weight table: heaviest weights first.
func Criteria() []Criterion {
	return []Criterion{
		CriterionInformativeness,
		CriterionReadability,
		CriterionEngagement,
		CriterionUniqueness,
		CriterionLayoutQuality,
		CriterionDiscoverability,
		CriterionSEOKeywords,
		CriterionAdExperience,
		CriterionSocialIntegration,
	}
}

// ScoreSet holds the score for every criterion. All values are in [0,100];
// scorers clamp internally so the invariant holds by construction.
type ScoreSet struct {
	Readability       float64 `json:"readability"`
	Informativeness   float64 `json:"informativeness"`
	Engagement        float64 `json:"engagement"`
	Uniqueness        float64 `json:"uniqueness"`
	Discoverability   float64 `json:"discoverability"`
	AdExperience      float64 `json:"ad_experience"`
	SocialIntegration float64 `json:"social_integration"`
	LayoutQuality     float64 `json:"layout_quality"`
	SEOKeywords       float64 `json:"seo_keywords"`
}

// Get returns the score for the given criterion.
// It panics on an unknown criterion because criteria are a closed set;
// passing anything else is a programming error, not an input error.
func (s ScoreSet) Get(c Criterion) float64 {
	switch c {
	case CriterionReadability:
		return s.Readability
	case CriterionInformativeness:
		return s.Informativeness
	case CriterionEngagement:
		return s.Engagement
	case CriterionUniqueness:
		return s.Uniqueness
	case CriterionDiscoverability:
		return s.Discoverability
	case CriterionAdExperience:
		return s.AdExperience
	case CriterionSocialIntegration:
		return s.SocialIntegration
	case CriterionLayoutQuality:
		return s.LayoutQuality
	case CriterionSEOKeywords:
		return s.SEOKeywords
	default:
		panic(fmt.Sprintf("model: unknown criterion %q", c))
	}
}

// Set assigns the score for the given criterion.
func (s *ScoreSet) Set(c Criterion, v float64) {
	switch c {
	case CriterionReadability:
		s.Readability = v
	case CriterionInformativeness:
		s.Informativeness = v
	case CriterionEngagement:
		s.Engagement = v
	case CriterionUniqueness:
		s.Uniqueness = v
	case CriterionDiscoverability:
		s.Discoverability = v
	case CriterionAdExperience:
		s.AdExperience = v
	case CriterionSocialIntegration:
		s.SocialIntegration = v
	case CriterionLayoutQuality:
		s.LayoutQuality = v
	case CriterionSEOKeywords:
		s.SEOKeywords = v
	default:
		panic(fmt.Sprintf("model: unknown criterion %q", c))
	}
}
