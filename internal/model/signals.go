package model

// SignalBundle groups every intermediate metric produced during an audit,
// one fixed-shape entry per extractor or collector. The JSON field names
// are a stable contract: presentation layers key directly into them
// (e.g. free_data_sources.keyword_analysis.keyword_density).
//
// Design decision: Each entry is a concrete struct rather than a generic
// map so a missing field is a compile error at the access site instead of
// a silent zero at runtime. Absent input data yields the zero value of
// the entry, which doubles as its documented default.
type SignalBundle struct {
	Performance        PerformanceData    `json:"performance"`
	Mobile             MobileData         `json:"mobile"`
	SEO                SEOData            `json:"seo"`
	Security           SecurityData       `json:"security"`
	Social             SocialData         `json:"social"`
	Design             DesignMetrics      `json:"design"`
	ContentFreshness   FreshnessData      `json:"content_freshness"`
	KeywordAnalysis    KeywordData        `json:"keyword_analysis"`
	InternalLinking    LinkingData        `json:"internal_linking"`
	CitationAnalysis   CitationData       `json:"citation_analysis"`
	ContentStats       ContentStats       `json:"content_stats"`
	ReadabilityDetails ReadabilityMetrics `json:"readability_details"`
	EngagementDetails  EngagementDetails  `json:"engagement_details"`
	UniquenessDetails  UniquenessDetails  `json:"uniqueness_details"`
	AdDetails          AdDetails          `json:"ad_details"`
}

// CitationData summarizes citation and attribution signals in the text.
type CitationData struct {
	// CitationCount is the total number of citation pattern matches.
	CitationCount int `json:"citation_count"`

	// SourceCount is the number of reference/citation/bibliography
	// classed DOM sections.
	SourceCount int `json:"source_count"`

	// CitationScore is min(25, CitationCount*2 + SourceCount*5).
	CitationScore float64 `json:"citation_score"`
}

// KeywordData summarizes keyword usage in the text.
type KeywordData struct {
	// PrimaryKeywords are the top ten non-stopword tokens by frequency.
	PrimaryKeywords []string `json:"primary_keywords"`

	// KeywordDensity is the share of all tokens taken by the primary
	// keywords, as a percentage rounded to two decimals.
	KeywordDensity float64 `json:"keyword_density"`

	// KeywordScore is the banded SEO contribution: 15 for density in
	// [1,2], 10 for [0.5,3], otherwise 5 (0 with no tokens).
	KeywordScore float64 `json:"keyword_score"`
}

// LinkingData summarizes internal versus external linking.
type LinkingData struct {
	InternalLinks int `json:"internal_links"`
	ExternalLinks int `json:"external_links"`

	// LinkingScore is 15 when the internal ratio is at least 0.6,
	// 10 at 0.4, 5 below that, and 0 with no links.
	LinkingScore float64 `json:"linking_score"`
}

// FreshnessData summarizes date mentions found in the text.
type FreshnessData struct {
	// LastUpdated is the first discovered date normalized to RFC 3339
	// date form, or empty when no date parsed.
	LastUpdated string `json:"last_updated,omitempty"`

	// UpdateFrequency is the number of date mentions found.
	UpdateFrequency int `json:"update_frequency"`

	// FreshnessScore is min(10, UpdateFrequency*2).
	FreshnessScore float64 `json:"freshness_score"`
}

// DesignMetrics holds the design heuristic sub-scores, each in [0,10].
type DesignMetrics struct {
	WhitespaceScore      float64 `json:"whitespace_score"`
	TypographyScore      float64 `json:"typography_score"`
	ColorContrastScore   float64 `json:"color_contrast_score"`
	VisualHierarchyScore float64 `json:"visual_hierarchy_score"`

	// LayoutScore mirrors the layout_quality criterion score for
	// presentation layers that render the design card standalone.
	LayoutScore float64 `json:"layout_score"`
}

// ContentStats holds raw element counts used by scorers and rules.
type ContentStats struct {
	WordCount         int `json:"word_count"`
	HeaderCount       int `json:"header_count"`
	ImageCount        int `json:"image_count"`
	LinkCount         int `json:"link_count"`
	SchemaMarkupCount int `json:"schema_markup_count"`

	// InformativenessScore mirrors the informativeness criterion score.
	InformativenessScore float64 `json:"informativeness_score"`
}

// ReadabilityMetrics carries the six readability formula outputs.
// The formulas themselves are opaque collaborators: any provider that
// fills these fields works, and a zero value means the formula was
// unavailable and is excluded from normalization.
type ReadabilityMetrics struct {
	FleschReadingEase    float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade   float64 `json:"flesch_kincaid_grade"`
	GunningFog           float64 `json:"gunning_fog"`
	SMOGIndex            float64 `json:"smog_index"`
	AutomatedReadability float64 `json:"automated_readability"`
	ColemanLiau          float64 `json:"coleman_liau"`

	// Score mirrors the readability criterion score.
	Score float64 `json:"score"`
}

// EngagementDetails holds the raw counts behind the engagement score.
type EngagementDetails struct {
	PositiveWords int `json:"positive_words"`
	NegativeWords int `json:"negative_words"`
	Questions     int `json:"questions"`
	Exclamations  int `json:"exclamations"`
	CTAWords      int `json:"cta_words"`

	// Score mirrors the engagement criterion score.
	Score float64 `json:"score"`
}

// UniquenessDetails holds the raw counts behind the uniqueness score.
type UniquenessDetails struct {
	// UniqueRatio is distinct words over total words (length >= 4).
	UniqueRatio float64 `json:"unique_ratio"`

	ResearchWords    int `json:"research_words"`
	FirstPersonCount int `json:"first_person_count"`
	PrimaryResearch  int `json:"primary_research"`

	// Score mirrors the uniqueness criterion score.
	Score float64 `json:"score"`
}

// AdDetails holds the raw advertising signals.
type AdDetails struct {
	// AdCount is the number of ad indicator substring hits in the markup.
	AdCount int `json:"ad_count"`

	// PlacementScore is the ad placement intrusiveness penalty, capped at 30.
	PlacementScore int `json:"placement_score"`

	// AutoplayScore is the autoplay media penalty, capped at 30.
	AutoplayScore int `json:"autoplay_score"`

	// Score mirrors the ad_experience criterion score.
	Score float64 `json:"score"`
}

// PerformanceData holds load timing collected during the fetch plus
// optional Lighthouse results.
type PerformanceData struct {
	// LoadTime is the page fetch duration in seconds.
	LoadTime float64 `json:"load_time,omitempty"`

	// Source names where the timing came from (basic_timing or
	// lighthouse_cli).
	Source string `json:"source,omitempty"`

	// Lighthouse carries CLI probe results when the probe ran.
	Lighthouse *LighthouseData `json:"lighthouse,omitempty"`
}

// LighthouseData holds the performance category score and core web
// vitals parsed from the Lighthouse CLI JSON output.
type LighthouseData struct {
	PerformanceScore       float64 `json:"performance_score"`
	FirstContentfulPaint   float64 `json:"first_contentful_paint"`
	LargestContentfulPaint float64 `json:"largest_contentful_paint"`
	TotalBlockingTime      float64 `json:"total_blocking_time"`
	CumulativeLayoutShift  float64 `json:"cumulative_layout_shift"`
	SpeedIndex             float64 `json:"speed_index"`
	TimeToInteractive      float64 `json:"time_to_interactive"`
}

// MobileData holds mobile friendliness flags read from the snapshot.
type MobileData struct {
	MobileFriendly   bool `json:"mobile_friendly"`
	HasViewport      bool `json:"has_viewport"`
	HandheldFriendly bool `json:"handheld_friendly"`
	TouchOptimized   bool `json:"touch_optimized"`

	// TinyFonts is the number of inline styles declaring a font size
	// under 14px, a mobile readability concern.
	TinyFonts int `json:"tiny_fonts"`

	// Issues lists human-readable mobile concerns.
	Issues []string `json:"issues,omitempty"`
}

// SEOData holds the search index probe result.
type SEOData struct {
	// Indexed is true when the domain appears in the search index.
	Indexed bool `json:"indexed"`

	// ApproxResults is the approximate indexed page count, when reported.
	ApproxResults int `json:"approx_results,omitempty"`
}

// SecurityData holds transport security flags.
type SecurityData struct {
	HTTPS  bool `json:"https"`
	Secure bool `json:"secure"`
}

// SocialPlatforms are the platforms checked for profile links, in
// detection order.
var SocialPlatforms = []string{
	"facebook", "twitter", "instagram", "linkedin", "youtube", "pinterest", "tiktok",
}

// SocialData holds social media integration signals.
type SocialData struct {
	// Platforms maps each entry of SocialPlatforms to whether a profile
	// link for it appears in the markup. Every key is always present.
	Platforms map[string]bool `json:"platforms"`

	// SharingButtons is the number of share/social classed elements,
	// capped at 20.
	SharingButtons int `json:"sharing_buttons"`

	// SocialProof counts share, follower, and testimonial elements.
	SocialProof SocialProof `json:"social_proof"`

	// SocialScore mirrors the social_integration criterion score.
	SocialScore float64 `json:"social_score"`
}

// SocialProof counts on-page social proof elements.
type SocialProof struct {
	ShareCounts    int `json:"share_counts"`
	FollowerCounts int `json:"follower_counts"`
	Testimonials   int `json:"testimonials"`
}
