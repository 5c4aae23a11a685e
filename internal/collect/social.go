package collect

import (
	"context"
	"regexp"

	"github.com/webboost/webboost/internal/model"
)

// maxSharingButtons caps the sharing button count so element-heavy
// pages do not dominate the social score.
const maxSharingButtons = 20

// sharingButtonPatterns are class/id substrings that indicate social
// sharing elements.
var sharingButtonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)share`),
	regexp.MustCompile(`(?i)social`),
	regexp.MustCompile(`(?i)like`),
	regexp.MustCompile(`(?i)follow`),
	regexp.MustCompile(`(?i)subscribe`),
	regexp.MustCompile(`(?i)facebook`),
	regexp.MustCompile(`(?i)twitter`),
	regexp.MustCompile(`(?i)instagram`),
	regexp.MustCompile(`(?i)linkedin`),
	regexp.MustCompile(`(?i)youtube`),
	regexp.MustCompile(`(?i)pinterest`),
	regexp.MustCompile(`(?i)tiktok`),
}

// Social proof indicator classes.
var (
	shareCountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)shares`),
		regexp.MustCompile(`(?i)shares-count`),
		regexp.MustCompile(`(?i)share-count`),
		regexp.MustCompile(`(?i)social-count`),
	}
	followerCountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)followers`),
		regexp.MustCompile(`(?i)follower-count`),
		regexp.MustCompile(`(?i)subscribers`),
	}
	testimonialPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)testimonial`),
		regexp.MustCompile(`(?i)review`),
		regexp.MustCompile(`(?i)rating`),
	}
)

// platformLinkPatterns detect profile links for each social platform
// anywhere in the markup.
var platformLinkPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(model.SocialPlatforms))
	for _, platform := range model.SocialPlatforms {
		patterns[platform] = regexp.MustCompile(`(?i)` + platform + `\.com/[\w.\-]+`)
	}
	return patterns
}()

// SocialCollector detects social media integration signals in the markup.
type SocialCollector struct{}

// NewSocialCollector creates a social integration collector.
func NewSocialCollector() *SocialCollector {
	return &SocialCollector{}
}

// Name implements Collector.
func (s *SocialCollector) Name() string {
	return "social"
}

// Collect implements Collector.
func (s *SocialCollector) Collect(_ context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error {
	social := &bundle.Social

	social.Platforms = make(map[string]bool, len(model.SocialPlatforms))
	for _, platform := range model.SocialPlatforms {
		social.Platforms[platform] = platformLinkPatterns[platform].MatchString(snapshot.HTML)
	}

	if !snapshot.HasDOM {
		return nil
	}

	buttons := 0
	for _, pattern := range sharingButtonPatterns {
		buttons += snapshot.CountClassOrIDMatch(pattern)
	}
	social.SharingButtons = min(buttons, maxSharingButtons)

	social.SocialProof = model.SocialProof{
		ShareCounts:    countClassMatches(snapshot, shareCountPatterns),
		FollowerCounts: countClassMatches(snapshot, followerCountPatterns),
		Testimonials:   countClassMatches(snapshot, testimonialPatterns),
	}
	return nil
}

// countClassMatches sums the class matches over a set of patterns.
func countClassMatches(snapshot *model.PageSnapshot, patterns []*regexp.Regexp) int {
	total := 0
	for _, pattern := range patterns {
		total += snapshot.CountClassMatch(pattern)
	}
	return total
}
