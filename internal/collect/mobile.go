package collect

import (
	"context"
	"regexp"
	"strconv"

	"github.com/webboost/webboost/internal/model"
)

// tinyFontThreshold is the smallest inline font size in px considered
// readable on mobile.
const tinyFontThreshold = 14

// fontSizePattern matches inline font-size declarations in px.
var fontSizePattern = regexp.MustCompile(`font-size:\s*(\d+)px`)

// MobileCollector reads mobile friendliness flags off the snapshot.
type MobileCollector struct{}

// NewMobileCollector creates a mobile friendliness collector.
func NewMobileCollector() *MobileCollector {
	return &MobileCollector{}
}

// Name implements Collector.
func (m *MobileCollector) Name() string {
	return "mobile"
}

// Collect implements Collector.
func (m *MobileCollector) Collect(_ context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error {
	mobile := &bundle.Mobile
	mobile.MobileFriendly = true

	if !snapshot.HasDOM {
		return nil
	}

	_, mobile.HasViewport = snapshot.MetaTags["viewport"]
	_, mobile.HandheldFriendly = snapshot.MetaTags["handheldfriendly"]
	mobile.TouchOptimized = snapshot.TouchElementCount > 0

	mobile.TinyFonts = countTinyFonts(snapshot)
	if mobile.TinyFonts > 5 {
		mobile.Issues = append(mobile.Issues, "Potential small font sizes")
	}

	return nil
}

// countTinyFonts counts inline styles declaring a font size under the
// mobile readability threshold.
func countTinyFonts(snapshot *model.PageSnapshot) int {
	tiny := 0
	for _, region := range snapshot.Regions {
		if region.Style == "" {
			continue
		}
		match := fontSizePattern.FindStringSubmatch(region.Style)
		if match == nil {
			continue
		}
		size, err := strconv.Atoi(match[1])
		if err == nil && size < tinyFontThreshold {
			tiny++
		}
	}
	return tiny
}
