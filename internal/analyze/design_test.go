package analyze

import (
	"math"
	"testing"

	"github.com/webboost/webboost/internal/model"
)

func TestDesignQuality(t *testing.T) {
	t.Parallel()

	snap := &model.PageSnapshot{
		HasDOM: true,
		HTML: `<style>
			body { font-family: Georgia, serif; color: #112233; }
			h1 { font-family: Helvetica; color: #445566; }
			p { color: #778899; }
		</style>`,
		HeadingCounts: map[int]int{1: 1, 2: 3},
		Regions: []model.Region{
			{Style: "margin: 0"},
			{Style: "padding:0; color: red"},
			{Style: "margin: 1em"},
		},
	}

	metrics := DesignQuality(snap)

	if metrics.WhitespaceScore != 8 {
		t.Errorf("WhitespaceScore = %v, want 8 (10 - 2 crowded styles)", metrics.WhitespaceScore)
	}
	if metrics.TypographyScore != 4 {
		t.Errorf("TypographyScore = %v, want 4 (2 font families)", metrics.TypographyScore)
	}
	if math.Abs(metrics.ColorContrastScore-9.7) > 1e-9 {
		t.Errorf("ColorContrastScore = %v, want 9.7 (10 - 3*0.1)", metrics.ColorContrastScore)
	}
	if metrics.VisualHierarchyScore != 4 {
		t.Errorf("VisualHierarchyScore = %v, want 4 (2 heading levels)", metrics.VisualHierarchyScore)
	}
}

func TestDesignQuality_NoDOM(t *testing.T) {
	t.Parallel()

	if got := DesignQuality(&model.PageSnapshot{}); got != (model.DesignMetrics{}) {
		t.Errorf("DesignQuality(no DOM) = %+v, want zero value", got)
	}
}

func TestSkimmingOptimization(t *testing.T) {
	t.Parallel()

	snap := &model.PageSnapshot{
		HasDOM:          true,
		HeadingCounts:   map[int]int{1: 1, 2: 2, 3: 1},
		ListCount:       2,
		EmphasisCount:   3,
		BlockquoteCount: 1,
		Images: []model.Image{
			{Src: "/a.png", Alt: "diagram", HasAlt: true},
			{Src: "/b.png"},
		},
	}

	// headings 4*2=8, lists 2*3=6, emphasis 3*0.5=1.5, quotes 1*2=2, alt image 1.
	if got := SkimmingOptimization(snap); got != 18.5 {
		t.Errorf("SkimmingOptimization() = %v, want 18.5", got)
	}
}

func TestSkimmingOptimization_Cap(t *testing.T) {
	t.Parallel()

	snap := &model.PageSnapshot{
		HasDOM:          true,
		HeadingCounts:   map[int]int{2: 50},
		ListCount:       50,
		EmphasisCount:   100,
		BlockquoteCount: 50,
	}

	if got := SkimmingOptimization(snap); got != 40 {
		t.Errorf("SkimmingOptimization() = %v, want cap 40", got)
	}
}

func TestSkimmingOptimization_NoDOM(t *testing.T) {
	t.Parallel()

	if got := SkimmingOptimization(&model.PageSnapshot{}); got != 0 {
		t.Errorf("SkimmingOptimization(no DOM) = %v, want 0", got)
	}
}
