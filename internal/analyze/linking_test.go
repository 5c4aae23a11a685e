package analyze

import (
	"testing"

	"github.com/webboost/webboost/internal/model"
)

func linkingSnapshot(internal, external int) *model.PageSnapshot {
	snap := &model.PageSnapshot{HasDOM: true, Domain: "example.com"}
	for i := 0; i < internal; i++ {
		snap.Anchors = append(snap.Anchors, model.Anchor{Href: "/inside"})
	}
	for i := 0; i < external; i++ {
		snap.Anchors = append(snap.Anchors, model.Anchor{Href: "https://other.org/page"})
	}
	return snap
}

func TestInternalLinking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		internal  int
		external  int
		wantScore float64
	}{
		{name: "sixty percent internal", internal: 6, external: 4, wantScore: 15},
		{name: "forty percent internal", internal: 4, external: 6, wantScore: 10},
		{name: "mostly external", internal: 1, external: 9, wantScore: 5},
		{name: "no links", internal: 0, external: 0, wantScore: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := InternalLinking(linkingSnapshot(tt.internal, tt.external))
			if data.InternalLinks != tt.internal || data.ExternalLinks != tt.external {
				t.Errorf("links = %d/%d, want %d/%d",
					data.InternalLinks, data.ExternalLinks, tt.internal, tt.external)
			}
			if data.LinkingScore != tt.wantScore {
				t.Errorf("LinkingScore = %v, want %v", data.LinkingScore, tt.wantScore)
			}
		})
	}
}

func TestInternalLinking_DomainMatch(t *testing.T) {
	t.Parallel()

	snap := &model.PageSnapshot{
		HasDOM: true,
		Domain: "example.com",
		Anchors: []model.Anchor{
			{Href: "https://example.com/about"},
			{Href: "https://other.org/"},
		},
	}

	data := InternalLinking(snap)
	if data.InternalLinks != 1 || data.ExternalLinks != 1 {
		t.Errorf("links = %d/%d, want 1/1", data.InternalLinks, data.ExternalLinks)
	}
}

func TestInternalLinking_NoDOM(t *testing.T) {
	t.Parallel()

	if got := InternalLinking(&model.PageSnapshot{}); got != (model.LinkingData{}) {
		t.Errorf("InternalLinking(no DOM) = %+v, want zero value", got)
	}
}
