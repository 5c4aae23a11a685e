package fetch

import (
	"strings"
	"testing"

	"github.com/webboost/webboost/internal/model"
)

// fixturePage exercises every element kind the snapshot records.
const fixturePage = `<!DOCTYPE html>
<html>
<head>
<title> Sample Page </title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta property="og:title" content="Sample">
<meta name="description" content="A sample page about coffee brewing">
<script type="application/ld+json">{"@type":"Article"}</script>
</head>
<body>
<nav class="main-nav"><a href="/about">About</a></nav>
<h1>Brewing Better Coffee</h1>
<h2>Choosing Beans</h2>
<h2>Grinding</h2>
<h3>Burr Grinders</h3>
<p>Brewing better coffee at home starts with fresh beans and a
consistent grind. Water temperature matters more than most people
expect, and a simple kitchen scale removes most of the guesswork from
the ratio. With <strong>practice</strong> and a little <em>patience</em>
anyone can pull a cup that beats the corner shop.</p>
<ul><li>fresh beans</li><li>burr grinder</li></ul>
<ol><li>heat water</li></ol>
<blockquote>Good coffee is a habit, not an accident.</blockquote>
<a href="https://example.org/roasters" rel="nofollow">Roaster list</a>
<a href="#">Back to top</a>
<img src="/grinder.png" alt="burr grinder diagram">
<img src="/scale.png" alt="">
<img src="/kettle.png">
<input type="search" name="q">
<div class="sidebar ad-banner" id="ads" style="display:block">ad</div>
<video autoplay src="/v.mp4"></video>
<audio autoplay></audio>
<span ontouchstart="tap()">tap</span>
</body>
</html>`

func TestParseSnapshot(t *testing.T) {
	t.Parallel()

	snap := ParseSnapshot("https://example.com/coffee", fixturePage)

	if !snap.HasDOM {
		t.Fatal("HasDOM = false, want true")
	}
	if snap.Domain != "example.com" {
		t.Errorf("Domain = %q, want %q", snap.Domain, "example.com")
	}
	if snap.Title != "Sample Page" {
		t.Errorf("Title = %q, want %q", snap.Title, "Sample Page")
	}

	wantMeta := map[string]string{
		"viewport":    "width=device-width, initial-scale=1",
		"og:title":    "Sample",
		"description": "A sample page about coffee brewing",
	}
	for name, want := range wantMeta {
		if got := snap.MetaTags[name]; got != want {
			t.Errorf("MetaTags[%q] = %q, want %q", name, got, want)
		}
	}

	if got := snap.H1Count(); got != 1 {
		t.Errorf("H1Count() = %d, want 1", got)
	}
	if got := snap.HeadingCounts[2]; got != 2 {
		t.Errorf("HeadingCounts[2] = %d, want 2", got)
	}
	if got := snap.HeadingCounts[3]; got != 1 {
		t.Errorf("HeadingCounts[3] = %d, want 1", got)
	}

	if got := len(snap.Anchors); got != 3 {
		t.Fatalf("len(Anchors) = %d, want 3", got)
	}
	if snap.Anchors[1].Rel != "nofollow" {
		t.Errorf("Anchors[1].Rel = %q, want %q", snap.Anchors[1].Rel, "nofollow")
	}
	if snap.Anchors[1].Text != "Roaster list" {
		t.Errorf("Anchors[1].Text = %q, want %q", snap.Anchors[1].Text, "Roaster list")
	}

	if got := len(snap.Images); got != 3 {
		t.Errorf("len(Images) = %d, want 3", got)
	}
	if got := snap.ImagesWithAlt(); got != 1 {
		t.Errorf("ImagesWithAlt() = %d, want 1", got)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"ListCount", snap.ListCount, 2},
		{"EmphasisCount", snap.EmphasisCount, 2},
		{"BlockquoteCount", snap.BlockquoteCount, 1},
		{"NavCount", snap.NavCount, 1},
		{"SearchInputCount", snap.SearchInputCount, 1},
		{"TouchElementCount", snap.TouchElementCount, 1},
		{"AutoplayVideoCount", snap.AutoplayVideoCount, 1},
		{"AutoplayAudioCount", snap.AutoplayAudioCount, 1},
		{"SchemaScriptCount", snap.SchemaScriptCount, 1},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if got := len(snap.Regions); got != 2 {
		t.Fatalf("len(Regions) = %d, want 2", got)
	}
	if snap.Regions[0].Class != "main-nav" {
		t.Errorf("Regions[0].Class = %q, want %q", snap.Regions[0].Class, "main-nav")
	}
	ad := snap.Regions[1]
	if ad.Class != "sidebar ad-banner" || ad.ID != "ads" || ad.Style != "display:block" {
		t.Errorf("ad region = %+v, want class/id/style populated", ad)
	}
	if !strings.Contains(ad.Markup, "ad") {
		t.Errorf("ad region markup %q does not contain element content", ad.Markup)
	}

	if snap.BodyPrefix == "" {
		t.Error("BodyPrefix is empty")
	}
	if len(snap.BodyPrefix) > model.MaxBodyPrefixSize {
		t.Errorf("len(BodyPrefix) = %d, exceeds cap %d", len(snap.BodyPrefix), model.MaxBodyPrefixSize)
	}
	if !strings.Contains(snap.BodyPrefix, "<body>") {
		t.Errorf("BodyPrefix %q does not start with body markup", snap.BodyPrefix[:40])
	}

	if !strings.Contains(snap.Text, "consistent grind") {
		t.Errorf("Text does not contain main paragraph content: %q", snap.Text)
	}
}

func TestParseSnapshot_DegenerateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
	}{
		{name: "empty markup", markup: ""},
		{name: "plain text", markup: "not html at all"},
		{name: "unclosed tags", markup: "<div><p>broken<span>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := ParseSnapshot("https://example.com/", tt.markup)
			if snap.URL != "https://example.com/" {
				t.Errorf("URL = %q", snap.URL)
			}
			if snap.MetaTags == nil || snap.HeadingCounts == nil {
				t.Error("maps not initialized")
			}
			if len(snap.Anchors) != 0 || len(snap.Regions) != 0 {
				t.Errorf("unexpected elements extracted from %q", tt.markup)
			}
		})
	}
}

func TestParseSnapshot_RegionMarkupCapped(t *testing.T) {
	t.Parallel()

	markup := `<html><body><div class="huge">` + strings.Repeat("padding text ", 2000) + `</div></body></html>`
	snap := ParseSnapshot("https://example.com/", markup)

	if len(snap.Regions) != 1 {
		t.Fatalf("len(Regions) = %d, want 1", len(snap.Regions))
	}
	if got := len(snap.Regions[0].Markup); got > model.MaxRegionMarkupSize {
		t.Errorf("region markup length = %d, exceeds cap %d", got, model.MaxRegionMarkupSize)
	}
}
