package model

import "regexp"

// MaxBodyPrefixSize is how much of the body markup is kept for ad
// placement scanning. Intrusive ads near the top of the page are what
// matter, so only the opening markup is retained.
const MaxBodyPrefixSize = 1000

// MaxRegionMarkupSize limits the markup stored per classed region.
// Region scans only look for short indicator substrings, so a bounded
// excerpt is enough and keeps snapshots small on element-heavy pages.
const MaxRegionMarkupSize = 4096

// PageSnapshot is the immutable input bundle for one audit: the fetched
// markup, the extracted visible text, and a flattened summary of the DOM.
//
// Design decision: Instead of handing extractors a live DOM tree, the
// fetch parser walks the tree once and records the element facts the
// extractors need (counts, anchors, classed regions). Extractors stay
// pure functions over plain data, and a failed fetch degrades to the
// zero-value snapshot with HasDOM false rather than a nil tree.
type PageSnapshot struct {
	// URL is the audited page URL as given by the caller.
	URL string

	// Domain is the host portion of URL, used for internal link
	// classification.
	Domain string

	// HTML is the raw page markup. Empty when the fetch failed.
	HTML string

	// Text is the visible text of the page, possibly empty.
	Text string

	// HasDOM is true when the markup was parsed into a tree.
	// Extractors treat a snapshot without a DOM as absent input and
	// return their documented defaults.
	HasDOM bool

	// LoadTime is the wall-clock fetch duration in seconds.
	LoadTime float64

	// Title is the content of the <title> tag.
	Title string

	// MetaTags maps lowercased meta names to their content attribute.
	MetaTags map[string]string

	// HeadingCounts maps heading level (1-6) to the number of headings
	// at that level.
	HeadingCounts map[int]int

	// Anchors are all <a> elements that carry an href.
	Anchors []Anchor

	// Images are all <img> elements.
	Images []Image

	// ListCount is the number of <ul> and <ol> elements.
	ListCount int

	// EmphasisCount is the number of <b>, <strong>, <i>, and <em> elements.
	EmphasisCount int

	// BlockquoteCount is the number of <blockquote> elements.
	BlockquoteCount int

	// NavCount is the number of <nav> elements.
	NavCount int

	// SearchInputCount is the number of <input type="search"> elements.
	SearchInputCount int

	// TouchElementCount is the number of elements with an ontouchstart
	// attribute.
	TouchElementCount int

	// AutoplayVideoCount is the number of <video autoplay> elements.
	AutoplayVideoCount int

	// AutoplayAudioCount is the number of <audio autoplay> elements.
	AutoplayAudioCount int

	// SchemaScriptCount is the number of JSON-LD structured data scripts
	// (<script type="application/ld+json">).
	SchemaScriptCount int

	// Regions are the elements that carry a class, id, or style
	// attribute. Extractors scan these for indicator classes
	// (breadcrumbs, categories, ads, social buttons, ...).
	Regions []Region

	// BodyPrefix is the first MaxBodyPrefixSize bytes of the <body>
	// markup, used for ad placement scanning.
	BodyPrefix string
}

// Anchor is an <a> element with an href attribute.
type Anchor struct {
	// Href is the raw href attribute value, not resolved.
	Href string

	// Text is the anchor's inner text.
	Text string

	// Rel is the rel attribute, if any.
	Rel string
}

// Image is an <img> element.
type Image struct {
	// Src is the raw src attribute value.
	Src string

	// Alt is the alt attribute value.
	Alt string

	// HasAlt is true when the alt attribute was present, even if empty.
	HasAlt bool
}

// Region is an element that carries class, id, or style attributes.
type Region struct {
	// Tag is the element name (div, section, span, ...).
	Tag string

	// Class is the raw class attribute value.
	Class string

	// ID is the id attribute value.
	ID string

	// Style is the inline style attribute value.
	Style string

	// Markup is an excerpt of the element's rendered markup, capped at
	// MaxRegionMarkupSize bytes. Used for indicator substring scans.
	Markup string
}

// H1Count returns the number of <h1> elements.
func (p *PageSnapshot) H1Count() int {
	return p.HeadingCounts[1]
}

// HeadingCount returns the total number of headings at the given levels.
func (p *PageSnapshot) HeadingCount(levels ...int) int {
	total := 0
	for _, level := range levels {
		total += p.HeadingCounts[level]
	}
	return total
}

// DistinctHeadingLevels returns how many distinct heading levels appear
// on the page.
func (p *PageSnapshot) DistinctHeadingLevels() int {
	distinct := 0
	for _, count := range p.HeadingCounts {
		if count > 0 {
			distinct++
		}
	}
	return distinct
}

// CountClassMatch returns the number of regions whose class attribute
// matches the pattern.
func (p *PageSnapshot) CountClassMatch(pattern *regexp.Regexp) int {
	count := 0
	for _, r := range p.Regions {
		if r.Class != "" && pattern.MatchString(r.Class) {
			count++
		}
	}
	return count
}

// CountClassOrIDMatch returns the number of regions whose class or id
// attribute matches the pattern. A region matching on both attributes
// is counted twice, mirroring separate class and id lookups.
func (p *PageSnapshot) CountClassOrIDMatch(pattern *regexp.Regexp) int {
	count := 0
	for _, r := range p.Regions {
		if r.Class != "" && pattern.MatchString(r.Class) {
			count++
		}
		if r.ID != "" && pattern.MatchString(r.ID) {
			count++
		}
	}
	return count
}

// RegionsByClass returns the regions whose class attribute matches the
// pattern.
func (p *PageSnapshot) RegionsByClass(pattern *regexp.Regexp) []Region {
	var matched []Region
	for _, r := range p.Regions {
		if r.Class != "" && pattern.MatchString(r.Class) {
			matched = append(matched, r)
		}
	}
	return matched
}

// CountStyleMatch returns the number of regions whose inline style
// matches the pattern.
func (p *PageSnapshot) CountStyleMatch(pattern *regexp.Regexp) int {
	count := 0
	for _, r := range p.Regions {
		if r.Style != "" && pattern.MatchString(r.Style) {
			count++
		}
	}
	return count
}

// HasAnchorHrefMatch reports whether any anchor's href matches the pattern.
func (p *PageSnapshot) HasAnchorHrefMatch(pattern *regexp.Regexp) bool {
	for _, a := range p.Anchors {
		if pattern.MatchString(a.Href) {
			return true
		}
	}
	return false
}

// ImagesWithAlt returns the number of images that carry a non-empty alt
// attribute.
func (p *PageSnapshot) ImagesWithAlt() int {
	count := 0
	for _, img := range p.Images {
		if img.HasAlt && img.Alt != "" {
			count++
		}
	}
	return count
}
