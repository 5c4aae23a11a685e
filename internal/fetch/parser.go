package fetch

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/webboost/webboost/internal/model"
)

// HTML element name constants for snapshot counting.
const (
	htmlElementScript = "script"
	htmlElementStyle  = "style"
	htmlElementBody   = "body"
)

// ParseSnapshot parses page markup into a flattened snapshot.
// It walks the DOM once, recording the element facts analyzers need.
// Malformed markup is tolerated; golang.org/x/net/html repairs what it
// can. If parsing fails outright the snapshot is returned with HasDOM
// false and analyzers fall back to their documented defaults.
func ParseSnapshot(pageURL, markup string) *model.PageSnapshot {
	snapshot := &model.PageSnapshot{
		URL:           pageURL,
		HTML:          markup,
		MetaTags:      make(map[string]string),
		HeadingCounts: make(map[int]int),
	}
	if u, err := url.Parse(pageURL); err == nil {
		snapshot.Domain = u.Host
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return snapshot
	}
	snapshot.HasDOM = true

	walkSnapshot(doc, snapshot)
	snapshot.Text = ExtractText(pageURL, markup, doc)

	return snapshot
}

// walkSnapshot walks the DOM tree and fills in the snapshot's element facts.
func walkSnapshot(n *html.Node, snapshot *model.PageSnapshot) {
	if n.Type == html.ElementNode {
		processElement(n, snapshot)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkSnapshot(c, snapshot)
	}
}

// processElement records one element's facts into the snapshot.
func processElement(n *html.Node, snapshot *model.PageSnapshot) {
	switch n.Data {
	case "title":
		if snapshot.Title == "" {
			snapshot.Title = strings.TrimSpace(nodeText(n))
		}

	case "meta":
		name := getAttr(n, "name")
		if name == "" {
			name = getAttr(n, "property") // OpenGraph uses property
		}
		content := getAttr(n, "content")
		if name != "" {
			snapshot.MetaTags[strings.ToLower(name)] = content
		}

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		snapshot.HeadingCounts[level]++

	case "a":
		if href, ok := lookupAttr(n, "href"); ok {
			snapshot.Anchors = append(snapshot.Anchors, model.Anchor{
				Href: strings.TrimSpace(href),
				Text: strings.TrimSpace(nodeText(n)),
				Rel:  getAttr(n, "rel"),
			})
		}

	case "img":
		alt, hasAlt := lookupAttr(n, "alt")
		snapshot.Images = append(snapshot.Images, model.Image{
			Src:    getAttr(n, "src"),
			Alt:    alt,
			HasAlt: hasAlt,
		})

	case "ul", "ol":
		snapshot.ListCount++

	case "b", "strong", "i", "em":
		snapshot.EmphasisCount++

	case "blockquote":
		snapshot.BlockquoteCount++

	case "nav":
		snapshot.NavCount++

	case "input":
		if strings.EqualFold(getAttr(n, "type"), "search") {
			snapshot.SearchInputCount++
		}

	case "video":
		if _, ok := lookupAttr(n, "autoplay"); ok {
			snapshot.AutoplayVideoCount++
		}

	case "audio":
		if _, ok := lookupAttr(n, "autoplay"); ok {
			snapshot.AutoplayAudioCount++
		}

	case htmlElementScript:
		if strings.EqualFold(getAttr(n, "type"), "application/ld+json") {
			snapshot.SchemaScriptCount++
		}

	case htmlElementBody:
		snapshot.BodyPrefix = renderCapped(n, model.MaxBodyPrefixSize)
	}

	if _, ok := lookupAttr(n, "ontouchstart"); ok {
		snapshot.TouchElementCount++
	}

	class := getAttr(n, "class")
	id := getAttr(n, "id")
	style := getAttr(n, "style")
	if class != "" || id != "" || style != "" {
		snapshot.Regions = append(snapshot.Regions, model.Region{
			Tag:    n.Data,
			Class:  class,
			ID:     id,
			Style:  style,
			Markup: renderCapped(n, model.MaxRegionMarkupSize),
		})
	}
}

// getAttr returns the value of the named attribute, or "" if absent.
func getAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

// lookupAttr returns the value of the named attribute and whether it
// was present. Boolean attributes like autoplay report present with an
// empty value.
func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val, true
		}
	}
	return "", false
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// renderCapped renders a node's markup, truncated to at most max bytes.
func renderCapped(n *html.Node, max int) string {
	w := &cappedWriter{max: max}
	// Render only fails on writer errors, which cappedWriter never returns.
	_ = html.Render(w, n)
	return w.String()
}

// cappedWriter accepts all writes but stores at most max bytes.
// Excess bytes are discarded so html.Render completes without error.
type cappedWriter struct {
	sb  strings.Builder
	max int
}

func (w *cappedWriter) Write(p []byte) (int, error) {
	if remaining := w.max - w.sb.Len(); remaining > 0 {
		if len(p) > remaining {
			w.sb.Write(p[:remaining])
		} else {
			w.sb.Write(p)
		}
	}
	return len(p), nil
}

func (w *cappedWriter) String() string {
	return w.sb.String()
}
