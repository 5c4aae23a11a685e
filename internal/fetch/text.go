package fetch

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// ExtractText returns the visible text of the page, whitespace-normalized.
// It prefers go-readability's article extraction, which strips boilerplate
// like navigation and footers, and falls back to a plain text-node walk
// when readability cannot identify an article.
func ExtractText(pageURL, markup string, doc *html.Node) string {
	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(markup), base)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return normalizeWhitespace(article.TextContent)
	}

	if doc == nil {
		return ""
	}
	return normalizeWhitespace(visibleText(doc))
}

// visibleText walks the DOM collecting text nodes, skipping script and
// style content.
func visibleText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case htmlElementScript, htmlElementStyle, "noscript", "template":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// normalizeWhitespace collapses all whitespace runs to single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
