// Package goquery provides the DOM-based front-end for page-context
// extraction and the episode-link parser for Overcast show pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/castmatch"
)

// Ensure Markup implements castmatch.Markup at compile time.
var _ castmatch.Markup = (*Markup)(nil)

// Markup exposes a parsed document through the castmatch.Markup capability
// interface. It must stay behaviorally identical to the streaming
// front-end in the html package.
type Markup struct {
	doc *goquery.Document
	raw string
}

// NewMarkup parses raw markup into a DOM-backed Markup.
func NewMarkup(raw string) (*Markup, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, castmatch.Errorf(castmatch.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Markup{doc: doc, raw: raw}, nil
}

// TagAttrs returns the attribute sets of every <name> element in document
// order.
func (m *Markup) TagAttrs(name string) []castmatch.Attrs {
	var out []castmatch.Attrs
	m.doc.Find(name).Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		attrs := make(castmatch.Attrs, len(node.Attr))
		for _, a := range node.Attr {
			key := strings.ToLower(a.Key)
			if _, dup := attrs[key]; !dup {
				attrs[key] = a.Val
			}
		}
		out = append(out, attrs)
	})
	return out
}

// FirstTagText returns the text content of the first <name> element, with
// script and style subtrees skipped.
func (m *Markup) FirstTagText(name string) string {
	first := m.doc.Find(name).First()
	if first.Length() == 0 {
		return ""
	}
	var sb strings.Builder
	collectText(first.Get(0), &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// BodyText returns the page's visible text with script and style content
// removed and whitespace collapsed.
func (m *Markup) BodyText() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range m.doc.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// JSONLD returns the bodies of application/ld+json script blocks.
func (m *Markup) JSONLD() []string {
	var out []string
	m.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		if body := strings.TrimSpace(sel.Text()); body != "" {
			out = append(out, body)
		}
	})
	return out
}

// Raw returns the original markup.
func (m *Markup) Raw() string {
	return m.raw
}
