// Package html provides the streaming front-end for page-context
// extraction: a single tokenizer pass over raw markup with no DOM build.
// It must stay behaviorally identical to the DOM front-end in the goquery
// package.
package html

import (
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/fwojciec/castmatch"
)

// Ensure Markup implements castmatch.Markup at compile time.
var _ castmatch.Markup = (*Markup)(nil)

// Markup exposes raw markup through the castmatch.Markup capability
// interface by scanning it with the x/net/html tokenizer.
type Markup struct {
	raw string
}

// NewMarkup wraps raw markup. Scanning is total: malformed markup yields
// whatever the tokenizer can recover, never an error.
func NewMarkup(raw string) *Markup {
	return &Markup{raw: raw}
}

// TagAttrs returns the attribute sets of every <name> element in document
// order.
func (m *Markup) TagAttrs(name string) []castmatch.Attrs {
	var out []castmatch.Attrs
	z := xhtml.NewTokenizer(strings.NewReader(m.raw))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return out
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != name {
				continue
			}
			attrs := make(castmatch.Attrs, len(tok.Attr))
			for _, a := range tok.Attr {
				key := strings.ToLower(a.Key)
				if _, dup := attrs[key]; !dup {
					attrs[key] = a.Val
				}
			}
			out = append(out, attrs)
		}
	}
}

// FirstTagText returns the text content of the first <name> element, with
// nested markup stripped and script/style subtrees skipped.
func (m *Markup) FirstTagText(name string) string {
	var sb strings.Builder
	depth := 0
	skip := 0
	z := xhtml.NewTokenizer(strings.NewReader(m.raw))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return strings.TrimSpace(sb.String())
		case xhtml.StartTagToken:
			tok := z.Token()
			if depth > 0 && (tok.Data == "script" || tok.Data == "style") {
				skip++
			}
			if tok.Data == name {
				depth++
			}
		case xhtml.EndTagToken:
			tok := z.Token()
			if depth > 0 && skip > 0 && (tok.Data == "script" || tok.Data == "style") {
				skip--
			}
			if tok.Data == name && depth > 0 {
				depth--
				if depth == 0 {
					return strings.TrimSpace(sb.String())
				}
			}
		case xhtml.TextToken:
			if depth > 0 && skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

// BodyText returns the page's visible text: every text token outside
// script and style elements, whitespace collapsed.
func (m *Markup) BodyText() string {
	var sb strings.Builder
	skip := 0
	z := xhtml.NewTokenizer(strings.NewReader(m.raw))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case xhtml.StartTagToken:
			tok := z.Token()
			if tok.Data == "script" || tok.Data == "style" {
				skip++
			}
		case xhtml.EndTagToken:
			tok := z.Token()
			if skip > 0 && (tok.Data == "script" || tok.Data == "style") {
				skip--
			}
		case xhtml.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

// JSONLD returns the bodies of application/ld+json script blocks.
func (m *Markup) JSONLD() []string {
	var out []string
	var sb strings.Builder
	collecting := false
	z := xhtml.NewTokenizer(strings.NewReader(m.raw))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return out
		case xhtml.StartTagToken:
			tok := z.Token()
			if tok.Data == "script" && isJSONLD(tok.Attr) {
				collecting = true
				sb.Reset()
			}
		case xhtml.EndTagToken:
			if collecting && z.Token().Data == "script" {
				collecting = false
				if body := strings.TrimSpace(sb.String()); body != "" {
					out = append(out, body)
				}
			}
		case xhtml.TextToken:
			if collecting {
				sb.Write(z.Text())
			}
		}
	}
}

// Raw returns the original markup.
func (m *Markup) Raw() string {
	return m.raw
}

func isJSONLD(attrs []xhtml.Attribute) bool {
	for _, a := range attrs {
		if strings.ToLower(a.Key) == "type" {
			return strings.EqualFold(strings.TrimSpace(a.Val), "application/ld+json")
		}
	}
	return false
}
