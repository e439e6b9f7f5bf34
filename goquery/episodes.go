package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/castmatch"
)

// DefaultEpisodeBaseURL is the origin that relative plus-link hrefs on
// Overcast show pages resolve against.
const DefaultEpisodeBaseURL = "https://overcast.fm"

// Ensure EpisodeParser implements castmatch.EpisodeLinkParser at compile time.
var _ castmatch.EpisodeLinkParser = (*EpisodeParser)(nil)

// EpisodeParser extracts episode links from Overcast show pages.
type EpisodeParser struct {
	baseURL string
}

// EpisodeParserOption configures an EpisodeParser.
type EpisodeParserOption func(*EpisodeParser)

// WithEpisodeBaseURL overrides the origin relative hrefs resolve against.
// Useful for pointing tests at a local server.
func WithEpisodeBaseURL(baseURL string) EpisodeParserOption {
	return func(p *EpisodeParser) {
		p.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewEpisodeParser creates a new EpisodeParser.
func NewEpisodeParser(opts ...EpisodeParserOption) *EpisodeParser {
	p := &EpisodeParser{baseURL: DefaultEpisodeBaseURL}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// EpisodeLinks extracts every anchor whose href is a relative plus-link
// path. Fragments are stripped, URLs resolved to absolute, and inner text
// becomes the title after entity decoding. Entries with empty titles are
// discarded; duplicates by URL keep the first occurrence.
func (p *EpisodeParser) EpisodeLinks(html string) []castmatch.EpisodeLink {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var out []castmatch.EpisodeLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !castmatch.IsEpisodePath(href) {
			return
		}
		if i := strings.IndexByte(href, '#'); i >= 0 {
			href = href[:i]
		}

		url := p.baseURL + href
		title := strings.TrimSpace(castmatch.DecodeHTMLEntities(sel.Text()))
		if title == "" || seen[url] {
			return
		}
		seen[url] = true
		out = append(out, castmatch.EpisodeLink{URL: url, Title: title})
	})
	return out
}
