// Package extract builds a castmatch.PageContext from page markup. The
// extraction rules are heuristics tuned for heterogeneous, uncontrolled
// HTML (video sites, blogs, podcast-host pages) and are written once
// against the castmatch.Markup capability interface, so the DOM and
// streaming front-ends cannot drift apart.
package extract

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/castmatch"
)

const (
	// Only the first 8 plus links found in visible text are considered.
	maxTextLinks = 8

	// Only the first 12 escaped Apple Podcasts URLs in raw markup are
	// considered.
	maxEmbeddedAppleURLs = 12
)

var (
	appleIDPattern      = regexp.MustCompile(`(?i)\bid(\d{5,})\b`)
	ownerChannelPattern = regexp.MustCompile(`"ownerChannelName":"([^"]+)"`)
	shortDescPattern    = regexp.MustCompile(`(?is)"shortDescription":"(.*?)"(?:,|})`)
	tuneInPattern       = regexp.MustCompile(`(?i)tune\s+in\s+to\s+([^,\n.!?]{3,120})`)
	podcastNamePattern  = regexp.MustCompile(`(?i)(?:podcast|show)\s*[:\-]\s*([^\n]{3,120})`)
	escapedApplePattern = regexp.MustCompile(`(?i)https?:\\/\\/podcasts\.apple\.com[^"'<>\s]+`)
)

// PageContext extracts every hint the matching engine understands from the
// page at pageURL. Rules contribute independently; only the dedup and
// weight rules of the PageContext invariants apply across them.
func PageContext(pageURL string, m castmatch.Markup) *castmatch.PageContext {
	b := &builder{
		page: &castmatch.PageContext{PageURL: strings.TrimSpace(pageURL)},
	}

	b.currentURL()
	b.anchors(m)
	b.audioSources(m)
	b.metaTags(m)
	b.titles(m)
	b.structuredData(m)
	b.embeddedJSON(m.Raw())
	b.textLinks(m.BodyText())

	b.page.OvercastLinks = castmatch.RankLinks(b.links)
	return b.page
}

type builder struct {
	page  *castmatch.PageContext
	links []castmatch.LinkCandidate
}

func (b *builder) push(url string, source castmatch.LinkSource) {
	if url == "" {
		return
	}
	b.links = append(b.links, castmatch.NewLinkCandidate(url, source))
}

func (b *builder) currentURL() {
	if castmatch.IsEpisodeURL(b.page.PageURL) {
		b.push(b.page.PageURL, castmatch.SourceCurrentURL)
	}
}

func (b *builder) anchors(m castmatch.Markup) {
	for _, attrs := range m.TagAttrs("a") {
		href := resolveURL(attrs.Get("href"), b.page.PageURL)
		if href == "" {
			continue
		}

		if castmatch.IsEpisodeURL(href) {
			b.push(href, castmatch.SourceAnchor)
		}

		lower := strings.ToLower(href)
		if strings.Contains(lower, "podcasts.apple.com") || strings.Contains(lower, "itunes.apple.com") {
			if id := appleIDPattern.FindStringSubmatch(href); id != nil {
				b.page.ApplePodcastIDs = castmatch.AppendUnique(b.page.ApplePodcastIDs, id[1])
			}
		}

		if strings.Contains(lower, "/rss") || strings.Contains(lower, "feed") || strings.HasSuffix(lower, ".xml") {
			b.page.FeedURLs = castmatch.AppendUnique(b.page.FeedURLs, href)
		}
	}
}

func (b *builder) audioSources(m castmatch.Markup) {
	for _, tag := range []string{"audio", "source"} {
		for _, attrs := range m.TagAttrs(tag) {
			if src := resolveURL(attrs.Get("src"), b.page.PageURL); src != "" {
				b.page.AudioURLs = castmatch.AppendUnique(b.page.AudioURLs, src)
			}
		}
	}
}

func (b *builder) metaTags(m castmatch.Markup) {
	for _, attrs := range m.TagAttrs("meta") {
		content := attrs.Get("content")
		if content == "" {
			continue
		}

		name := strings.ToLower(attrs.Get("name"))
		property := strings.ToLower(attrs.Get("property"))

		if name == "twitter:player:stream" {
			resolved := resolveURL(content, b.page.PageURL)
			if resolved == "" {
				resolved = content
			}
			b.page.AudioURLs = castmatch.AppendUnique(b.page.AudioURLs, resolved)
		}

		if property == "og:title" || name == "twitter:title" || name == "title" {
			b.page.EpisodeTitles = castmatch.AppendUnique(b.page.EpisodeTitles, castmatch.DecodeHTMLEntities(content))
		}

		if property == "og:site_name" {
			b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, castmatch.DecodeHTMLEntities(content))
		}

		for _, match := range castmatch.FindEpisodeURLs(content) {
			b.push(match, castmatch.SourceMeta)
		}
	}
}

func (b *builder) titles(m castmatch.Markup) {
	h1 := castmatch.DecodeHTMLEntities(m.FirstTagText("h1"))
	docTitle := castmatch.DecodeHTMLEntities(m.FirstTagText("title"))
	b.page.EpisodeTitles = castmatch.AppendUnique(b.page.EpisodeTitles, h1)
	b.page.EpisodeTitles = castmatch.AppendUnique(b.page.EpisodeTitles, docTitle)

	itempropName := firstAttrWhere(m, "link", "itemprop", "name", "content")
	itempropAuthor := firstAttrWhere(m, "meta", "itemprop", "author", "content")
	b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, itempropName)
	b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, itempropAuthor)
}

func (b *builder) structuredData(m castmatch.Markup) {
	for _, block := range m.JSONLD() {
		var parsed any
		if err := json.Unmarshal([]byte(block), &parsed); err != nil {
			continue // malformed JSON-LD is skipped per block
		}

		for _, node := range jsonLDNodes(parsed) {
			types := strings.ToLower(nodeTypes(node))

			if strings.Contains(types, "episode") {
				b.page.EpisodeTitles = castmatch.AppendUnique(b.page.EpisodeTitles, stringField(node, "name"))
				b.page.EpisodeTitles = castmatch.AppendUnique(b.page.EpisodeTitles, stringField(node, "headline"))
				if series, ok := node["partOfSeries"].(map[string]any); ok {
					b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, stringField(series, "name"))
				}
			}

			if strings.Contains(types, "podcastseries") || strings.Contains(types, "podcastshow") {
				b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, stringField(node, "name"))
			}
		}
	}
}

func (b *builder) embeddedJSON(raw string) {
	if owner := ownerChannelPattern.FindStringSubmatch(raw); owner != nil {
		b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, castmatch.DecodeBackslashEscapes(owner[1]))
	}

	if desc := shortDescPattern.FindStringSubmatch(raw); desc != nil {
		b.shortDescription(castmatch.DecodeBackslashEscapes(desc[1]))
	}

	matches := escapedApplePattern.FindAllString(raw, -1)
	if len(matches) > maxEmbeddedAppleURLs {
		matches = matches[:maxEmbeddedAppleURLs]
	}
	for _, escaped := range matches {
		decoded := strings.ReplaceAll(escaped, `\/`, "/")
		if id := appleIDPattern.FindStringSubmatch(decoded); id != nil {
			b.page.ApplePodcastIDs = castmatch.AppendUnique(b.page.ApplePodcastIDs, id[1])
		}
	}
}

// shortDescription mines a platform-embedded description blob: its first
// non-blank line reads like an episode title, and "tune in to <show>" or
// "podcast: <show>" phrasing frequently names the podcast.
func (b *builder) shortDescription(desc string) {
	if desc == "" {
		return
	}

	for _, line := range strings.Split(desc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			b.page.EpisodeTitles = castmatch.AppendUnique(b.page.EpisodeTitles, line)
			break
		}
	}

	if m := tuneInPattern.FindStringSubmatch(desc); m != nil {
		b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, m[1])
	}
	if m := podcastNamePattern.FindStringSubmatch(desc); m != nil {
		b.page.PodcastTitles = castmatch.AppendUnique(b.page.PodcastTitles, m[1])
	}
}

func (b *builder) textLinks(bodyText string) {
	matches := castmatch.FindEpisodeURLs(bodyText)
	if len(matches) > maxTextLinks {
		matches = matches[:maxTextLinks]
	}
	for _, match := range matches {
		b.push(match, castmatch.SourceText)
	}
}

func firstAttrWhere(m castmatch.Markup, tag, filterAttr, filterValue, target string) string {
	for _, attrs := range m.TagAttrs(tag) {
		if strings.EqualFold(attrs.Get(filterAttr), filterValue) {
			return attrs.Get(target)
		}
	}
	return ""
}

// resolveURL resolves raw against base, mirroring browser URL resolution:
// a relative value without a usable base yields "".
func resolveURL(raw, base string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if base != "" {
		if b, err := url.Parse(base); err == nil && b.IsAbs() {
			if u, err := b.Parse(raw); err == nil {
				return u.String()
			}
			return ""
		}
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return ""
	}
	return u.String()
}

func jsonLDNodes(parsed any) []map[string]any {
	var rawNodes []any
	switch v := parsed.(type) {
	case []any:
		rawNodes = v
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			rawNodes = graph
		} else {
			rawNodes = []any{v}
		}
	default:
		return nil
	}

	nodes := make([]map[string]any, 0, len(rawNodes))
	for _, raw := range rawNodes {
		if node, ok := raw.(map[string]any); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// nodeTypes joins a node's @type values ("Episode", ["PodcastEpisode",
// "CreativeWork"], ...) into one space-separated string.
func nodeTypes(node map[string]any) string {
	switch t := node["@type"].(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func stringField(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}
