package castmatch

import (
	"sort"
	"strings"
)

// LinkSource identifies where on a page a plus-link candidate was found.
type LinkSource string

// Link candidate sources, strongest first.
const (
	SourceCurrentURL LinkSource = "current-url"
	SourceAnchor     LinkSource = "anchor"
	SourceMeta       LinkSource = "meta"
	SourceText       LinkSource = "text"
)

// Weight returns the fixed confidence weight for a source. The constants
// are empirically chosen; changing them changes observable matching
// behavior.
func (s LinkSource) Weight() int {
	switch s {
	case SourceCurrentURL:
		return 100
	case SourceAnchor:
		return 90
	case SourceMeta:
		return 70
	case SourceText:
		return 40
	}
	return 0
}

// LinkCandidate is a plus link discovered on a page, weighted by the
// confidence of its source.
type LinkCandidate struct {
	URL    string     `json:"url"`
	Source LinkSource `json:"source"`
	Weight int        `json:"weight"`
}

// NewLinkCandidate creates a candidate with the weight implied by source.
func NewLinkCandidate(url string, source LinkSource) LinkCandidate {
	return LinkCandidate{URL: url, Source: source, Weight: source.Weight()}
}

// PageContext holds everything extracted from a single page. Every slice
// is duplicate-free under its stated equality and preserves discovery
// order; OvercastLinks is always sorted descending by weight. A
// PageContext is built once per page and never mutated afterwards.
type PageContext struct {
	PageURL         string          `json:"pageURL"`
	EpisodeTitles   []string        `json:"episodeTitles"`
	PodcastTitles   []string        `json:"podcastTitles"`
	AudioURLs       []string        `json:"audioURLs"`
	FeedURLs        []string        `json:"feedURLs"`
	ApplePodcastIDs []string        `json:"applePodcastIDs"`
	OvercastLinks   []LinkCandidate `json:"overcastLinks"`
}

// WithHint returns a copy of the context with podcastName and episodeTitle
// prepended to their candidate lists as the highest-priority entries.
// Empty values leave the corresponding list untouched.
func (pc *PageContext) WithHint(podcastName, episodeTitle string) *PageContext {
	out := *pc
	out.PodcastTitles = prepend(pc.PodcastTitles, podcastName)
	out.EpisodeTitles = prepend(pc.EpisodeTitles, episodeTitle)
	return &out
}

func prepend(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, v)
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

// AppendUnique appends v to list unless it is blank or already present
// (case-sensitive exact match). The trimmed value is stored.
func AppendUnique(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}

// RankLinks deduplicates candidates by fragment-stripped URL, keeping the
// highest-weight instance of each, and returns them sorted descending by
// weight. Candidates with unparseable URLs are dropped. Insertion order is
// preserved among equal weights.
func RankLinks(candidates []LinkCandidate) []LinkCandidate {
	index := make(map[string]int)
	out := make([]LinkCandidate, 0, len(candidates))
	for _, c := range candidates {
		normalized, ok := NormalizeEpisodeURL(c.URL)
		if !ok {
			continue
		}
		c.URL = normalized
		if i, seen := index[normalized]; seen {
			if c.Weight > out[i].Weight {
				out[i] = c
			}
			continue
		}
		index[normalized] = len(out)
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out
}
