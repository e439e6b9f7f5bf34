package castmatch

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// PodcastQueryBoost is added to queries seeded from podcast-title
// candidates: directory names are the strongest search signal.
const PodcastQueryBoost = 100

// SearchQuery is an ephemeral scored query string. Queries are produced,
// ranked and consumed within a single resolution.
type SearchQuery struct {
	Text  string
	Score int
}

var (
	titleSeparators = regexp.MustCompile(`[|\x{2013}\x{2014}:-]`)
	featureWords    = regexp.MustCompile(`(?i)\b(with|feat\.?|featuring|vision|interview)\b`)

	// Exact strings that identify a query as pure platform noise.
	noiseQueries = map[string]bool{
		"youtube":        true,
		"podcast":        true,
		"episode":        true,
		"apple podcasts": true,
		"spotify":        true,
	}
)

// ScoreSearchQuery scores a single query string. Pure platform noise
// scores 0 and is never searched. Otherwise the base is the length capped
// at 80, penalized for platform words and rewarded for separator
// punctuation and feature/interview phrasing.
func ScoreSearchQuery(text string) int {
	lower := strings.ToLower(text)
	if noiseQueries[lower] {
		return 0
	}

	score := min(utf8.RuneCountInString(text), 80)
	if strings.Contains(lower, "youtube") || strings.Contains(lower, "apple podcasts") || strings.Contains(lower, "spotify") {
		score -= 25
	}
	if strings.ContainsAny(text, ":|-") {
		score += 10
	}
	if featureWords.MatchString(text) {
		score += 8
	}
	return score
}

// BuildQueries turns a PageContext into a ranked, case-insensitively
// deduplicated list of search queries. Podcast-title candidates carry
// PodcastQueryBoost; feed hostnames and episode-title segments are
// unboosted. Queries scoring zero or less are dropped; duplicates keep the
// highest-scoring surface form at the first-seen position; the result is
// sorted descending by score with insertion order breaking ties.
func BuildQueries(page *PageContext) []SearchQuery {
	type offer struct {
		text  string
		boost int
	}
	var offers []offer

	for _, p := range page.PodcastTitles {
		offers = append(offers, offer{text: p, boost: PodcastQueryBoost})
	}

	for _, feedURL := range page.FeedURLs {
		if label := feedHostLabel(feedURL); label != "" {
			offers = append(offers, offer{text: label})
		}
	}

	episodeTitle := BestEpisodeTitle(page.EpisodeTitles)
	for _, segment := range titleSeparators.Split(episodeTitle, -1) {
		offers = append(offers, offer{text: segment})
	}
	offers = append(offers, offer{text: episodeTitle})

	index := make(map[string]int)
	var queries []SearchQuery
	for _, o := range offers {
		text := whitespaceRun.ReplaceAllString(strings.TrimSpace(o.text), " ")
		if utf8.RuneCountInString(text) < 3 {
			continue
		}

		base := ScoreSearchQuery(text)
		if base == 0 && noiseQueries[strings.ToLower(text)] {
			continue
		}
		score := base + o.boost
		if score <= 0 {
			continue
		}

		key := strings.ToLower(text)
		if i, seen := index[key]; seen {
			if score > queries[i].Score {
				queries[i] = SearchQuery{Text: text, Score: score}
			}
			continue
		}
		index[key] = len(queries)
		queries = append(queries, SearchQuery{Text: text, Score: score})
	}

	sort.SliceStable(queries, func(i, j int) bool { return queries[i].Score > queries[j].Score })
	return queries
}

// feedHostLabel reduces a feed URL to the first label of its hostname,
// e.g. "https://feeds.example.com/rss" -> "feeds" and
// "https://www.example.com/feed" -> "example".
func feedHostLabel(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	return strings.SplitN(host, ".", 2)[0]
}
