package castmatch

import "context"

// SearchResult is one entry from the directory's podcast search. ID and
// Hash together identify a show and form its directory page path.
type SearchResult struct {
	ID    string
	Hash  string
	Title string
}

// SearchProvider searches the podcast directory.
// Implementations return an empty result set on non-success HTTP responses
// and an ERATELIMIT error on HTTP 429.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// PageResponse is the raw outcome of fetching a directory page.
type PageResponse struct {
	StatusCode int
	Body       string
}

// PageFetcher retrieves directory show pages. Implementations return the
// response for any status so the caller can decide how to proceed, except
// HTTP 429 which surfaces as an ERATELIMIT error.
type PageFetcher interface {
	Get(ctx context.Context, url string) (*PageResponse, error)
}

// EpisodeLink is an episode candidate scraped from a directory show page.
type EpisodeLink struct {
	URL   string
	Title string
}

// EpisodeLinkParser extracts episode links from a directory show page's
// markup. Results are deduplicated by URL, first occurrence winning, with
// fragment-stripped absolute URLs and non-empty decoded titles.
type EpisodeLinkParser interface {
	EpisodeLinks(html string) []EpisodeLink
}

// Resolution is the sole output of the matching engine. Source is either
// "direct-<origin>" for a link found on the page itself or
// "search:<podcastTitle>" for a fuzzy-matched episode.
type Resolution struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}
