package castmatch

import "context"

// Hint is an externally inferred reading of a page's candidate lists.
type Hint struct {
	PodcastName  string `json:"podcastName"`
	EpisodeTitle string `json:"episodeTitle"`
}

// HintService infers the podcast name and episode title from an extracted
// page context, typically via an LLM. It is a best-effort capability: the
// resolver swallows errors and proceeds on heuristics alone.
type HintService interface {
	// Infer returns a hint, or nil when nothing useful can be inferred.
	Infer(ctx context.Context, page *PageContext) (*Hint, error)
}
