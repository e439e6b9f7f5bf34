package castmatch

import "context"

// FeedProber resolves a feed URL to its channel title. Like HintService it
// is best-effort: the resolver swallows errors and missing titles.
type FeedProber interface {
	ProbeTitle(ctx context.Context, feedURL string) (string, error)
}
