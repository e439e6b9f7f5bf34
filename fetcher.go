package castmatch

import "context"

// Fetcher retrieves page markup from URLs.
// Implementations may use browser automation so that script-heavy pages
// (video sites in particular) expose their rendered content.
type Fetcher interface {
	// Fetch retrieves the page's markup, rendered when the implementation
	// supports it. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
