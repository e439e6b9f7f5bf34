// Package gofeed implements the optional feed-probing capability: a
// discovered RSS feed almost always names the podcast in its channel
// title, which is a far stronger search signal than a hostname label.
package gofeed

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/fwojciec/castmatch"
)

// Ensure Prober implements castmatch.FeedProber at compile time.
var _ castmatch.FeedProber = (*Prober)(nil)

// Prober fetches and parses podcast feeds.
type Prober struct {
	parser *gofeed.Parser
}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{parser: gofeed.NewParser()}
}

// ProbeTitle returns the channel title of the feed at feedURL.
func (p *Prober) ProbeTitle(ctx context.Context, feedURL string) (string, error) {
	feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return "", castmatch.Errorf(castmatch.EUNAVAILABLE, "fetching feed %s: %v", feedURL, err)
	}
	return strings.TrimSpace(feed.Title), nil
}
