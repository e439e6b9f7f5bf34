// Package rod provides a browser-backed castmatch.Fetcher. Video sites
// and podcast hosts render most of their useful metadata with JavaScript,
// so a plain HTTP GET often sees none of it.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/fwojciec/castmatch"
)

// DefaultSettleDelay gives script-heavy pages a moment to populate
// embedded JSON (ownerChannelName, shortDescription) after load.
const DefaultSettleDelay = 500 * time.Millisecond

// Ensure Fetcher implements castmatch.Fetcher at compile time.
var _ castmatch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
	settle  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSettleDelay overrides the post-load delay before the HTML snapshot
// is taken.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.settle = d }
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f := &Fetcher{browser: browser, settle: DefaultSettleDelay}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML snapshot.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.settle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.settle):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
