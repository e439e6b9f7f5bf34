package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/castmatch"
	"github.com/fwojciec/castmatch/extract"
	castgoquery "github.com/fwojciec/castmatch/goquery"
)

// loadPageContext acquires markup for pageURL (from a file, a headless
// browser, or a plain GET) and extracts its page context.
func loadPageContext(deps *Dependencies, pageURL, htmlPath string, browser bool) (*castmatch.PageContext, error) {
	var markup string

	switch {
	case htmlPath != "":
		raw, err := os.ReadFile(htmlPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", htmlPath, err)
		}
		markup = string(raw)

	case browser:
		fetcher, err := deps.NewBrowser()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		markup, err = fetcher.Fetch(deps.Ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", pageURL, err)
		}

	default:
		resp, err := deps.Pages.Get(deps.Ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("fetching %s: HTTP %d", pageURL, resp.StatusCode)
		}
		markup = resp.Body
	}

	m, err := castgoquery.NewMarkup(markup)
	if err != nil {
		return nil, err
	}
	return extract.PageContext(pageURL, m), nil
}
