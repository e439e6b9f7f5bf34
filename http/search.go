// Package http provides HTTP-backed implementations of the castmatch
// collaborator contracts against the Overcast service: podcast search,
// show-page fetching, and episode item-ID extraction.
package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/fwojciec/castmatch"
)

// DefaultBaseURL is the Overcast origin.
const DefaultBaseURL = "https://overcast.fm"

// DefaultTimeout is the default timeout for requests to Overcast.
const DefaultTimeout = 10 * time.Second

// DefaultRequestsPerSecond spaces requests to Overcast. The service rate
// limits aggressively and a 429 aborts the whole resolution, so politeness
// is cheaper than failure.
const DefaultRequestsPerSecond = 2.0

// Ensure SearchService implements castmatch.SearchProvider at compile time.
var _ castmatch.SearchProvider = (*SearchService)(nil)

// SearchService queries Overcast's podcast search autocomplete endpoint.
type SearchService struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
}

// Option configures a SearchService or PageService.
type Option func(*options)

type options struct {
	baseURL string
	timeout time.Duration
	rps     float64
}

// WithBaseURL overrides the Overcast origin. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRequestsPerSecond sets the politeness rate limit.
func WithRequestsPerSecond(rps float64) Option {
	return func(o *options) { o.rps = rps }
}

func buildOptions(opts []Option) options {
	o := options{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		rps:     DefaultRequestsPerSecond,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewSearchService creates a new SearchService.
func NewSearchService(opts ...Option) *SearchService {
	o := buildOptions(opts)
	return &SearchService{
		client:  &http.Client{Timeout: o.timeout},
		limiter: rate.NewLimiter(rate.Limit(o.rps), 1),
		baseURL: o.baseURL,
	}
}

// searchResponse mirrors the autocomplete endpoint's JSON. IDs arrive as
// numbers.
type searchResponse struct {
	Results []struct {
		ID    json.Number `json:"id"`
		Hash  string      `json:"hash"`
		Title string      `json:"title"`
	} `json:"results"`
}

// Search queries the directory for query. Non-success responses and
// malformed payloads yield an empty result set; HTTP 429 yields an
// ERATELIMIT error.
func (s *SearchService) Search(ctx context.Context, query string) ([]castmatch.SearchResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := s.baseURL + "/podcasts/search_autocomplete?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, castmatch.Errorf(castmatch.EINVALID, "invalid search request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, castmatch.Errorf(castmatch.EUNAVAILABLE, "overcast search failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, castmatch.Errorf(castmatch.ERATELIMIT, "overcast rate-limited the search")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, castmatch.Errorf(castmatch.EUNAVAILABLE, "reading search response: %v", err)
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, nil // malformed result JSON is swallowed
	}

	results := make([]castmatch.SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, castmatch.SearchResult{
			ID:    r.ID.String(),
			Hash:  r.Hash,
			Title: r.Title,
		})
	}
	return results, nil
}
