package http

import (
	"context"
	"io"
	"net/http"
	"regexp"

	"golang.org/x/time/rate"

	"github.com/fwojciec/castmatch"
)

// Ensure PageService implements castmatch.PageFetcher at compile time.
var _ castmatch.PageFetcher = (*PageService)(nil)

// PageService fetches Overcast pages (show pages, episode pages) over
// plain HTTP, following redirects.
type PageService struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewPageService creates a new PageService.
func NewPageService(opts ...Option) *PageService {
	o := buildOptions(opts)
	return &PageService{
		client:  &http.Client{Timeout: o.timeout},
		limiter: rate.NewLimiter(rate.Limit(o.rps), 1),
	}
}

// Get retrieves url and returns the response for any status, except HTTP
// 429 which surfaces as an ERATELIMIT error.
func (s *PageService) Get(ctx context.Context, url string) (*castmatch.PageResponse, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, castmatch.Errorf(castmatch.EINVALID, "invalid page request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, castmatch.Errorf(castmatch.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, castmatch.Errorf(castmatch.ERATELIMIT, "overcast rate-limited the page fetch")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, castmatch.Errorf(castmatch.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return &castmatch.PageResponse{StatusCode: resp.StatusCode, Body: string(body)}, nil
}

var (
	dataItemIDPattern = regexp.MustCompile(`(?i)data-item-id="(\d+)"`)
	appURLIDPattern   = regexp.MustCompile(`(?i)overcast:///(\d+)`)
)

// ItemID fetches an episode page and extracts its numeric item ID, which
// downstream save flows key on. Returns ENOTFOUND when the page carries no
// recognizable ID.
func (s *PageService) ItemID(ctx context.Context, episodeURL string) (string, error) {
	resp, err := s.Get(ctx, episodeURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", castmatch.Errorf(castmatch.EUNAVAILABLE, "episode page returned HTTP %d", resp.StatusCode)
	}

	if m := dataItemIDPattern.FindStringSubmatch(resp.Body); m != nil {
		return m[1], nil
	}
	if m := appURLIDPattern.FindStringSubmatch(resp.Body); m != nil {
		return m[1], nil
	}
	return "", castmatch.Errorf(castmatch.ENOTFOUND, "no item ID found on episode page")
}
