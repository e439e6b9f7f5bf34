package mock

import (
	"context"

	"github.com/fwojciec/castmatch"
)

var _ castmatch.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of castmatch.PageFetcher.
type PageFetcher struct {
	GetFn func(ctx context.Context, url string) (*castmatch.PageResponse, error)
}

func (f *PageFetcher) Get(ctx context.Context, url string) (*castmatch.PageResponse, error) {
	return f.GetFn(ctx, url)
}

var _ castmatch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of castmatch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
