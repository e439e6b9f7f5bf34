package mock

import (
	"context"

	"github.com/fwojciec/castmatch"
)

var _ castmatch.SearchProvider = (*SearchProvider)(nil)

// SearchProvider is a mock implementation of castmatch.SearchProvider.
type SearchProvider struct {
	SearchFn func(ctx context.Context, query string) ([]castmatch.SearchResult, error)
}

func (s *SearchProvider) Search(ctx context.Context, query string) ([]castmatch.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
