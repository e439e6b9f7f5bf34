// Package slog provides logging decorators for the castmatch collaborator
// interfaces. The core resolver stays logger-free; observability is
// wrapped on at wiring time.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/castmatch"
)

// Ensure SearchProvider implements castmatch.SearchProvider at compile time.
var _ castmatch.SearchProvider = (*SearchProvider)(nil)

// SearchProvider wraps a castmatch.SearchProvider with debug logging.
type SearchProvider struct {
	next   castmatch.SearchProvider
	logger *slog.Logger
}

// NewSearchProvider creates a new logging SearchProvider.
func NewSearchProvider(next castmatch.SearchProvider, logger *slog.Logger) *SearchProvider {
	return &SearchProvider{next: next, logger: logger}
}

// Search delegates to the wrapped provider and logs the outcome.
func (s *SearchProvider) Search(ctx context.Context, query string) ([]castmatch.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.Search(ctx, query)
	if err != nil {
		s.logger.Error("directory search",
			"query", query,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("directory search",
		"query", query,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}
