package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/castmatch"
)

// Ensure PageFetcher implements castmatch.PageFetcher at compile time.
var _ castmatch.PageFetcher = (*PageFetcher)(nil)

// PageFetcher wraps a castmatch.PageFetcher with debug logging.
type PageFetcher struct {
	next   castmatch.PageFetcher
	logger *slog.Logger
}

// NewPageFetcher creates a new logging PageFetcher.
func NewPageFetcher(next castmatch.PageFetcher, logger *slog.Logger) *PageFetcher {
	return &PageFetcher{next: next, logger: logger}
}

// Get delegates to the wrapped fetcher and logs the outcome.
func (f *PageFetcher) Get(ctx context.Context, url string) (*castmatch.PageResponse, error) {
	begin := time.Now()
	resp, err := f.next.Get(ctx, url)
	if err != nil {
		f.logger.Error("page fetch",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("page fetch",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(resp.Body),
		"duration", time.Since(begin),
	)
	return resp, nil
}
