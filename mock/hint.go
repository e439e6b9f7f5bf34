package mock

import (
	"context"

	"github.com/fwojciec/castmatch"
)

var _ castmatch.HintService = (*HintService)(nil)

// HintService is a mock implementation of castmatch.HintService.
type HintService struct {
	InferFn func(ctx context.Context, page *castmatch.PageContext) (*castmatch.Hint, error)
}

func (s *HintService) Infer(ctx context.Context, page *castmatch.PageContext) (*castmatch.Hint, error) {
	return s.InferFn(ctx, page)
}

var _ castmatch.FeedProber = (*FeedProber)(nil)

// FeedProber is a mock implementation of castmatch.FeedProber.
type FeedProber struct {
	ProbeTitleFn func(ctx context.Context, feedURL string) (string, error)
}

func (p *FeedProber) ProbeTitle(ctx context.Context, feedURL string) (string, error) {
	return p.ProbeTitleFn(ctx, feedURL)
}
