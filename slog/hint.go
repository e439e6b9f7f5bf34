package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/castmatch"
)

// Ensure HintService implements castmatch.HintService at compile time.
var _ castmatch.HintService = (*HintService)(nil)

// HintService wraps a castmatch.HintService with debug logging.
type HintService struct {
	next   castmatch.HintService
	logger *slog.Logger
}

// NewHintService creates a new logging HintService.
func NewHintService(next castmatch.HintService, logger *slog.Logger) *HintService {
	return &HintService{next: next, logger: logger}
}

// Infer delegates to the wrapped service and logs the outcome. Hint
// failures are logged at warn level because the resolver swallows them.
func (s *HintService) Infer(ctx context.Context, page *castmatch.PageContext) (*castmatch.Hint, error) {
	begin := time.Now()
	hint, err := s.next.Infer(ctx, page)
	if err != nil {
		s.logger.Warn("hint inference",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	if hint == nil {
		s.logger.Info("hint inference", "hint", "(none)", "duration", time.Since(begin))
		return nil, nil
	}
	s.logger.Info("hint inference",
		"podcast", hint.PodcastName,
		"episode", hint.EpisodeTitle,
		"duration", time.Since(begin),
	)
	return hint, nil
}
