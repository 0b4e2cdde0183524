package events

import (
	"context"
	"errors"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
)

// Processor reacts to freight events consumed by the worker.
type Processor struct {
	matcher    AutoMatcher
	reproposer Reproposer
	factory    *actionFactory
	logger     logx.Logger
}

// NewProcessor creates a Processor. Rejected matches are re-proposed only when
// reproposeRejected is set.
func NewProcessor(matcher AutoMatcher, reproposer Reproposer, reproposeRejected bool, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		matcher:    matcher,
		reproposer: reproposer,
		logger:     logger,
	}
	var onRejected actionFunc
	if reproposeRejected {
		onRejected = p.onMatchRejected
	}
	p.factory = newActionFactory(p.onListingCreated, onRejected)
	return p
}

// Handle processes a single event. Unknown event types are ignored.
func (p *Processor) Handle(ctx context.Context, e domain.Event) error {
	fn, ok := p.factory.get(e.Type)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onListingCreated(ctx context.Context, e domain.Event) error {
	res, err := p.matcher.Run(ctx, lifecycle.System())
	if errors.Is(err, apperr.Conflict) {
		p.logger.Info("auto-match lost a race, skipping",
			logx.String("event", "auto_match_conflict"),
			logx.String("trigger", string(e.Type)),
			logx.Int64("entity_id", e.EntityID),
		)
		return nil
	}
	if err != nil {
		return err
	}
	p.logger.Debug("auto-match triggered",
		logx.String("event", "auto_match_triggered"),
		logx.String("trigger", string(e.Type)),
		logx.Int("matches_created", res.MatchesCreated),
	)
	return nil
}

func (p *Processor) onMatchRejected(ctx context.Context, e domain.Event) error {
	_, err := p.reproposer.Repropose(ctx, e.EntityID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.NotFound), errors.Is(err, apperr.InvalidTransition), errors.Is(err, apperr.Conflict):
		p.logger.Info("match not re-proposed",
			logx.String("event", "repropose_skipped"),
			logx.Int64("match_id", e.EntityID),
			logx.String("code", apperr.Code(err)),
		)
		return nil
	default:
		return err
	}
}
