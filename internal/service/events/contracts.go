//go:generate mockgen -source=contracts.go -destination=events_mocks_test.go -package=events_test

package events

import (
	"context"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

// AutoMatcher runs an auto-match pass.
type AutoMatcher interface {
	Run(ctx context.Context, actor lifecycle.Actor) (domain.AutoMatchResult, error)
}

// Reproposer sends a rejected match back through proposal.
type Reproposer interface {
	Repropose(ctx context.Context, id int64) (domain.MatchView, error)
}
