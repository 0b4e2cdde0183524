//go:generate mockgen -source=contracts.go -destination=match_mocks_test.go -package=match_test

package match

import (
	"context"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/ports/matchtx"
)

type matchRepository interface {
	Get(ctx context.Context, id int64) (*domain.MatchView, error)
	List(ctx context.Context, f domain.MatchFilter) ([]domain.MatchView, error)
	Events(ctx context.Context, matchID int64) ([]domain.MatchEvent, error)
	WithTx(ctx context.Context, fn func(tx matchtx.Repository) error) error
}
