//go:generate mockgen -source=contracts.go -destination=location_mocks_test.go -package=location_test

package location

import (
	"context"

	"freight-matching-platform/internal/domain"
)

type locationRepository interface {
	Record(ctx context.Context, p *domain.LocationPoint) error
	Path(ctx context.Context, matchID int64) ([]domain.LocationPoint, error)
}

type matchReader interface {
	Get(ctx context.Context, id int64) (*domain.MatchView, error)
}
