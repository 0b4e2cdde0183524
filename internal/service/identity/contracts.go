//go:generate mockgen -source=contracts.go -destination=identity_mocks_test.go -package=identity_test

package identity

import (
	"context"

	"freight-matching-platform/internal/domain"
)

type userRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Profile(ctx context.Context, userID int64) (carrierID, driverID int64, err error)
	Register(ctx context.Context, u *domain.User, carrier *domain.Carrier, driver *domain.Driver) error
}
