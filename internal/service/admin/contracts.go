//go:generate mockgen -source=contracts.go -destination=admin_mocks_test.go -package=admin_test

package admin

import (
	"context"
	"time"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

type userLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type fleetRepository interface {
	ListCarriers(ctx context.Context, activeOnly bool) ([]domain.Carrier, error)
	CreateCarrier(ctx context.Context, c *domain.Carrier) error
	ListDrivers(ctx context.Context, carrierID *int64) ([]domain.Driver, error)
	CreateDriver(ctx context.Context, d *domain.Driver) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, v *domain.Vehicle) error
}

type statisticsRepository interface {
	Statistics(ctx context.Context, since time.Time, topN int) (domain.Statistics, error)
}

// Registrar creates accounts on behalf of an administrator.
type Registrar interface {
	RegisterAs(ctx context.Context, actor lifecycle.Actor, r domain.Registration) (domain.User, error)
}
