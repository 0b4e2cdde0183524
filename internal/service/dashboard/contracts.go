//go:generate mockgen -source=contracts.go -destination=dashboard_mocks_test.go -package=dashboard_test

package dashboard

import (
	"context"

	"freight-matching-platform/internal/domain"
)

type statsRepository interface {
	AdminDashboard(ctx context.Context) (domain.AdminDashboard, error)
	CarrierDashboard(ctx context.Context, carrierID int64) (domain.CarrierDashboard, error)
	DriverDashboard(ctx context.Context, driverID int64) (domain.DriverDashboard, error)
}
