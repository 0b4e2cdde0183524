package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
)

const topCarriers = 5

// Service is the administration back office.
type Service struct {
	users            userLister
	fleet            fleetRepository
	stats            statisticsRepository
	registrar        Registrar
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates an admin Service.
func NewService(
	users userLister,
	fleet fleetRepository,
	stats statisticsRepository,
	registrar Registrar,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		users:            users,
		fleet:            fleet,
		stats:            stats,
		registrar:        registrar,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func authorize(actor lifecycle.Actor) error {
	return lifecycle.Authorize(actor, lifecycle.Platform(), lifecycle.ActionAdminister)
}

// Users lists every account.
func (s *Service) Users(ctx context.Context, actor lifecycle.Actor) ([]domain.User, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.users.List(ctx)
}

// CreateUser creates an account of any role.
func (s *Service) CreateUser(ctx context.Context, actor lifecycle.Actor, r domain.Registration) (domain.User, error) {
	u, err := s.registrar.RegisterAs(ctx, actor, r)
	if err != nil {
		return domain.User{}, err
	}
	s.audit(actor, "user_created", u.ID)
	return u, nil
}

// Carriers lists carriers including inactive ones.
func (s *Service) Carriers(ctx context.Context, actor lifecycle.Actor) ([]domain.Carrier, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.fleet.ListCarriers(ctx, false)
}

// CreateCarrier registers a carrier company without a login.
func (s *Service) CreateCarrier(ctx context.Context, actor lifecycle.Actor, c domain.Carrier) (domain.Carrier, error) {
	if err := authorize(actor); err != nil {
		return domain.Carrier{}, err
	}
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	switch {
	case c.CompanyName == "":
		return domain.Carrier{}, fmt.Errorf("%w: company name is required", apperr.Invalid)
	case c.Email != "" && !domain.ValidateEmail(c.Email):
		return domain.Carrier{}, fmt.Errorf("%w: email %q is not valid", apperr.Invalid, c.Email)
	case c.Phone != "" && !domain.ValidatePhone(c.Phone):
		return domain.Carrier{}, fmt.Errorf("%w: phone %q is not valid", apperr.Invalid, c.Phone)
	}
	c.UserID = nil
	c.IsActive = true

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.fleet.CreateCarrier(ctx, &c); err != nil {
		return domain.Carrier{}, err
	}
	s.audit(actor, "carrier_created", c.ID)
	return c, nil
}

// Drivers lists drivers, optionally of one carrier.
func (s *Service) Drivers(ctx context.Context, actor lifecycle.Actor, carrierID *int64) ([]domain.Driver, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.fleet.ListDrivers(ctx, carrierID)
}

// CreateDriver registers a driver without a login.
func (s *Service) CreateDriver(ctx context.Context, actor lifecycle.Actor, d domain.Driver) (domain.Driver, error) {
	if err := authorize(actor); err != nil {
		return domain.Driver{}, err
	}
	d.Name = strings.TrimSpace(d.Name)
	d.LicenseNumber = strings.TrimSpace(d.LicenseNumber)
	switch {
	case d.CarrierID <= 0:
		return domain.Driver{}, fmt.Errorf("%w: carrier is required", apperr.Invalid)
	case d.Name == "":
		return domain.Driver{}, fmt.Errorf("%w: name is required", apperr.Invalid)
	case d.LicenseNumber == "":
		return domain.Driver{}, fmt.Errorf("%w: license number is required", apperr.Invalid)
	}
	if d.Status == "" {
		d.Status = domain.DriverAvailable
	}
	if !d.Status.Valid() {
		return domain.Driver{}, fmt.Errorf("%w: unknown driver status %q", apperr.Invalid, d.Status)
	}
	d.UserID = nil
	d.IsActive = true

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.fleet.CreateDriver(ctx, &d); err != nil {
		return domain.Driver{}, err
	}
	s.audit(actor, "driver_created", d.ID)
	return d, nil
}

// Vehicles lists every vehicle.
func (s *Service) Vehicles(ctx context.Context, actor lifecycle.Actor) ([]domain.Vehicle, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.fleet.ListVehicles(ctx)
}

// CreateVehicle registers a vehicle of a carrier.
func (s *Service) CreateVehicle(ctx context.Context, actor lifecycle.Actor, v domain.Vehicle) (domain.Vehicle, error) {
	if err := authorize(actor); err != nil {
		return domain.Vehicle{}, err
	}
	v.VehicleNumber = strings.TrimSpace(v.VehicleNumber)
	v.VehicleType = strings.TrimSpace(v.VehicleType)
	switch {
	case v.CarrierID <= 0:
		return domain.Vehicle{}, fmt.Errorf("%w: carrier is required", apperr.Invalid)
	case v.VehicleNumber == "":
		return domain.Vehicle{}, fmt.Errorf("%w: vehicle number is required", apperr.Invalid)
	case v.VehicleType == "":
		return domain.Vehicle{}, fmt.Errorf("%w: vehicle type is required", apperr.Invalid)
	}
	if v.Status == "" {
		v.Status = domain.VehicleAvailable
	}
	if !v.Status.Valid() {
		return domain.Vehicle{}, fmt.Errorf("%w: unknown vehicle status %q", apperr.Invalid, v.Status)
	}
	v.IsActive = true

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.fleet.CreateVehicle(ctx, &v); err != nil {
		return domain.Vehicle{}, err
	}
	s.audit(actor, "vehicle_created", v.ID)
	return v, nil
}

// Statistics reports platform totals, this month's activity (UTC), status
// breakdowns and the busiest carriers.
func (s *Service) Statistics(ctx context.Context, actor lifecycle.Actor) (domain.Statistics, error) {
	if err := lifecycle.Authorize(actor, lifecycle.Platform(), lifecycle.ActionViewStatistics); err != nil {
		return domain.Statistics{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.stats.Statistics(ctx, monthStart(s.now()), topCarriers)
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (s *Service) audit(actor lifecycle.Actor, event string, id int64) {
	s.logger.Info("admin change",
		logx.String("event", event),
		logx.Int64("id", id),
		logx.Int64("actor_user_id", actor.UserID),
	)
}
