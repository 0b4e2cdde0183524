package dashboard

import (
	"context"
	"time"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
)

// Service builds the per-role dashboard summary.
type Service struct {
	repo             statsRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a dashboard Service.
func NewService(r statsRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: r, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// For returns the dashboard of actor's role. Exactly one summary is set.
func (s *Service) For(ctx context.Context, actor lifecycle.Actor) (domain.Dashboard, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := domain.Dashboard{Role: actor.Role}
	switch actor.Role {
	case domain.RoleAdmin:
		d, err := s.repo.AdminDashboard(ctx)
		if err != nil {
			return domain.Dashboard{}, err
		}
		d.TotalUsers = s.clamp("total_users", d.TotalUsers)
		d.ActiveTolerances = s.clamp("active_tolerances", d.ActiveTolerances)
		d.PendingRequests = s.clamp("pending_requests", d.PendingRequests)
		d.CompletedMatches = s.clamp("completed_matches", d.CompletedMatches)
		out.Admin = &d
	case domain.RoleCarrier:
		d, err := s.repo.CarrierDashboard(ctx, actor.CarrierID)
		if err != nil {
			return domain.Dashboard{}, err
		}
		d.MyTolerances = s.clamp("my_tolerances", d.MyTolerances)
		d.MyRequests = s.clamp("my_requests", d.MyRequests)
		d.MyMatches = s.clamp("my_matches", d.MyMatches)
		out.Carrier = &d
	case domain.RoleDriver:
		d, err := s.repo.DriverDashboard(ctx, actor.DriverID)
		if err != nil {
			return domain.Dashboard{}, err
		}
		d.AssignedMatches = s.clamp("assigned_matches", d.AssignedMatches)
		d.CompletedMatches = s.clamp("completed_matches", d.CompletedMatches)
		d.CurrentStatus = currentStatus(d.CurrentStatus)
		out.Driver = &d
	default:
		return domain.Dashboard{}, apperr.Unauthorized
	}
	return out, nil
}

func currentStatus(s domain.MatchStatus) domain.MatchStatus {
	switch s {
	case domain.MatchProposed, domain.MatchAccepted, domain.MatchInProgress:
		return s
	default:
		return domain.MatchStatusNone
	}
}

func (s *Service) clamp(name string, n int) int {
	if n >= 0 {
		return n
	}
	s.logger.Error("negative dashboard count",
		logx.String("event", "dashboard_negative_count"),
		logx.String("count", name),
		logx.Int("value", n),
	)
	return 0
}
