package location

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

// Service records driver positions and serves match paths.
type Service struct {
	repo             locationRepository
	matches          matchReader
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a location Service.
func NewService(r locationRepository, matches matchReader, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: r, matches: matches, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) match(ctx context.Context, id int64) (domain.MatchView, error) {
	m, err := s.matches.Get(ctx, id)
	if err != nil {
		return domain.MatchView{}, err
	}
	if m == nil {
		return domain.MatchView{}, fmt.Errorf("%w: match %d", apperr.NotFound, id)
	}
	return *m, nil
}

// Update stores the calling driver's position. When p.MatchID is set the match
// must be assigned to the driver and the point is added to its path.
func (s *Service) Update(ctx context.Context, actor lifecycle.Actor, p domain.LocationPoint) (domain.LocationPoint, error) {
	if actor.Role != domain.RoleDriver || actor.DriverID <= 0 {
		return domain.LocationPoint{}, fmt.Errorf("%w: only drivers report locations", apperr.Unauthorized)
	}
	if !domain.ValidCoordinates(p.Latitude, p.Longitude) {
		return domain.LocationPoint{}, fmt.Errorf("%w: coordinates out of range", apperr.Invalid)
	}
	if p.MatchID < 0 {
		return domain.LocationPoint{}, fmt.Errorf("%w: match id must be positive", apperr.Invalid)
	}
	p.DriverID = actor.DriverID
	p.Notes = strings.TrimSpace(p.Notes)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if p.MatchID > 0 {
		m, err := s.match(ctx, p.MatchID)
		if err != nil {
			return domain.LocationPoint{}, err
		}
		if m.DriverID == nil || *m.DriverID != actor.DriverID {
			return domain.LocationPoint{}, fmt.Errorf("%w: match %d is not assigned to you", apperr.Unauthorized, p.MatchID)
		}
		if p.Status == "" {
			p.Status = string(m.Status)
		}
	}

	if err := s.repo.Record(ctx, &p); err != nil {
		return domain.LocationPoint{}, err
	}
	s.logger.Debug("location recorded",
		logx.String("event", "location_recorded"),
		logx.Int64("driver_id", p.DriverID),
		logx.Int64("match_id", p.MatchID),
	)
	return p, nil
}

// Path returns the recorded path of a match. Admins, the assigned driver and
// the owning carriers may read it.
func (s *Service) Path(ctx context.Context, actor lifecycle.Actor, matchID int64) ([]domain.LocationPoint, error) {
	if matchID <= 0 {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	m, err := s.match(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Authorize(actor, lifecycle.MatchEntity(m), lifecycle.ActionView); err != nil {
		return nil, err
	}
	return s.repo.Path(ctx, matchID)
}
