package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/ports/eventbus"
	"freight-matching-platform/internal/ports/matchtx"
)

// Service drives matches through their lifecycle on behalf of actors.
type Service struct {
	repo             matchRepository
	publisher        eventbus.Publisher
	transitions      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a match Service. A nil publisher discards events and a nil
// counter disables transition metrics.
func NewService(
	r matchRepository,
	publisher eventbus.Publisher,
	transitions *prometheus.CounterVec,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if publisher == nil {
		publisher = eventbus.Nop{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		publisher:        publisher,
		transitions:      transitions,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// TransitionInput carries the optional inputs of an actor-driven transition.
type TransitionInput struct {
	Reason string
	// Expected, when set, must equal the stored status or the call fails with apperr.Conflict.
	Expected *domain.MatchStatus
}

// List returns the matches visible to actor, optionally narrowed by status.
func (s *Service) List(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.MatchView, error) {
	f := domain.MatchFilter{Status: status}
	if status != "" && !domain.MatchStatus(status).Valid() {
		return nil, fmt.Errorf("%w: unknown match status %q", apperr.Invalid, status)
	}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleCarrier:
		id := actor.CarrierID
		f.CarrierID = &id
	case domain.RoleDriver:
		id := actor.DriverID
		f.DriverID = &id
	default:
		return nil, apperr.Unauthorized
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// Get returns one match if actor may view it.
func (s *Service) Get(ctx context.Context, actor lifecycle.Actor, id int64) (domain.MatchView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.visible(ctx, actor, id)
}

func (s *Service) visible(ctx context.Context, actor lifecycle.Actor, id int64) (domain.MatchView, error) {
	if id <= 0 {
		return domain.MatchView{}, apperr.Invalid
	}
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.MatchView{}, err
	}
	if m == nil {
		return domain.MatchView{}, apperr.NotFound
	}
	if err := lifecycle.Authorize(actor, lifecycle.MatchEntity(*m), lifecycle.ActionView); err != nil {
		return domain.MatchView{}, err
	}
	return *m, nil
}

// Capabilities returns the match together with what actor may do with it now.
func (s *Service) Capabilities(ctx context.Context, actor lifecycle.Actor, id int64) (domain.MatchView, lifecycle.ActionSet, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	m, err := s.visible(ctx, actor, id)
	if err != nil {
		return domain.MatchView{}, lifecycle.ActionSet{}, err
	}
	return m, lifecycle.CapabilitiesFor(actor, lifecycle.MatchEntity(m)), nil
}

// History returns the status history of a match visible to actor.
func (s *Service) History(ctx context.Context, actor lifecycle.Actor, id int64) ([]domain.MatchEvent, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.visible(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.repo.Events(ctx, id)
}

// Transition applies an actor-driven action (accept, reject, start, complete) to match id.
func (s *Service) Transition(
	ctx context.Context,
	actor lifecycle.Actor,
	id int64,
	action domain.MatchAction,
	in TransitionInput,
) (domain.MatchView, error) {
	out, freed, err := s.transition(ctx, actor, id, action, in)
	s.observe(action, err)
	if err != nil {
		s.logger.Warn("match transition refused",
			logx.String("event", "match_transition_failed"),
			logx.Int64("match_id", id),
			logx.String("action", string(action)),
			logx.String("code", apperr.Code(err)),
			logx.Err(err),
		)
		return domain.MatchView{}, err
	}

	s.logger.Info("match transitioned",
		logx.String("event", "match_transitioned"),
		logx.Int64("match_id", out.ID),
		logx.String("action", string(action)),
		logx.String("status", string(out.Status)),
		logx.Int64("actor_user_id", actor.UserID),
	)
	s.publish(ctx, out, actor)
	for _, m := range freed {
		s.logger.Info("waiting match proposed",
			logx.String("event", "match_proposed"),
			logx.Int64("match_id", m.ID),
			logx.Int64("after_match_id", out.ID),
		)
		s.publish(ctx, m, lifecycle.System())
	}
	return out, nil
}

// transition also returns the waiting matches proposed to a driver that the
// action freed.
func (s *Service) transition(
	ctx context.Context,
	actor lifecycle.Actor,
	id int64,
	action domain.MatchAction,
	in TransitionInput,
) (domain.MatchView, []domain.MatchView, error) {
	if id <= 0 {
		return domain.MatchView{}, nil, apperr.Invalid
	}
	if in.Expected != nil && !in.Expected.Valid() {
		return domain.MatchView{}, nil, fmt.Errorf("%w: unknown match status %q", apperr.Invalid, *in.Expected)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		out   domain.MatchView
		freed []domain.MatchView
	)
	err := s.repo.WithTx(ctx, func(tx matchtx.Repository) error {
		freed = nil
		m, err := tx.GetMatch(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return apperr.NotFound
		}
		if in.Expected != nil && *in.Expected != m.Status {
			return fmt.Errorf("%w: match %d is %s, not %s", apperr.Conflict, id, m.Status, *in.Expected)
		}
		out, err = Apply(ctx, tx, *m, action, actor, lifecycle.Options{Reason: in.Reason})
		if err != nil || action != domain.ActionComplete {
			return err
		}
		freed, err = ProposeWaiting(ctx, tx)
		return err
	})
	if err != nil {
		return domain.MatchView{}, nil, err
	}
	return out, freed, nil
}

// Repropose returns a rejected match to pending and proposes it again with an
// available driver of the offering carrier. Without a free driver it stays
// pending until an auto-match run or a completed match proposes it.
func (s *Service) Repropose(ctx context.Context, id int64) (domain.MatchView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	system := lifecycle.System()
	var out domain.MatchView
	err := s.repo.WithTx(ctx, func(tx matchtx.Repository) error {
		m, err := tx.GetMatch(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return apperr.NotFound
		}
		out, err = Apply(ctx, tx, *m, domain.ActionRepropose, system, lifecycle.Options{})
		if err != nil {
			return err
		}
		driver, err := tx.FindAvailableDriverForUpdate(ctx, out.OfferCarrierID)
		if err != nil || driver == nil {
			return err
		}
		out, err = Apply(ctx, tx, out, domain.ActionPropose, system, lifecycle.Options{DriverID: &driver.ID})
		return err
	})
	s.observe(domain.ActionRepropose, err)
	if err != nil {
		return domain.MatchView{}, err
	}
	s.logger.Info("match re-proposed",
		logx.String("event", "match_reproposed"),
		logx.Int64("match_id", out.ID),
		logx.String("status", string(out.Status)),
	)
	s.publish(ctx, out, system)
	return out, nil
}

func (s *Service) observe(action domain.MatchAction, err error) {
	if s.transitions == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = apperr.Code(err)
	}
	s.transitions.WithLabelValues(string(action), result).Inc()
}

func (s *Service) publish(ctx context.Context, m domain.MatchView, actor lifecycle.Actor) {
	e := domain.Event{
		ID:          uuid.NewString(),
		Type:        domain.MatchEventType(m.Status),
		EntityID:    m.ID,
		Status:      string(m.Status),
		ActorUserID: actor.UserID,
		Reason:      m.RejectionReason,
		OccurredAt:  s.now(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Error("publish match event",
			logx.String("event", "publish_failed"),
			logx.String("type", string(e.Type)),
			logx.Int64("match_id", m.ID),
			logx.Err(err),
		)
	}
}
