package automatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/ports/eventbus"
	"freight-matching-platform/internal/ports/matchtx"
	"freight-matching-platform/internal/service/match"
)

// Service pairs unmatched offers with compatible delivery requests.
type Service struct {
	repo             matchtx.Runner
	publisher        eventbus.Publisher
	created          prometheus.Counter
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates an auto-match Service.
func NewService(
	r matchtx.Runner,
	publisher eventbus.Publisher,
	created prometheus.Counter,
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
		created:          created,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Run first proposes pending matches that were left without a driver, then
// creates a pending match for every compatible unmatched pair and proposes it
// when the offering carrier has a free driver. Each offer and request takes
// part in at most one new match per run.
func (s *Service) Run(ctx context.Context, actor lifecycle.Actor) (domain.AutoMatchResult, error) {
	if err := lifecycle.Authorize(actor, lifecycle.Platform(), lifecycle.ActionAutoMatch); err != nil {
		return domain.AutoMatchResult{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		result   domain.AutoMatchResult
		created  []domain.MatchView
		reissued []domain.MatchView
	)
	err := s.repo.WithTx(ctx, func(tx matchtx.Repository) error {
		result = domain.AutoMatchResult{}
		created = created[:0]

		var err error
		reissued, err = match.ProposeWaiting(ctx, tx)
		if err != nil {
			return err
		}
		result.Proposed = len(reissued)

		offers, err := tx.UnmatchedOffers(ctx)
		if err != nil {
			return err
		}
		requests, err := tx.UnmatchedRequests(ctx)
		if err != nil {
			return err
		}

		taken := make(map[int64]bool, len(requests))
		for _, o := range offers {
			for _, r := range requests {
				if taken[r.ID] || !Compatible(o, r) {
					continue
				}
				exists, err := tx.PairExists(ctx, o.ID, r.ID)
				if err != nil {
					return err
				}
				if exists {
					continue
				}

				v, proposed, err := s.create(ctx, tx, o, r)
				if err != nil {
					return err
				}
				taken[r.ID] = true
				result.MatchesCreated++
				if proposed {
					result.Proposed++
				}
				created = append(created, v)
				break
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("auto-match failed",
			logx.String("event", "auto_match_failed"),
			logx.Err(err),
		)
		return domain.AutoMatchResult{}, err
	}

	if s.created != nil {
		s.created.Add(float64(result.MatchesCreated))
	}
	s.logger.Info("auto-match finished",
		logx.String("event", "auto_match_finished"),
		logx.Int("matches_created", result.MatchesCreated),
		logx.Int("proposed", result.Proposed),
		logx.Int("waiting_proposed", len(reissued)),
	)
	for _, v := range reissued {
		s.publish(ctx, domain.MatchEventType(v.Status), v)
	}
	for _, v := range created {
		s.publish(ctx, domain.EventMatchCreated, v)
	}
	return result, nil
}

func (s *Service) create(ctx context.Context, tx matchtx.Repository, o domain.Offer, r domain.DeliveryRequest) (domain.MatchView, bool, error) {
	m := domain.Match{
		OfferID:   o.ID,
		RequestID: r.ID,
		Status:    domain.MatchPending,
		Price:     o.Price,
	}
	if err := tx.InsertMatch(ctx, &m); err != nil {
		return domain.MatchView{}, false, err
	}
	v := domain.MatchView{
		Match:            m,
		OfferCarrierID:   o.CarrierID,
		RequestCarrierID: r.CarrierID,
		Offer:            o,
		Request:          r,
	}

	driver, err := tx.FindAvailableDriverForUpdate(ctx, o.CarrierID)
	if err != nil {
		return domain.MatchView{}, false, err
	}
	if driver == nil {
		return v, false, nil
	}
	v, err = match.Apply(ctx, tx, v, domain.ActionPropose, lifecycle.System(), lifecycle.Options{DriverID: &driver.ID})
	if err != nil {
		return domain.MatchView{}, false, err
	}
	v.DriverName = driver.Name
	v.VehicleNumber = driver.VehicleNumber
	return v, true, nil
}

func (s *Service) publish(ctx context.Context, typ domain.EventType, v domain.MatchView) {
	e := domain.Event{
		ID:         uuid.NewString(),
		Type:       typ,
		EntityID:   v.ID,
		Status:     string(v.Status),
		OccurredAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Error("publish match event",
			logx.String("event", "publish_failed"),
			logx.String("type", string(e.Type)),
			logx.Int64("match_id", v.ID),
			logx.Err(err),
		)
	}
}
