package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/ports/eventbus"
)

// Service manages capacity offers and delivery requests.
type Service struct {
	repo             listingRepository
	carriers         carrierRepository
	publisher        eventbus.Publisher
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a listing Service.
func NewService(
	r listingRepository,
	carriers carrierRepository,
	publisher eventbus.Publisher,
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
		carriers:         carriers,
		publisher:        publisher,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func ownCarrier(actor lifecycle.Actor, kind lifecycle.EntityKind) (int64, error) {
	if err := lifecycle.Authorize(actor, lifecycle.Entity{Kind: kind}, lifecycle.ActionCreate); err != nil {
		return 0, err
	}
	if actor.CarrierID <= 0 {
		return 0, fmt.Errorf("%w: no carrier profile for user %d", apperr.Unauthorized, actor.UserID)
	}
	return actor.CarrierID, nil
}

// CreateOffer publishes spare capacity of the actor's carrier.
func (s *Service) CreateOffer(ctx context.Context, actor lifecycle.Actor, o domain.Offer) (domain.Offer, error) {
	carrierID, err := ownCarrier(actor, lifecycle.KindOffer)
	if err != nil {
		return domain.Offer{}, err
	}
	if err := validateOffer(&o); err != nil {
		return domain.Offer{}, err
	}
	o.CarrierID = carrierID
	o.Status = domain.OfferAvailable

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.CreateOffer(ctx, &o); err != nil {
		return domain.Offer{}, err
	}

	s.logger.Info("offer created",
		logx.String("event", "offer_created"),
		logx.Int64("offer_id", o.ID),
		logx.Int64("carrier_id", o.CarrierID),
	)
	s.publish(ctx, domain.EventOfferCreated, o.ID, string(o.Status), actor)
	return o, nil
}

// CreateRequest posts a transport need of the actor's carrier.
func (s *Service) CreateRequest(ctx context.Context, actor lifecycle.Actor, r domain.DeliveryRequest) (domain.DeliveryRequest, error) {
	carrierID, err := ownCarrier(actor, lifecycle.KindRequest)
	if err != nil {
		return domain.DeliveryRequest{}, err
	}
	if err := validateRequest(&r); err != nil {
		return domain.DeliveryRequest{}, err
	}
	r.CarrierID = carrierID
	r.Status = domain.RequestPending

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.CreateRequest(ctx, &r); err != nil {
		return domain.DeliveryRequest{}, err
	}

	s.logger.Info("delivery request created",
		logx.String("event", "request_created"),
		logx.Int64("request_id", r.ID),
		logx.Int64("carrier_id", r.CarrierID),
	)
	s.publish(ctx, domain.EventRequestCreated, r.ID, string(r.Status), actor)
	return r, nil
}

// listingFilter scopes a listing query to what actor may see. Drivers only
// see listings still open for matching.
func listingFilter(actor lifecycle.Actor, status, open string) (domain.ListingFilter, error) {
	f := domain.ListingFilter{Status: status}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleCarrier:
		id := actor.CarrierID
		f.CarrierID = &id
	case domain.RoleDriver:
		f.Status = open
	default:
		return f, apperr.Unauthorized
	}
	return f, nil
}

// ListOffers returns the offers visible to actor.
func (s *Service) ListOffers(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.Offer, error) {
	if status != "" && !domain.OfferStatus(status).Valid() {
		return nil, invalid("unknown offer status %q", status)
	}
	f, err := listingFilter(actor, status, string(domain.OfferAvailable))
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOffers(ctx, f)
}

// ListRequests returns the delivery requests visible to actor.
func (s *Service) ListRequests(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.DeliveryRequest, error) {
	if status != "" && !domain.RequestStatus(status).Valid() {
		return nil, invalid("unknown request status %q", status)
	}
	f, err := listingFilter(actor, status, string(domain.RequestPending))
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListRequests(ctx, f)
}

// ListCarriers returns active carriers. Drivers pick one when they sign up.
func (s *Service) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.carriers.ListCarriers(ctx, true)
}

func (s *Service) publish(ctx context.Context, typ domain.EventType, id int64, status string, actor lifecycle.Actor) {
	e := domain.Event{
		ID:          uuid.NewString(),
		Type:        typ,
		EntityID:    id,
		Status:      status,
		ActorUserID: actor.UserID,
		OccurredAt:  s.now(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Error("publish listing event",
			logx.String("event", "publish_failed"),
			logx.String("type", string(typ)),
			logx.Int64("entity_id", id),
			logx.Err(err),
		)
	}
}
