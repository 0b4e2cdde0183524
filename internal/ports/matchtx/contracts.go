package matchtx

import (
	"context"

	"freight-matching-platform/internal/domain"
)

// Repository is the set of match operations that run inside one transaction.
type Repository interface {
	GetMatch(ctx context.Context, id int64) (*domain.MatchView, error)
	// CompareAndSetStatus moves the match from expected to m.Status and stores
	// m.DriverID and m.RejectionReason. It reports false when the stored status
	// is no longer expected.
	CompareAndSetStatus(ctx context.Context, m domain.Match, expected domain.MatchStatus) (bool, error)
	InsertMatch(ctx context.Context, m *domain.Match) error
	InsertEvent(ctx context.Context, e *domain.MatchEvent) error
	SetOfferStatus(ctx context.Context, id int64, status domain.OfferStatus) error
	SetRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	SetDriverStatus(ctx context.Context, id int64, status domain.DriverStatus) error
	// FindAvailableDriverForUpdate locks an available driver of the carrier, nil when none.
	FindAvailableDriverForUpdate(ctx context.Context, carrierID int64) (*domain.Driver, error)
	// UnmatchedOffers returns available offers with no active match.
	UnmatchedOffers(ctx context.Context) ([]domain.Offer, error)
	// UnmatchedRequests returns pending requests with no active match.
	UnmatchedRequests(ctx context.Context) ([]domain.DeliveryRequest, error)
	PairExists(ctx context.Context, offerID, requestID int64) (bool, error)
	// UnassignedPending locks pending matches that have no driver yet, oldest first.
	UnassignedPending(ctx context.Context) ([]domain.MatchView, error)
	// InProgressCount counts the driver's in_progress matches other than exceptMatchID.
	InProgressCount(ctx context.Context, driverID, exceptMatchID int64) (int, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
