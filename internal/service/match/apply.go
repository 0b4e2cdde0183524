package match

import (
	"context"
	"fmt"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/ports/matchtx"
)

// Apply runs one lifecycle action against m inside tx.
//
// The status change is a compare-and-set against the status m was read with,
// so a concurrent writer that got there first yields apperr.Conflict. Offer,
// request and driver statuses follow the match in the same transaction and a
// history row is written.
func Apply(
	ctx context.Context,
	tx matchtx.Repository,
	m domain.MatchView,
	action domain.MatchAction,
	actor lifecycle.Actor,
	opts lifecycle.Options,
) (domain.MatchView, error) {
	next, err := lifecycle.ApplyTransition(m, action, actor, opts)
	if err != nil {
		return m, err
	}

	ok, err := tx.CompareAndSetStatus(ctx, next.Match, m.Status)
	if err != nil {
		return m, err
	}
	if !ok {
		return m, fmt.Errorf("%w: match %d is no longer %s", apperr.Conflict, m.ID, m.Status)
	}

	if err := applySideEffects(ctx, tx, &next, m.DriverID); err != nil {
		return m, err
	}

	ev := &domain.MatchEvent{
		MatchID: m.ID,
		From:    m.Status,
		To:      next.Status,
		Action:  action,
		Reason:  next.RejectionReason,
	}
	if !actor.IsSystem() {
		uid := actor.UserID
		ev.ActorUserID = &uid
	}
	if err := tx.InsertEvent(ctx, ev); err != nil {
		return m, err
	}
	return next, nil
}

func applySideEffects(ctx context.Context, tx matchtx.Repository, m *domain.MatchView, prevDriver *int64) error {
	var (
		offer   domain.OfferStatus
		request domain.RequestStatus
		driver  domain.DriverStatus
	)
	driverID := m.DriverID
	switch m.Status {
	case domain.MatchAccepted:
		offer, request = domain.OfferMatched, domain.RequestMatched
	case domain.MatchRejected:
		offer, request = domain.OfferAvailable, domain.RequestPending
	case domain.MatchInProgress:
		request, driver = domain.RequestInTransit, domain.DriverBusy
	case domain.MatchCompleted:
		offer, request, driver = domain.OfferCompleted, domain.RequestCompleted, domain.DriverAvailable
	default:
		return nil
	}
	if driverID == nil {
		driverID = prevDriver
	}
	if driver == domain.DriverAvailable && driverID != nil {
		// still driving another match
		busy, err := tx.InProgressCount(ctx, *driverID, m.ID)
		if err != nil {
			return err
		}
		if busy > 0 {
			driver = ""
		}
	}

	if offer != "" {
		if err := tx.SetOfferStatus(ctx, m.OfferID, offer); err != nil {
			return err
		}
		m.Offer.Status = offer
	}
	if request != "" {
		if err := tx.SetRequestStatus(ctx, m.RequestID, request); err != nil {
			return err
		}
		m.Request.Status = request
	}
	if driver != "" && driverID != nil {
		if err := tx.SetDriverStatus(ctx, *driverID, driver); err != nil {
			return err
		}
	}
	return nil
}

// ProposeWaiting proposes every pending match that has no driver yet to an
// available driver of the offering carrier. Matches whose carrier still has no
// free driver stay pending. It returns the proposed matches.
func ProposeWaiting(ctx context.Context, tx matchtx.Repository) ([]domain.MatchView, error) {
	waiting, err := tx.UnassignedPending(ctx)
	if err != nil {
		return nil, err
	}
	var proposed []domain.MatchView
	for _, m := range waiting {
		driver, err := tx.FindAvailableDriverForUpdate(ctx, m.OfferCarrierID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			continue
		}
		v, err := Apply(ctx, tx, m, domain.ActionPropose, lifecycle.System(), lifecycle.Options{DriverID: &driver.ID})
		if err != nil {
			return nil, err
		}
		v.DriverName = driver.Name
		v.VehicleNumber = driver.VehicleNumber
		proposed = append(proposed, v)
	}
	return proposed, nil
}
