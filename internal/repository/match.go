package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/ports/matchtx"
)

// MatchRepo represents match repository.
type MatchRepo struct {
	db *pgxpool.Pool
}

// NewMatchRepo creates a new MatchRepo.
func NewMatchRepo(db *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{db: db}
}

const matchViewSelect = `
    SELECT m.id, m.tolerance_id, m.request_id, m.driver_id, m.status, m.price, m.rejection_reason,
           m.created_at, m.updated_at,
           t.id, t.carrier_id, tc.company_name, t.origin, t.destination, t.departure_time, t.arrival_time,
           t.container_type, t.container_count, t.price, t.is_empty_run, t.special_requirements, t.status, t.created_at,
           r.id, r.carrier_id, rc.company_name, r.origin, r.destination, r.pickup_time, r.delivery_time,
           r.container_type, r.container_count, r.budget, r.cargo_details, r.special_requirements, r.status, r.created_at,
           COALESCE(d.name, ''), COALESCE(d.vehicle_number, '')
    FROM matches m
    JOIN tolerances t ON t.id = m.tolerance_id
    JOIN carriers tc ON tc.id = t.carrier_id
    JOIN delivery_requests r ON r.id = m.request_id
    JOIN carriers rc ON rc.id = r.carrier_id
    LEFT JOIN drivers d ON d.id = m.driver_id
`

func scanMatchView(row scanner) (domain.MatchView, error) {
	var (
		v     domain.MatchView
		o     = &v.Offer
		q     = &v.Request
		cargo []byte
	)
	err := row.Scan(
		&v.ID, &v.OfferID, &v.RequestID, &v.DriverID, &v.Status, &v.Price, &v.RejectionReason,
		&v.CreatedAt, &v.UpdatedAt,
		&o.ID, &o.CarrierID, &o.CarrierName, &o.Origin, &o.Destination, &o.DepartureTime, &o.ArrivalTime,
		&o.ContainerType, &o.ContainerCount, &o.Price, &o.IsEmptyRun, &o.SpecialRequirements, &o.Status, &o.CreatedAt,
		&q.ID, &q.CarrierID, &q.CarrierName, &q.Origin, &q.Destination, &q.PickupTime, &q.DeliveryTime,
		&q.ContainerType, &q.ContainerCount, &q.Budget, &cargo, &q.SpecialRequirements, &q.Status, &q.CreatedAt,
		&v.DriverName, &v.VehicleNumber,
	)
	if len(cargo) > 0 {
		q.CargoDetails = cargo
	}
	v.OfferCarrierID = o.CarrierID
	v.RequestCarrierID = q.CarrierID
	return v, err
}

func getMatch(ctx context.Context, q querier, id int64) (*domain.MatchView, error) {
	v, err := scanMatchView(q.QueryRow(ctx, matchViewSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get match %d: %w", id, err)
	}
	return &v, nil
}

// Get returns a match with its offer and request, nil when absent.
func (r *MatchRepo) Get(ctx context.Context, id int64) (*domain.MatchView, error) {
	return getMatch(ctx, r.db, id)
}

// List returns matches matching f, newest first.
func (r *MatchRepo) List(ctx context.Context, f domain.MatchFilter) ([]domain.MatchView, error) {
	rows, err := r.db.Query(ctx, matchViewSelect+`
        WHERE ($1::BIGINT IS NULL OR t.carrier_id = $1 OR r.carrier_id = $1)
          AND ($2::BIGINT IS NULL OR m.driver_id = $2)
          AND ($3::TEXT = '' OR m.status = $3)
        ORDER BY m.created_at DESC, m.id DESC
    `, f.CarrierID, f.DriverID, f.Status)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return collect(rows, scanMatchView)
}

// Events returns the status history of a match, oldest first.
func (r *MatchRepo) Events(ctx context.Context, matchID int64) ([]domain.MatchEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, match_id, from_status, to_status, action, actor_user_id, reason, created_at
        FROM match_events
        WHERE match_id = $1
        ORDER BY id
    `, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	return collect(rows, func(row scanner) (domain.MatchEvent, error) {
		var e domain.MatchEvent
		err := row.Scan(&e.ID, &e.MatchID, &e.From, &e.To, &e.Action, &e.ActorUserID, &e.Reason, &e.At)
		return e, err
	})
}

// WithTx opens a transaction and executes fn within it.
func (r *MatchRepo) WithTx(ctx context.Context, fn func(tx matchtx.Repository) error) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&TxRepo{tx: tx})
	})
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ matchtx.Repository = (*TxRepo)(nil)

// GetMatch returns a match inside the transaction without locking it;
// concurrent writers are detected by CompareAndSetStatus.
func (r *TxRepo) GetMatch(ctx context.Context, id int64) (*domain.MatchView, error) {
	return getMatch(ctx, r.tx, id)
}

// CompareAndSetStatus - update the match only if it is still in the expected status.
func (r *TxRepo) CompareAndSetStatus(ctx context.Context, m domain.Match, expected domain.MatchStatus) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE matches
        SET status = $3, driver_id = $4, rejection_reason = $5, updated_at = now()
        WHERE id = $1 AND status = $2
    `, m.ID, string(expected), string(m.Status), m.DriverID, m.RejectionReason)
	if err != nil {
		if IsDuplicate(err) {
			return false, fmt.Errorf("%w: offer or request already has an active match", apperr.Conflict)
		}
		return false, fmt.Errorf("update match %d status: %w", m.ID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// InsertMatch - insert a new match. An active match on either side yields apperr.Conflict.
func (r *TxRepo) InsertMatch(ctx context.Context, m *domain.Match) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO matches (tolerance_id, request_id, driver_id, status, price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `, m.OfferID, m.RequestID, m.DriverID, string(m.Status), m.Price).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("%w: offer %d or request %d already matched", apperr.Conflict, m.OfferID, m.RequestID)
		}
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// InsertEvent - append a status history row.
func (r *TxRepo) InsertEvent(ctx context.Context, e *domain.MatchEvent) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO match_events (match_id, from_status, to_status, action, actor_user_id, reason)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `, e.MatchID, string(e.From), string(e.To), string(e.Action), e.ActorUserID, e.Reason).Scan(&e.ID, &e.At)
	if err != nil {
		return fmt.Errorf("insert match event: %w", err)
	}
	return nil
}

// SetOfferStatus - update offer status.
func (r *TxRepo) SetOfferStatus(ctx context.Context, id int64, status domain.OfferStatus) error {
	return r.setStatus(ctx, "tolerances", id, string(status))
}

// SetRequestStatus - update delivery request status.
func (r *TxRepo) SetRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	return r.setStatus(ctx, "delivery_requests", id, string(status))
}

// SetDriverStatus - update driver status.
func (r *TxRepo) SetDriverStatus(ctx context.Context, id int64, status domain.DriverStatus) error {
	ct, err := r.tx.Exec(ctx, `UPDATE drivers SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update driver %d status: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: driver %d", apperr.NotFound, id)
	}
	return nil
}

func (r *TxRepo) setStatus(ctx context.Context, table string, id int64, status string) error {
	ct, err := r.tx.Exec(ctx, `UPDATE `+table+` SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update %s %d status: %w", table, id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %d", apperr.NotFound, table, id)
	}
	return nil
}

// FindAvailableDriverForUpdate - lock the least loaded available driver of a carrier.
func (r *TxRepo) FindAvailableDriverForUpdate(ctx context.Context, carrierID int64) (*domain.Driver, error) {
	d, err := scanDriver(r.tx.QueryRow(ctx, `
        SELECT `+driverColumns+`
        FROM drivers d
        JOIN carriers c ON c.id = d.carrier_id
        WHERE d.carrier_id = $1 AND d.status = 'available' AND d.is_active
        ORDER BY
            (SELECT COUNT(*) FROM matches m WHERE m.driver_id = d.id) ASC,
            d.id ASC
        LIMIT 1
        FOR UPDATE OF d SKIP LOCKED
    `, carrierID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find available driver of carrier %d: %w", carrierID, err)
	}
	return &d, nil
}

// UnmatchedOffers - available offers without an active match, oldest first.
func (r *TxRepo) UnmatchedOffers(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT `+offerColumns+`
        FROM tolerances t JOIN carriers c ON c.id = t.carrier_id
        WHERE t.status = 'available'
          AND NOT EXISTS (SELECT 1 FROM matches m WHERE m.tolerance_id = t.id AND m.status <> 'rejected')
        ORDER BY t.created_at, t.id
    `)
	if err != nil {
		return nil, fmt.Errorf("list unmatched offers: %w", err)
	}
	return collect(rows, scanOffer)
}

// UnmatchedRequests - pending requests without an active match, oldest first.
func (r *TxRepo) UnmatchedRequests(ctx context.Context) ([]domain.DeliveryRequest, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT `+requestColumns+`
        FROM delivery_requests r JOIN carriers c ON c.id = r.carrier_id
        WHERE r.status = 'pending'
          AND NOT EXISTS (SELECT 1 FROM matches m WHERE m.request_id = r.id AND m.status <> 'rejected')
        ORDER BY r.created_at, r.id
    `)
	if err != nil {
		return nil, fmt.Errorf("list unmatched requests: %w", err)
	}
	return collect(rows, scanRequest)
}

// PairExists reports whether a match (in any status) already binds the pair.
func (r *TxRepo) PairExists(ctx context.Context, offerID, requestID int64) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM matches WHERE tolerance_id = $1 AND request_id = $2)
    `, offerID, requestID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check match pair: %w", err)
	}
	return exists, nil
}

// UnassignedPending - pending matches without a driver, oldest first, locked.
func (r *TxRepo) UnassignedPending(ctx context.Context) ([]domain.MatchView, error) {
	rows, err := r.tx.Query(ctx, matchViewSelect+`
        WHERE m.status = 'pending' AND m.driver_id IS NULL
        ORDER BY m.created_at, m.id
        FOR UPDATE OF m SKIP LOCKED
    `)
	if err != nil {
		return nil, fmt.Errorf("list unassigned pending matches: %w", err)
	}
	return collect(rows, scanMatchView)
}

// InProgressCount - in_progress matches of a driver, excluding one match.
func (r *TxRepo) InProgressCount(ctx context.Context, driverID, exceptMatchID int64) (int, error) {
	var n int
	err := r.tx.QueryRow(ctx, `
        SELECT COUNT(*) FROM matches
        WHERE driver_id = $1 AND status = 'in_progress' AND id <> $2
    `, driverID, exceptMatchID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count in-progress matches of driver %d: %w", driverID, err)
	}
	return n, nil
}
