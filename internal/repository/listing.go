package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
)

// ListingRepo represents the offer (tolerance) and delivery request repository.
type ListingRepo struct{ db *pgxpool.Pool }

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(db *pgxpool.Pool) *ListingRepo { return &ListingRepo{db: db} }

const offerColumns = `t.id, t.carrier_id, c.company_name, t.origin, t.destination, t.departure_time, t.arrival_time,
       t.container_type, t.container_count, t.price, t.is_empty_run, t.special_requirements, t.status, t.created_at`

func scanOffer(row scanner) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.CarrierID, &o.CarrierName, &o.Origin, &o.Destination, &o.DepartureTime, &o.ArrivalTime,
		&o.ContainerType, &o.ContainerCount, &o.Price, &o.IsEmptyRun, &o.SpecialRequirements, &o.Status, &o.CreatedAt)
	return o, err
}

const requestColumns = `r.id, r.carrier_id, c.company_name, r.origin, r.destination, r.pickup_time, r.delivery_time,
       r.container_type, r.container_count, r.budget, r.cargo_details, r.special_requirements, r.status, r.created_at`

func scanRequest(row scanner) (domain.DeliveryRequest, error) {
	var (
		r     domain.DeliveryRequest
		cargo []byte
	)
	err := row.Scan(&r.ID, &r.CarrierID, &r.CarrierName, &r.Origin, &r.Destination, &r.PickupTime, &r.DeliveryTime,
		&r.ContainerType, &r.ContainerCount, &r.Budget, &cargo, &r.SpecialRequirements, &r.Status, &r.CreatedAt)
	if len(cargo) > 0 {
		r.CargoDetails = json.RawMessage(cargo)
	}
	return r, err
}

// cargoArg converts cargo details into a jsonb argument, NULL when empty.
func cargoArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

// CreateOffer inserts an offer and fills its id, status and creation time.
func (r *ListingRepo) CreateOffer(ctx context.Context, o *domain.Offer) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO tolerances (carrier_id, origin, destination, departure_time, arrival_time, container_type,
                                container_count, price, is_empty_run, special_requirements)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, status, created_at
    `, o.CarrierID, o.Origin, o.Destination, o.DepartureTime, o.ArrivalTime, o.ContainerType,
		o.ContainerCount, o.Price, o.IsEmptyRun, o.SpecialRequirements,
	).Scan(&o.ID, &o.Status, &o.CreatedAt)
	if err != nil {
		if IsForeignKey(err) || IsCheckViolation(err) {
			return fmt.Errorf("%w: %v", apperr.Invalid, err)
		}
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// CreateRequest inserts a delivery request and fills its id, status and creation time.
func (r *ListingRepo) CreateRequest(ctx context.Context, req *domain.DeliveryRequest) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO delivery_requests (carrier_id, origin, destination, pickup_time, delivery_time, container_type,
                                       container_count, budget, cargo_details, special_requirements)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, status, created_at
    `, req.CarrierID, req.Origin, req.Destination, req.PickupTime, req.DeliveryTime, req.ContainerType,
		req.ContainerCount, req.Budget, cargoArg(req.CargoDetails), req.SpecialRequirements,
	).Scan(&req.ID, &req.Status, &req.CreatedAt)
	if err != nil {
		if IsForeignKey(err) || IsCheckViolation(err) {
			return fmt.Errorf("%w: %v", apperr.Invalid, err)
		}
		return fmt.Errorf("insert delivery request: %w", err)
	}
	return nil
}

// GetOffer returns an offer by id, nil when absent.
func (r *ListingRepo) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	o, err := scanOffer(r.db.QueryRow(ctx, `
        SELECT `+offerColumns+`
        FROM tolerances t JOIN carriers c ON c.id = t.carrier_id
        WHERE t.id = $1
    `, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer %d: %w", id, err)
	}
	return &o, nil
}

// GetRequest returns a delivery request by id, nil when absent.
func (r *ListingRepo) GetRequest(ctx context.Context, id int64) (*domain.DeliveryRequest, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, `
        SELECT `+requestColumns+`
        FROM delivery_requests r JOIN carriers c ON c.id = r.carrier_id
        WHERE r.id = $1
    `, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery request %d: %w", id, err)
	}
	return &req, nil
}

// ListOffers returns offers matching f, newest first.
func (r *ListingRepo) ListOffers(ctx context.Context, f domain.ListingFilter) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+offerColumns+`
        FROM tolerances t JOIN carriers c ON c.id = t.carrier_id
        WHERE ($1::BIGINT IS NULL OR t.carrier_id = $1)
          AND ($2::TEXT = '' OR t.status = $2)
        ORDER BY t.created_at DESC, t.id DESC
    `, f.CarrierID, f.Status)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return collect(rows, scanOffer)
}

// ListRequests returns delivery requests matching f, newest first.
func (r *ListingRepo) ListRequests(ctx context.Context, f domain.ListingFilter) ([]domain.DeliveryRequest, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+requestColumns+`
        FROM delivery_requests r JOIN carriers c ON c.id = r.carrier_id
        WHERE ($1::BIGINT IS NULL OR r.carrier_id = $1)
          AND ($2::TEXT = '' OR r.status = $2)
        ORDER BY r.created_at DESC, r.id DESC
    `, f.CarrierID, f.Status)
	if err != nil {
		return nil, fmt.Errorf("list delivery requests: %w", err)
	}
	return collect(rows, scanRequest)
}
