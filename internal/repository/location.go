package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-matching-platform/internal/domain"
)

// LocationRepo represents the driver location repository.
type LocationRepo struct{ db *pgxpool.Pool }

// NewLocationRepo creates a new LocationRepo.
func NewLocationRepo(db *pgxpool.Pool) *LocationRepo { return &LocationRepo{db: db} }

// Record stores the driver's current position and, when p.MatchID is set,
// appends the point to the match path in the same transaction.
func (r *LocationRepo) Record(ctx context.Context, p *domain.LocationPoint) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := updateDriverPosition(ctx, tx, p.DriverID, p.Latitude, p.Longitude); err != nil {
			return err
		}
		if p.MatchID == 0 {
			return nil
		}
		err := tx.QueryRow(ctx, `
            INSERT INTO location_paths (match_id, driver_id, latitude, longitude, status, notes)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING created_at
        `, p.MatchID, p.DriverID, p.Latitude, p.Longitude, p.Status, p.Notes).Scan(&p.Timestamp)
		if err != nil {
			return fmt.Errorf("append location of match %d: %w", p.MatchID, err)
		}
		return nil
	})
}

// Path returns the recorded points of a match in time order.
func (r *LocationRepo) Path(ctx context.Context, matchID int64) ([]domain.LocationPoint, error) {
	rows, err := r.db.Query(ctx, `
        SELECT match_id, driver_id, latitude, longitude, status, notes, created_at
        FROM location_paths
        WHERE match_id = $1
        ORDER BY created_at, id
    `, matchID)
	if err != nil {
		return nil, fmt.Errorf("match %d path: %w", matchID, err)
	}
	return collect(rows, func(row scanner) (domain.LocationPoint, error) {
		var p domain.LocationPoint
		err := row.Scan(&p.MatchID, &p.DriverID, &p.Latitude, &p.Longitude, &p.Status, &p.Notes, &p.Timestamp)
		return p, err
	})
}
