package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"freight-matching-platform/internal/domain"
)

// StatsRepo represents the read-only aggregation repository.
type StatsRepo struct{ db *pgxpool.Pool }

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *pgxpool.Pool) *StatsRepo { return &StatsRepo{db: db} }

// AdminDashboard counts platform-wide totals.
func (r *StatsRepo) AdminDashboard(ctx context.Context) (domain.AdminDashboard, error) {
	var d domain.AdminDashboard
	err := r.db.QueryRow(ctx, `
        SELECT (SELECT COUNT(*) FROM users),
               (SELECT COUNT(*) FROM tolerances WHERE status = 'available'),
               (SELECT COUNT(*) FROM delivery_requests WHERE status = 'pending'),
               (SELECT COUNT(*) FROM matches WHERE status = 'completed')
    `).Scan(&d.TotalUsers, &d.ActiveTolerances, &d.PendingRequests, &d.CompletedMatches)
	if err != nil {
		return d, fmt.Errorf("admin dashboard: %w", err)
	}
	return d, nil
}

// CarrierDashboard counts what a carrier owns or takes part in.
func (r *StatsRepo) CarrierDashboard(ctx context.Context, carrierID int64) (domain.CarrierDashboard, error) {
	var d domain.CarrierDashboard
	err := r.db.QueryRow(ctx, `
        SELECT (SELECT COUNT(*) FROM tolerances WHERE carrier_id = $1),
               (SELECT COUNT(*) FROM delivery_requests WHERE carrier_id = $1),
               (SELECT COUNT(*)
                  FROM matches m
                  JOIN tolerances t ON t.id = m.tolerance_id
                  JOIN delivery_requests r ON r.id = m.request_id
                 WHERE t.carrier_id = $1 OR r.carrier_id = $1)
    `, carrierID).Scan(&d.MyTolerances, &d.MyRequests, &d.MyMatches)
	if err != nil {
		return d, fmt.Errorf("carrier %d dashboard: %w", carrierID, err)
	}
	return d, nil
}

// DriverDashboard counts a driver's assignments and reports the status of its most
// recent active match, MatchStatusNone when there is none.
func (r *StatsRepo) DriverDashboard(ctx context.Context, driverID int64) (domain.DriverDashboard, error) {
	var d domain.DriverDashboard
	err := r.db.QueryRow(ctx, `
        SELECT (SELECT COUNT(*) FROM matches WHERE driver_id = $1),
               (SELECT COUNT(*) FROM matches WHERE driver_id = $1 AND status = 'completed'),
               COALESCE((SELECT status FROM matches
                          WHERE driver_id = $1 AND status IN ('proposed', 'accepted', 'in_progress')
                          ORDER BY updated_at DESC, id DESC
                          LIMIT 1), $2)
    `, driverID, string(domain.MatchStatusNone)).Scan(&d.AssignedMatches, &d.CompletedMatches, &d.CurrentStatus)
	if err != nil {
		return d, fmt.Errorf("driver %d dashboard: %w", driverID, err)
	}
	return d, nil
}

// Statistics builds the admin statistics report. since is the start of the monthly window.
func (r *StatsRepo) Statistics(ctx context.Context, since time.Time, topN int) (domain.Statistics, error) {
	var s domain.Statistics
	o := &s.Overview
	err := r.db.QueryRow(ctx, `
        SELECT (SELECT COUNT(*) FROM users),
               (SELECT COUNT(*) FROM carriers),
               (SELECT COUNT(*) FROM drivers),
               (SELECT COUNT(*) FROM tolerances WHERE status = 'available'),
               (SELECT COUNT(*) FROM delivery_requests WHERE status = 'pending'),
               (SELECT COUNT(*) FROM matches),
               (SELECT COUNT(*) FROM matches WHERE status = 'completed'),
               (SELECT COUNT(*) FROM tolerances WHERE created_at >= $1),
               (SELECT COUNT(*) FROM delivery_requests WHERE created_at >= $1),
               (SELECT COUNT(*) FROM matches WHERE created_at >= $1)
    `, since).Scan(&o.TotalUsers, &o.TotalCarriers, &o.TotalDrivers, &o.ActiveTolerances, &o.PendingRequests,
		&o.TotalMatches, &o.CompletedMatches, &s.Monthly.Tolerances, &s.Monthly.Requests, &s.Monthly.Matches)
	if err != nil {
		return s, fmt.Errorf("statistics overview: %w", err)
	}

	if s.OfferStatuses, err = r.breakdown(ctx, "tolerances"); err != nil {
		return s, err
	}
	if s.RequestStatuses, err = r.breakdown(ctx, "delivery_requests"); err != nil {
		return s, err
	}
	if s.MatchStatuses, err = r.breakdown(ctx, "matches"); err != nil {
		return s, err
	}

	rows, err := r.db.Query(ctx, `
        SELECT c.company_name, COUNT(m.id) AS match_count
        FROM carriers c
        JOIN tolerances t ON t.carrier_id = c.id
        JOIN matches m ON m.tolerance_id = t.id
        GROUP BY c.id, c.company_name
        ORDER BY match_count DESC, c.company_name
        LIMIT $1
    `, topN)
	if err != nil {
		return s, fmt.Errorf("top carriers: %w", err)
	}
	s.TopCarriers, err = collect(rows, func(row scanner) (domain.CarrierRank, error) {
		var cr domain.CarrierRank
		err := row.Scan(&cr.Name, &cr.Matches)
		return cr, err
	})
	if err != nil {
		return s, fmt.Errorf("top carriers: %w", err)
	}
	return s, nil
}

func (r *StatsRepo) breakdown(ctx context.Context, table string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM `+table+` GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%s status breakdown: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}
