package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
)

// CarrierRepo represents carrier, driver and vehicle repository.
type CarrierRepo struct{ db *pgxpool.Pool }

// NewCarrierRepo creates a new CarrierRepo.
func NewCarrierRepo(db *pgxpool.Pool) *CarrierRepo { return &CarrierRepo{db: db} }

func scanCarrier(row scanner) (domain.Carrier, error) {
	var c domain.Carrier
	err := row.Scan(&c.ID, &c.UserID, &c.CompanyName, &c.BusinessLicense, &c.ContactPerson,
		&c.Address, &c.Phone, &c.Email, &c.IsActive, &c.CreatedAt)
	return c, err
}

// ListCarriers returns carriers ordered by name; activeOnly hides inactive ones.
func (r *CarrierRepo) ListCarriers(ctx context.Context, activeOnly bool) ([]domain.Carrier, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, user_id, company_name, business_license, contact_person, address, phone, email, is_active, created_at
        FROM carriers
        WHERE is_active OR NOT $1
        ORDER BY company_name, id
    `, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list carriers: %w", err)
	}
	return collect(rows, scanCarrier)
}

// CreateCarrier inserts a carrier without a login.
func (r *CarrierRepo) CreateCarrier(ctx context.Context, c *domain.Carrier) error {
	return insertCarrier(ctx, r.db, c)
}

func insertCarrier(ctx context.Context, q querier, c *domain.Carrier) error {
	err := q.QueryRow(ctx, `
        INSERT INTO carriers (user_id, company_name, business_license, contact_person, address, phone, email, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `, c.UserID, c.CompanyName, c.BusinessLicense, c.ContactPerson, c.Address, c.Phone, c.Email, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("%w: carrier already exists", apperr.Conflict)
		}
		return fmt.Errorf("insert carrier: %w", err)
	}
	return nil
}

const driverColumns = `d.id, d.user_id, d.carrier_id, c.company_name, d.name, d.license_number, d.vehicle_type,
       d.vehicle_number, d.status, d.latitude, d.longitude, d.is_active, d.created_at`

func scanDriver(row scanner) (domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(&d.ID, &d.UserID, &d.CarrierID, &d.CarrierName, &d.Name, &d.LicenseNumber, &d.VehicleType,
		&d.VehicleNumber, &d.Status, &d.Latitude, &d.Longitude, &d.IsActive, &d.CreatedAt)
	return d, err
}

// ListDrivers returns drivers, optionally only those of one carrier.
func (r *CarrierRepo) ListDrivers(ctx context.Context, carrierID *int64) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+driverColumns+`
        FROM drivers d
        JOIN carriers c ON c.id = d.carrier_id
        WHERE $1::BIGINT IS NULL OR d.carrier_id = $1
        ORDER BY d.created_at DESC, d.id DESC
    `, carrierID)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return collect(rows, scanDriver)
}

// CreateDriver inserts a driver without a login.
func (r *CarrierRepo) CreateDriver(ctx context.Context, d *domain.Driver) error {
	return insertDriver(ctx, r.db, d)
}

func insertDriver(ctx context.Context, q querier, d *domain.Driver) error {
	if d.Status == "" {
		d.Status = domain.DriverAvailable
	}
	err := q.QueryRow(ctx, `
        INSERT INTO drivers (user_id, carrier_id, name, license_number, vehicle_type, vehicle_number, status, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `, d.UserID, d.CarrierID, d.Name, d.LicenseNumber, d.VehicleType, d.VehicleNumber, string(d.Status), d.IsActive,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		switch {
		case IsForeignKey(err):
			return fmt.Errorf("%w: carrier %d does not exist", apperr.Invalid, d.CarrierID)
		case IsDuplicate(err):
			return fmt.Errorf("%w: driver already exists", apperr.Conflict)
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// UpdateDriverPosition stores the driver's last known position.
func (r *CarrierRepo) UpdateDriverPosition(ctx context.Context, driverID int64, lat, lng float64) error {
	return updateDriverPosition(ctx, r.db, driverID, lat, lng)
}

func updateDriverPosition(ctx context.Context, q querier, driverID int64, lat, lng float64) error {
	ct, err := q.Exec(ctx, `
        UPDATE drivers SET latitude = $2, longitude = $3, updated_at = now() WHERE id = $1
    `, driverID, lat, lng)
	if err != nil {
		return fmt.Errorf("update driver %d position: %w", driverID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: driver %d", apperr.NotFound, driverID)
	}
	return nil
}

func scanVehicle(row scanner) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(&v.ID, &v.CarrierID, &v.CarrierName, &v.VehicleNumber, &v.VehicleType, &v.Status,
		&v.Description, &v.IsActive, &v.CreatedAt)
	return v, err
}

// ListVehicles returns all vehicles with their carrier name.
func (r *CarrierRepo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, `
        SELECT v.id, v.carrier_id, c.company_name, v.vehicle_number, v.vehicle_type, v.status,
               v.description, v.is_active, v.created_at
        FROM vehicles v
        JOIN carriers c ON c.id = v.carrier_id
        ORDER BY v.created_at DESC, v.id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return collect(rows, scanVehicle)
}

// CreateVehicle inserts a vehicle. A duplicate number yields apperr.Conflict.
func (r *CarrierRepo) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if v.Status == "" {
		v.Status = domain.VehicleAvailable
	}
	err := r.db.QueryRow(ctx, `
        INSERT INTO vehicles (carrier_id, vehicle_number, vehicle_type, status, description, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `, v.CarrierID, v.VehicleNumber, v.VehicleType, string(v.Status), v.Description, v.IsActive,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		switch {
		case IsDuplicate(err):
			return fmt.Errorf("%w: vehicle %s already registered", apperr.Conflict, v.VehicleNumber)
		case IsForeignKey(err):
			return fmt.Errorf("%w: carrier %d does not exist", apperr.Invalid, v.CarrierID)
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}
