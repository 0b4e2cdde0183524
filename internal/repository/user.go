package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
)

const userColumns = `id, username, email, password_hash, full_name, role, phone, is_active, created_at`

// UserRepo represents user repository.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

func scanUser(row scanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.Phone, &u.IsActive, &u.CreatedAt)
	return u, err
}

// GetByUsername returns a user by username, nil when absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &u, nil
}

// Get returns a user by id, nil when absent.
func (r *UserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// List returns all users, newest first.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return collect(rows, scanUser)
}

// Profile returns the carrier and driver ids linked to a user (0 when absent).
func (r *UserRepo) Profile(ctx context.Context, userID int64) (carrierID, driverID int64, err error) {
	err = r.db.QueryRow(ctx, `
        SELECT COALESCE((SELECT id FROM carriers WHERE user_id = $1), 0),
               COALESCE((SELECT id FROM drivers WHERE user_id = $1), 0)
    `, userID).Scan(&carrierID, &driverID)
	if err != nil {
		return 0, 0, fmt.Errorf("profile of user %d: %w", userID, err)
	}
	return carrierID, driverID, nil
}

// Register creates a user together with its carrier or driver profile.
// Duplicate username/email yields apperr.Conflict, an unknown carrier apperr.Invalid.
func (r *UserRepo) Register(ctx context.Context, u *domain.User, carrier *domain.Carrier, driver *domain.Driver) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            INSERT INTO users (username, email, password_hash, full_name, role, phone, is_active)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id, created_at
        `, u.Username, u.Email, u.PasswordHash, u.FullName, string(u.Role), u.Phone, u.IsActive).Scan(&u.ID, &u.CreatedAt)
		if err != nil {
			if IsDuplicate(err) {
				return fmt.Errorf("%w: username or email already taken", apperr.Conflict)
			}
			return fmt.Errorf("insert user: %w", err)
		}

		if carrier != nil {
			carrier.UserID = &u.ID
			if err := insertCarrier(ctx, tx, carrier); err != nil {
				return err
			}
		}
		if driver != nil {
			driver.UserID = &u.ID
			if err := insertDriver(ctx, tx, driver); err != nil {
				return err
			}
		}
		return nil
	})
}
