package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tenant-core/internal/user/domain"
)

type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository returns a user repository backed by the user dataset.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type userRow struct {
	ID         string         `db:"id"`
	Email      string         `db:"email"`
	Name       string         `db:"name"`
	Image      sql.NullString `db:"image"`
	GlobalRole string         `db:"global_role"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// GetUserByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var u userRow
	err := r.db.GetContext(ctx, &u,
		`SELECT id, email, name, image, global_role, created_at, updated_at FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u.toDomain(), nil
}

// CreateUser persists the user. The user must have ID set.
func (r *PostgresRepository) CreateUser(ctx context.Context, u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, image, global_role, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.Image, string(u.GlobalRole), u.CreatedAt, u.UpdatedAt)
	return err
}

func (u *userRow) toDomain() *domain.User {
	return &domain.User{
		ID: u.ID, Email: u.Email, Name: u.Name, Image: u.Image.String,
		GlobalRole: domain.ParseGlobalRole(u.GlobalRole),
		CreatedAt:  u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
}
