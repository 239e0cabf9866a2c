package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tenant-core/internal/organization/domain"
)

const orgColumns = `id, name, type, logo_image, description, started_at, created_at`

type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository returns an organization repository backed by the user dataset.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type orgRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Type        string         `db:"type"`
	LogoImage   sql.NullString `db:"logo_image"`
	Description sql.NullString `db:"description"`
	StartedAt   sql.NullTime   `db:"started_at"`
	CreatedAt   time.Time      `db:"created_at"`
}

// GetOrganizationByID returns the organization for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetOrganizationByID(ctx context.Context, id string) (*domain.Org, error) {
	var o orgRow
	if err := r.db.GetContext(ctx, &o, `SELECT `+orgColumns+` FROM organizations WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o.toDomain(), nil
}

// ListOrganizationsByIDs loads all requested organizations with one query.
func (r *PostgresRepository) ListOrganizationsByIDs(ctx context.Context, ids []string) (map[string]*domain.Org, error) {
	out := make(map[string]*domain.Org, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT `+orgColumns+` FROM organizations WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	var list []orgRow
	if err := r.db.SelectContext(ctx, &list, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for i := range list {
		o := list[i].toDomain()
		out[o.ID] = o
	}
	return out, nil
}

// CreateOrganization persists the organization. The organization must have ID set.
func (r *PostgresRepository) CreateOrganization(ctx context.Context, o *domain.Org) error {
	if err := o.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, type, logo_image, description, started_at, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)`,
		o.ID, o.Name, string(o.Type), o.LogoImage, o.Description, o.StartedAt, o.CreatedAt)
	return err
}

func (o *orgRow) toDomain() *domain.Org {
	out := &domain.Org{
		ID: o.ID, Name: o.Name, Type: domain.ParseOrgType(o.Type),
		LogoImage: o.LogoImage.String, Description: o.Description.String,
		CreatedAt: o.CreatedAt,
	}
	if o.StartedAt.Valid {
		t := o.StartedAt.Time
		out.StartedAt = &t
	}
	return out
}
