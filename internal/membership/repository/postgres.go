package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"tenant-core/internal/membership/domain"
	orgdomain "tenant-core/internal/organization/domain"
)

const listRowsByUserSQL = `
SELECT m.id, m.user_id, m.org_id, m.role, m.status, m.created_at, m.updated_at,
       o.name AS org_name, o.type AS org_type, o.logo_image AS org_logo_image
FROM memberships m
JOIN organizations o ON o.id = m.org_id
WHERE m.user_id = $1
ORDER BY m.created_at, m.id`

// PostgresRepository reads memberships from the user dataset, where organizations live alongside
// memberships and the display fields come from a join.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository returns a membership repository backed by the user dataset.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type membershipRow struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	OrgID        string         `db:"org_id"`
	Role         string         `db:"role"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	OrgName      string         `db:"org_name"`
	OrgType      string         `db:"org_type"`
	OrgLogoImage sql.NullString `db:"org_logo_image"`
}

// ListRowsByUser returns every membership row of userID in creation order, whatever its status.
// Rows with an unrecognized role are skipped.
func (r *PostgresRepository) ListRowsByUser(ctx context.Context, userID string) ([]*domain.Row, error) {
	var list []membershipRow
	if err := r.db.SelectContext(ctx, &list, listRowsByUserSQL, userID); err != nil {
		return nil, err
	}
	out := make([]*domain.Row, 0, len(list))
	for i := range list {
		if row := list[i].toDomain(domain.SourceUser); row != nil {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *membershipRow) toDomain(src domain.Source) *domain.Row {
	role, ok := domain.ParseRole(m.Role)
	if !ok {
		return nil
	}
	return &domain.Row{
		Membership: domain.Membership{
			ID: m.ID, UserID: m.UserID, OrgID: m.OrgID,
			Role: role, Status: domain.ParseStatus(m.Status), Source: src,
			CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
		},
		OrgName:      m.OrgName,
		OrgType:      orgdomain.ParseOrgType(m.OrgType),
		OrgLogoImage: m.OrgLogoImage.String,
	}
}

// CreateMembership persists the membership to the user dataset. The membership must have ID set.
// Used by the seed command; organization management owns writes in production.
func (r *PostgresRepository) CreateMembership(ctx context.Context, m *domain.Membership) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memberships (id, user_id, org_id, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.UserID, m.OrgID, string(m.Role), string(m.Status), m.CreatedAt, m.UpdatedAt)
	return err
}
