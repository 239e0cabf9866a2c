package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tenant-core/internal/audit/domain"
)

type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository returns an audit log repository over the user dataset.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the entry. The entry must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.AuditLog) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO audit_logs (id, org_id, user_id, action, resource, ip, metadata, created_at)
		 VALUES (:id, :org_id, :user_id, :action, :resource, :ip, :metadata, :created_at)`, a)
	return err
}

// ListByOrg returns audit logs for orgID, newest first, paginated by limit and offset.
func (r *PostgresRepository) ListByOrg(ctx context.Context, orgID string, limit, offset int) ([]*domain.AuditLog, error) {
	var out []*domain.AuditLog
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, org_id, user_id, action, resource, ip, metadata, created_at
		 FROM audit_logs WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	return out, nil
}
