package repository

import (
	"context"

	"tenant-core/internal/audit/domain"
)

// Repository defines persistence for audit logs.
type Repository interface {
	Create(ctx context.Context, a *domain.AuditLog) error
	// ListByOrg returns the newest entries first.
	ListByOrg(ctx context.Context, orgID string, limit, offset int) ([]*domain.AuditLog, error)
}
