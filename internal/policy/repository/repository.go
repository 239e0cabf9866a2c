package repository

import (
	"context"

	"tenant-core/internal/policy/domain"
)

// Repository defines persistence for org access policies.
type Repository interface {
	ListEnabledByOrg(ctx context.Context, orgID string) ([]*domain.Policy, error)
	Create(ctx context.Context, p *domain.Policy) error
}
