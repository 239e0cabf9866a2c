package repository

import (
	"context"

	"tenant-core/internal/organization/domain"
)

// Repository defines read access to organizations plus the insert used by seeding.
type Repository interface {
	GetOrganizationByID(ctx context.Context, id string) (*domain.Org, error)
	// ListOrganizationsByIDs returns the organizations found among ids, keyed by id. Missing ids are absent.
	ListOrganizationsByIDs(ctx context.Context, ids []string) (map[string]*domain.Org, error)
	CreateOrganization(ctx context.Context, o *domain.Org) error
}
