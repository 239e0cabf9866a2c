package repository

import (
	"context"

	"tenant-core/internal/membership/domain"
)

// Repository reads membership rows, joined with organization display fields, from one dataset.
// Implementations return rows in creation order and an empty slice (not an error) when the user
// has no memberships. Errors are returned only for dataset failures.
type Repository interface {
	ListRowsByUser(ctx context.Context, userID string) ([]*domain.Row, error)
}
