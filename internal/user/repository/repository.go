package repository

import (
	"context"

	"tenant-core/internal/user/domain"
)

// Repository defines read access to the identity read model plus the insert used by seeding.
type Repository interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) error
}
