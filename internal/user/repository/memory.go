package repository

import (
	"context"
	"errors"
	"sync"

	"tenant-core/internal/user/domain"
)

// MemoryRepository is an in-process user Repository for tests and local runs.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]domain.User)}
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryRepository) CreateUser(ctx context.Context, u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return errors.New("user already exists")
	}
	r.users[u.ID] = *u
	return nil
}
