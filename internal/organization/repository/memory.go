package repository

import (
	"context"
	"errors"
	"sync"

	"tenant-core/internal/organization/domain"
)

// MemoryRepository is an in-process organization Repository for tests and local runs.
type MemoryRepository struct {
	mu   sync.RWMutex
	orgs map[string]domain.Org
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{orgs: make(map[string]domain.Org)}
}

func (r *MemoryRepository) GetOrganizationByID(ctx context.Context, id string) (*domain.Org, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orgs[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *MemoryRepository) ListOrganizationsByIDs(ctx context.Context, ids []string) (map[string]*domain.Org, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*domain.Org, len(ids))
	for _, id := range ids {
		if o, ok := r.orgs[id]; ok {
			out[id] = &o
		}
	}
	return out, nil
}

func (r *MemoryRepository) CreateOrganization(ctx context.Context, o *domain.Org) error {
	if err := o.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orgs[o.ID]; ok {
		return errors.New("organization already exists")
	}
	r.orgs[o.ID] = *o
	return nil
}
