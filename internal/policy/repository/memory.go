package repository

import (
	"context"
	"sync"

	"tenant-core/internal/policy/domain"
)

// MemoryRepository is an in-process policy Repository for tests and local runs.
type MemoryRepository struct {
	mu       sync.RWMutex
	policies []domain.Policy
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) ListEnabledByOrg(ctx context.Context, orgID string) ([]*domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Policy
	for _, p := range r.policies {
		if p.OrgID == orgID && p.Enabled {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, p *domain.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies = append(r.policies, *p)
	return nil
}
