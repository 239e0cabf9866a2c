package repository

import (
	"context"
	"sort"
	"sync"

	"tenant-core/internal/audit/domain"
)

// MemoryRepository keeps audit logs in memory; used by tests and by the server when no user
// dataset is configured.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, a *domain.AuditLog) error {
	cp := *a
	r.mu.Lock()
	r.entries = append(r.entries, &cp)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) ListByOrg(_ context.Context, orgID string, limit, offset int) ([]*domain.AuditLog, error) {
	r.mu.Lock()
	var out []*domain.AuditLog
	for _, e := range r.entries {
		if e.OrgID == orgID {
			cp := *e
			out = append(out, &cp)
		}
	}
	r.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
