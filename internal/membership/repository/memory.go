package repository

import (
	"context"
	"sort"
	"sync"

	"tenant-core/internal/membership/domain"
)

// MemoryRepository is an in-process Repository for one dataset, used by tests and local runs
// without Postgres.
type MemoryRepository struct {
	mu     sync.RWMutex
	source domain.Source
	rows   []*domain.Row
}

// NewMemoryRepository returns an empty repository whose rows are tagged with source.
func NewMemoryRepository(source domain.Source) *MemoryRepository {
	return &MemoryRepository{source: source}
}

// Add stores a copy of row, tagged with the repository's source.
func (r *MemoryRepository) Add(row domain.Row) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.Source = r.source
	r.rows = append(r.rows, &row)
}

// ListRowsByUser returns copies of userID's rows ordered by creation time.
func (r *MemoryRepository) ListRowsByUser(ctx context.Context, userID string) ([]*domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Row, 0)
	for _, row := range r.rows {
		if row.UserID == userID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
