package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tenant-core/internal/policy/domain"
)

// AccessPolicy is the gorm model for the feature dataset's access_policies table.
type AccessPolicy struct {
	ID        string `gorm:"primaryKey"`
	OrgID     string `gorm:"index"`
	Rules     string
	Enabled   bool
	CreatedAt time.Time
}

func (AccessPolicy) TableName() string { return "access_policies" }

type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository returns a policy repository backed by the feature dataset.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ListEnabledByOrg returns the enabled policies of orgID, oldest first.
func (r *GormRepository) ListEnabledByOrg(ctx context.Context, orgID string) ([]*domain.Policy, error) {
	var list []AccessPolicy
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND enabled", orgID).
		Order("created_at").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Policy, len(list))
	for i := range list {
		p := list[i]
		out[i] = &domain.Policy{ID: p.ID, OrgID: p.OrgID, Rules: p.Rules, Enabled: p.Enabled, CreatedAt: p.CreatedAt}
	}
	return out, nil
}

// Create persists the policy. The policy must have ID set.
func (r *GormRepository) Create(ctx context.Context, p *domain.Policy) error {
	return r.db.WithContext(ctx).Create(&AccessPolicy{
		ID: p.ID, OrgID: p.OrgID, Rules: p.Rules, Enabled: p.Enabled, CreatedAt: p.CreatedAt,
	}).Error
}
