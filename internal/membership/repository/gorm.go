package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tenant-core/internal/membership/domain"
	orgdomain "tenant-core/internal/organization/domain"
)

// OrgMembership is the gorm model for the feature dataset's org_memberships table.
// Organization display fields are denormalized onto each row.
type OrgMembership struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"index"`
	OrgID        string
	OrgName      string
	OrgType      string
	OrgLogoImage *string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName pins the table name; the feature dataset predates gorm's pluralization.
func (OrgMembership) TableName() string { return "org_memberships" }

// GormRepository reads memberships from the feature dataset.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository returns a membership repository backed by the feature dataset.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ListRowsByUser returns every membership row of userID in creation order, whatever its status.
// Rows with an unrecognized role are skipped.
func (r *GormRepository) ListRowsByUser(ctx context.Context, userID string) ([]*domain.Row, error) {
	var list []OrgMembership
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Row, 0, len(list))
	for i := range list {
		if row := list[i].toDomain(); row != nil {
			out = append(out, row)
		}
	}
	return out, nil
}

// Create inserts m. Used by the seed command; feature modules own writes in production.
func (r *GormRepository) Create(ctx context.Context, m *OrgMembership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (m *OrgMembership) toDomain() *domain.Row {
	role, ok := domain.ParseRole(m.Role)
	if !ok {
		return nil
	}
	logo := ""
	if m.OrgLogoImage != nil {
		logo = *m.OrgLogoImage
	}
	return &domain.Row{
		Membership: domain.Membership{
			ID: m.ID, UserID: m.UserID, OrgID: m.OrgID,
			Role: role, Status: domain.ParseStatus(m.Status), Source: domain.SourceFeature,
			CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
		},
		OrgName:      m.OrgName,
		OrgType:      orgdomain.ParseOrgType(m.OrgType),
		OrgLogoImage: logo,
	}
}
