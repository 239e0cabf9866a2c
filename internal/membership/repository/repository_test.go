package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tenant-core/internal/membership/domain"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMemoryRepository_ListRowsByUser(t *testing.T) {
	repo := NewMemoryRepository(domain.SourceFeature)
	repo.Add(domain.Row{Membership: domain.Membership{ID: "m2", UserID: "u1", OrgID: "orgB", Role: domain.RoleMember, Status: domain.StatusActive, Source: domain.SourceUser, CreatedAt: t0.Add(time.Hour)}})
	repo.Add(domain.Row{Membership: domain.Membership{ID: "m1", UserID: "u1", OrgID: "orgA", Role: domain.RoleAdmin, Status: domain.StatusActive, CreatedAt: t0}})
	repo.Add(domain.Row{Membership: domain.Membership{ID: "m3", UserID: "u2", OrgID: "orgA", Role: domain.RoleOwner, Status: domain.StatusActive, CreatedAt: t0}})

	rows, err := repo.ListRowsByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListRowsByUser: %v", err)
	}
	if len(rows) != 2 || rows[0].OrgID != "orgA" || rows[1].OrgID != "orgB" {
		t.Fatalf("rows = %+v", rows)
	}
	for _, r := range rows {
		if r.Source != domain.SourceFeature {
			t.Errorf("row %s source = %q, want feature", r.ID, r.Source)
		}
	}

	rows[0].Role = domain.RoleOwner
	again, _ := repo.ListRowsByUser(context.Background(), "u1")
	if again[0].Role != domain.RoleAdmin {
		t.Error("callers must receive copies")
	}

	none, err := repo.ListRowsByUser(context.Background(), "nobody")
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("unknown user = %v, %v; want empty non-nil", none, err)
	}
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMemoryRepository(domain.SourceUser).ListRowsByUser(ctx, "u1"); err == nil {
		t.Error("expected context error")
	}
}

func TestMembershipRow_ToDomain(t *testing.T) {
	m := membershipRow{
		ID: "m1", UserID: "u1", OrgID: "orgA", Role: "admin", Status: "ACTIVE",
		CreatedAt: t0, UpdatedAt: t0, OrgName: "Alpha", OrgType: "school",
		OrgLogoImage: sql.NullString{String: "logo.png", Valid: true},
	}
	row := m.toDomain(domain.SourceUser)
	if row == nil {
		t.Fatal("toDomain returned nil")
	}
	if row.Role != domain.RoleAdmin || row.Status != domain.StatusActive || row.Source != domain.SourceUser {
		t.Errorf("row = %+v", row.Membership)
	}
	if row.OrgName != "Alpha" || row.OrgType != "school" || row.OrgLogoImage != "logo.png" {
		t.Errorf("org fields = %q %q %q", row.OrgName, row.OrgType, row.OrgLogoImage)
	}

	m.Role = "overlord"
	if m.toDomain(domain.SourceUser) != nil {
		t.Error("unknown role should be skipped")
	}
}

func TestOrgMembership_ToDomain(t *testing.T) {
	logo := "b.png"
	m := OrgMembership{ID: "f1", UserID: "u1", OrgID: "orgB", OrgName: "Beta", OrgType: "weird", OrgLogoImage: &logo,
		Role: "office-staff", Status: "paused", CreatedAt: t0, UpdatedAt: t0}
	row := m.toDomain()
	if row == nil {
		t.Fatal("toDomain returned nil")
	}
	if row.Role != domain.RoleOfficeStaff || row.Status != domain.StatusRemoved || row.Source != domain.SourceFeature {
		t.Errorf("row = %+v", row.Membership)
	}
	if row.OrgType != "other" || row.OrgLogoImage != "b.png" {
		t.Errorf("org fields = %q %q", row.OrgType, row.OrgLogoImage)
	}
	m.OrgLogoImage = nil
	if got := m.toDomain().OrgLogoImage; got != "" {
		t.Errorf("nil logo = %q", got)
	}
	if (OrgMembership{}).TableName() != "org_memberships" {
		t.Error("unexpected table name")
	}
}
