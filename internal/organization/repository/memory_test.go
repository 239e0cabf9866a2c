package repository

import (
	"context"
	"testing"

	"tenant-core/internal/organization/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	if err := r.CreateOrganization(ctx, &domain.Org{ID: "orgA", Name: "Alpha"}); err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}
	if err := r.CreateOrganization(ctx, &domain.Org{ID: "orgA", Name: "Again"}); err == nil {
		t.Error("duplicate id should fail")
	}
	if err := r.CreateOrganization(ctx, &domain.Org{ID: "orgX"}); err == nil {
		t.Error("empty name should fail validation")
	}

	o, err := r.GetOrganizationByID(ctx, "orgA")
	if err != nil || o == nil || o.Type != domain.OrgTypeOther {
		t.Fatalf("GetOrganizationByID = %+v, %v", o, err)
	}
	if o, err := r.GetOrganizationByID(ctx, "missing"); o != nil || err != nil {
		t.Errorf("missing = %+v, %v; want nil, nil", o, err)
	}

	m, err := r.ListOrganizationsByIDs(ctx, []string{"orgA", "missing"})
	if err != nil || len(m) != 1 || m["orgA"].Name != "Alpha" {
		t.Errorf("ListOrganizationsByIDs = %v, %v", m, err)
	}
}
