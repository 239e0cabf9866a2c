package repository

import (
	"context"
	"testing"

	"tenant-core/internal/user/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	if err := r.CreateUser(ctx, &domain.User{ID: "U", Email: "u@example.com"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := r.CreateUser(ctx, &domain.User{ID: "U", Email: "other@example.com"}); err == nil {
		t.Error("duplicate id should fail")
	}
	if err := r.CreateUser(ctx, &domain.User{ID: "V"}); err == nil {
		t.Error("missing email should fail validation")
	}

	u, err := r.GetUserByID(ctx, "U")
	if err != nil || u == nil || u.GlobalRole != domain.GlobalRoleUser {
		t.Fatalf("GetUserByID = %+v, %v", u, err)
	}
	if u, err := r.GetUserByID(ctx, "missing"); u != nil || err != nil {
		t.Errorf("missing = %+v, %v; want nil, nil", u, err)
	}
}
