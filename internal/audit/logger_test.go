package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tenant-core/internal/audit/domain"
	auditrepo "tenant-core/internal/audit/repository"
)

type failingRepo struct{ calls int }

func (f *failingRepo) Create(context.Context, *domain.AuditLog) error {
	f.calls++
	return errors.New("db down")
}

func (f *failingRepo) ListByOrg(context.Context, string, int, int) ([]*domain.AuditLog, error) {
	return nil, nil
}

func TestLogger_LogEvent(t *testing.T) {
	repo := auditrepo.NewMemoryRepository()
	l := NewLogger(repo, func(context.Context) string { return "10.0.0.7" })
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.LogEvent(context.Background(), "orgA", "u1", "custom", "tenant.get_context", "")

	got, _ := repo.ListByOrg(context.Background(), "orgA", 10, 0)
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	e := got[0]
	if e.ID == "" || e.IP != "10.0.0.7" || e.UserID != "u1" || e.Resource != "tenant.get_context" {
		t.Errorf("entry = %+v", e)
	}
	if !e.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", e.CreatedAt)
	}
}

func TestLogger_LogEvent_DefaultsAndNil(t *testing.T) {
	repo := auditrepo.NewMemoryRepository()
	NewLogger(repo, nil).LogEvent(context.Background(), "", "u1", "a", "r", "")
	got, _ := repo.ListByOrg(context.Background(), SentinelOrgID, 10, 0)
	if len(got) != 1 || got[0].IP != "unknown" {
		t.Fatalf("entries = %+v", got)
	}

	var nilLogger *Logger
	nilLogger.LogEvent(context.Background(), "o", "u", "a", "r", "")
	NewLogger(nil, nil).LogEvent(context.Background(), "o", "u", "a", "r", "")
}

func TestLogger_RepoFailureIsSwallowed(t *testing.T) {
	repo := &failingRepo{}
	NewLogger(repo, nil).LogDenial(context.Background(), "orgA", "u1", "tenant.check_access", "not a member", "")
	if repo.calls != 1 {
		t.Errorf("Create calls = %d, want 1", repo.calls)
	}
}

func TestLogger_LogDenial(t *testing.T) {
	repo := auditrepo.NewMemoryRepository()
	NewLogger(repo, nil).LogDenial(context.Background(), "orgB", "u1", "", "insufficient role", "ADMIN")
	got, _ := repo.ListByOrg(context.Background(), "orgB", 10, 0)
	if len(got) != 1 {
		t.Fatalf("entries = %d", len(got))
	}
	e := got[0]
	if e.Action != domain.ActionAccessDenied || e.Resource != "unknown" {
		t.Errorf("entry = %+v", e)
	}
	var md denialMetadata
	if err := json.Unmarshal([]byte(e.Metadata), &md); err != nil {
		t.Fatal(err)
	}
	if md.Reason != "insufficient role" || md.RequiredRole != "ADMIN" {
		t.Errorf("metadata = %+v", md)
	}
}

func TestOperationName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/tenant.v1.TenantService/CheckAccess", "tenant.check_access"},
		{"/tenant.v1.TenantService/GetContext", "tenant.get_context"},
		{"/grpc.health.v1.Health/Check", "health.check"},
		{"/Svc/", "unknown"},
		{"/Service/Ping", "ping"},
		{"POST /api/v1/access/check", "POST /api/v1/access/check"},
	}
	for _, tt := range tests {
		if got := OperationName(tt.in); got != tt.want {
			t.Errorf("OperationName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMemoryRepository_ListByOrgPaging(t *testing.T) {
	repo := auditrepo.NewMemoryRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_ = repo.Create(context.Background(), &domain.AuditLog{ID: string(rune('a' + i)), OrgID: "o", CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	got, _ := repo.ListByOrg(context.Background(), "o", 2, 0)
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("page 1 = %+v", got)
	}
	got, _ = repo.ListByOrg(context.Background(), "o", 2, 2)
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("page 2 = %+v", got)
	}
	if got, _ := repo.ListByOrg(context.Background(), "o", 2, 5); got != nil {
		t.Errorf("past end = %+v", got)
	}
}
