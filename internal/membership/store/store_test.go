package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/membership/repository"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func row(org string, role domain.Role, st domain.Status, src domain.Source, created, updated time.Time) *domain.Row {
	return &domain.Row{Membership: domain.Membership{
		ID: org + "-" + string(src), UserID: "u1", OrgID: org, Role: role, Status: st, Source: src,
		CreatedAt: created, UpdatedAt: updated,
	}}
}

// stubRepo returns fixed rows or an error, optionally after a delay, and counts in-flight calls.
type stubRepo struct {
	rows     []*domain.Row
	err      error
	delay    time.Duration
	inFlight *int32
	peak     *int32
}

func (s *stubRepo) ListRowsByUser(ctx context.Context, _ string) ([]*domain.Row, error) {
	if s.inFlight != nil {
		n := atomic.AddInt32(s.inFlight, 1)
		defer atomic.AddInt32(s.inFlight, -1)
		for {
			p := atomic.LoadInt32(s.peak)
			if n <= p || atomic.CompareAndSwapInt32(s.peak, p, n) {
				break
			}
		}
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*domain.Row, len(s.rows))
	for i, r := range s.rows {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

type recordingReporter struct {
	mu        sync.Mutex
	conflicts []Conflict
}

func (r *recordingReporter) ReportConflict(_ context.Context, c Conflict) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts = append(r.conflicts, c)
}

func orgIDs(rows []*domain.Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.OrgID
	}
	return ids
}

func TestMerge_DuplicateTieBreak(t *testing.T) {
	later := t0.Add(time.Hour)
	tests := []struct {
		name         string
		user, feat   *domain.Row
		wantRole     domain.Role
		wantStatus   domain.Status
		wantSource   domain.Source
		wantConflict bool
	}{
		{
			name:     "newer update wins even when more permissive",
			user:     row("orgA", domain.RoleMember, domain.StatusActive, domain.SourceUser, t0, t0),
			feat:     row("orgA", domain.RoleAdmin, domain.StatusActive, domain.SourceFeature, t0, later),
			wantRole: domain.RoleAdmin, wantStatus: domain.StatusActive, wantSource: domain.SourceFeature, wantConflict: true,
		},
		{
			name:     "equal timestamps keep the lower role",
			user:     row("orgA", domain.RoleAdmin, domain.StatusActive, domain.SourceUser, t0, t0),
			feat:     row("orgA", domain.RoleMember, domain.StatusActive, domain.SourceFeature, t0, t0),
			wantRole: domain.RoleMember, wantStatus: domain.StatusActive, wantSource: domain.SourceFeature, wantConflict: true,
		},
		{
			name:     "equal role keeps the less permissive status",
			user:     row("orgA", domain.RoleAdmin, domain.StatusActive, domain.SourceUser, t0, t0),
			feat:     row("orgA", domain.RoleAdmin, domain.StatusInactive, domain.SourceFeature, t0, t0),
			wantRole: domain.RoleAdmin, wantStatus: domain.StatusInactive, wantSource: domain.SourceFeature, wantConflict: true,
		},
		{
			name:     "identical rows keep the user dataset and report nothing",
			user:     row("orgA", domain.RoleAdmin, domain.StatusActive, domain.SourceUser, t0, t0),
			feat:     row("orgA", domain.RoleAdmin, domain.StatusActive, domain.SourceFeature, t0, t0),
			wantRole: domain.RoleAdmin, wantStatus: domain.StatusActive, wantSource: domain.SourceUser,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, order := range [][2]*domain.Row{{tt.user, tt.feat}, {tt.feat, tt.user}} {
				merged, conflicts := Merge([]*domain.Row{order[0]}, []*domain.Row{order[1]})
				if len(merged) != 1 {
					t.Fatalf("merged %d rows, want 1", len(merged))
				}
				got := merged[0]
				if got.Role != tt.wantRole || got.Status != tt.wantStatus || got.Source != tt.wantSource {
					t.Errorf("winner = %s/%s from %s, want %s/%s from %s",
						got.Role, got.Status, got.Source, tt.wantRole, tt.wantStatus, tt.wantSource)
				}
				if (len(conflicts) == 1) != tt.wantConflict {
					t.Errorf("conflicts = %d, want conflict=%v", len(conflicts), tt.wantConflict)
				}
			}
		})
	}
}

func TestMerge_OrderAndNil(t *testing.T) {
	a := row("orgA", domain.RoleAdmin, domain.StatusActive, domain.SourceUser, t0.Add(2*time.Hour), t0)
	b := row("orgB", domain.RoleMember, domain.StatusInactive, domain.SourceFeature, t0, t0)
	c := row("orgC", domain.RoleOwner, domain.StatusRemoved, domain.SourceUser, t0.Add(time.Hour), t0)
	merged, conflicts := Merge([]*domain.Row{a, nil, c}, []*domain.Row{b}, nil)
	if got := orgIDs(merged); len(got) != 3 || got[0] != "orgB" || got[1] != "orgC" || got[2] != "orgA" {
		t.Errorf("order = %v, want [orgB orgC orgA]", got)
	}
	if len(conflicts) != 0 {
		t.Errorf("conflicts = %v", conflicts)
	}
	if merged, _ := Merge(); merged == nil || len(merged) != 0 {
		t.Errorf("empty merge = %v, want empty non-nil", merged)
	}
}

func TestStore_UnionsBothDatasets(t *testing.T) {
	userRepo := repository.NewMemoryRepository(domain.SourceUser)
	featRepo := repository.NewMemoryRepository(domain.SourceFeature)
	userRepo.Add(*row("orgA", domain.RoleAdmin, domain.StatusActive, "", t0, t0))
	featRepo.Add(*row("orgB", domain.RoleMember, domain.StatusInactive, "", t0.Add(time.Minute), t0))
	featRepo.Add(*row("orgA", domain.RoleMember, domain.StatusActive, "", t0, t0.Add(-time.Hour)))

	rep := &recordingReporter{}
	s := New(userRepo, featRepo, WithConflictReporter(rep))
	rows := s.ListMembershipsForUser(context.Background(), "u1")

	if got := orgIDs(rows); len(got) != 2 || got[0] != "orgA" || got[1] != "orgB" {
		t.Fatalf("orgs = %v", got)
	}
	if rows[0].Role != domain.RoleAdmin || rows[0].Source != domain.SourceUser {
		t.Errorf("orgA winner = %s from %s, want ADMIN from user", rows[0].Role, rows[0].Source)
	}
	if len(rep.conflicts) != 1 || rep.conflicts[0].Loser.Source != domain.SourceFeature {
		t.Errorf("conflicts = %+v", rep.conflicts)
	}
}

func TestStore_ReportsToEveryReporter(t *testing.T) {
	userRepo := repository.NewMemoryRepository(domain.SourceUser)
	featRepo := repository.NewMemoryRepository(domain.SourceFeature)
	userRepo.Add(*row("orgA", domain.RoleAdmin, domain.StatusActive, "", t0, t0))
	featRepo.Add(*row("orgA", domain.RoleAdmin, domain.StatusInactive, "", t0, t0.Add(-time.Hour)))

	first, second := &recordingReporter{}, &recordingReporter{}
	s := New(userRepo, featRepo, WithConflictReporter(first, nil), WithConflictReporter(second))
	s.ListMembershipsForUser(context.Background(), "u1")

	for name, rep := range map[string]*recordingReporter{"first": first, "second": second} {
		if len(rep.conflicts) != 1 || rep.conflicts[0].OrgID != "orgA" {
			t.Errorf("%s reporter conflicts = %+v", name, rep.conflicts)
		}
	}
}

func TestStore_SoftFailsPerDataset(t *testing.T) {
	good := &stubRepo{rows: []*domain.Row{row("orgA", domain.RoleAdmin, domain.StatusActive, "", t0, t0)}}
	tests := []struct {
		name    string
		s       *Store
		wantLen int
	}{
		{"feature dataset errors", New(good, &stubRepo{err: errors.New("connection reset")}), 1},
		{"user dataset errors", New(&stubRepo{err: errors.New("boom")}, good), 1},
		{"both error", New(&stubRepo{err: errors.New("a")}, &stubRepo{err: errors.New("b")}), 0},
		{"feature dataset times out", New(good, &stubRepo{delay: time.Second}, WithQueryTimeout(20*time.Millisecond)), 1},
		{"no datasets configured", New(nil, nil), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			rows := tt.s.ListMembershipsForUser(context.Background(), "u1")
			if rows == nil || len(rows) != tt.wantLen {
				t.Errorf("rows = %v, want %d", orgIDs(rows), tt.wantLen)
			}
			if time.Since(start) > 500*time.Millisecond {
				t.Errorf("took %v; a slow dataset must not hold the result past its timeout", time.Since(start))
			}
		})
	}
}

func TestStore_QueriesConcurrently(t *testing.T) {
	var inFlight, peak int32
	a := &stubRepo{delay: 50 * time.Millisecond, inFlight: &inFlight, peak: &peak}
	b := &stubRepo{delay: 50 * time.Millisecond, inFlight: &inFlight, peak: &peak}
	New(a, b).ListMembershipsForUser(context.Background(), "u1")
	if atomic.LoadInt32(&peak) != 2 {
		t.Errorf("peak concurrent queries = %d, want 2", peak)
	}
}

func TestStore_CallerDeadlineBoundsQueries(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	rows := New(&stubRepo{delay: time.Second}, nil).ListMembershipsForUser(ctx, "u1")
	if len(rows) != 0 {
		t.Errorf("rows = %v", orgIDs(rows))
	}
}

func TestStore_EmptyUserID(t *testing.T) {
	called := false
	s := New(repoFunc(func() { called = true }), nil)
	if rows := s.ListMembershipsForUser(context.Background(), ""); len(rows) != 0 {
		t.Errorf("rows = %v", rows)
	}
	if called {
		t.Error("datasets should not be queried for an empty user id")
	}
}

type repoFunc func()

func (f repoFunc) ListRowsByUser(context.Context, string) ([]*domain.Row, error) {
	f()
	return nil, nil
}
