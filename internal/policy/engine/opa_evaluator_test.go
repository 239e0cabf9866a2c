package engine

import (
	"context"
	"errors"
	"testing"

	"tenant-core/internal/policy/domain"
	"tenant-core/internal/policy/repository"
)

// mockPolicyRepo implements repository.Repository for tests.
type mockPolicyRepo struct {
	policies map[string][]*domain.Policy
	err      error
}

var _ repository.Repository = (*mockPolicyRepo)(nil)

func (m *mockPolicyRepo) ListEnabledByOrg(ctx context.Context, orgID string) ([]*domain.Policy, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.policies[orgID], nil
}

func (m *mockPolicyRepo) Create(ctx context.Context, p *domain.Policy) error {
	return nil
}

const blockAccountantsPolicy = `package tenant.access

deny contains msg if {
	input.membership.role == "ACCOUNTANT"
	input.action == "write"
	msg := "accountants are read-only in this organization"
}
`

func TestOPAEvaluator_HealthCheck(t *testing.T) {
	e := NewOPAEvaluator(nil)
	if err := e.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
}

func TestOPAEvaluator_DefaultPolicy(t *testing.T) {
	e := NewOPAEvaluator(nil)
	ctx := context.Background()

	testCases := []struct {
		name   string
		in     AccessInput
		denied bool
	}{
		{"active write", AccessInput{OrgID: "org-1", Status: "active", Action: "write"}, false},
		{"inactive read", AccessInput{OrgID: "org-1", Status: "inactive", Action: "read"}, false},
		{"inactive write", AccessInput{OrgID: "org-1", Status: "inactive", Action: "write"}, true},
		{"no action", AccessInput{OrgID: "org-1", Status: "inactive"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := e.EvaluateAccess(ctx, tc.in)
			if err != nil {
				t.Fatalf("EvaluateAccess: %v", err)
			}
			if res.Denied != tc.denied {
				t.Errorf("Denied = %v, want %v (reasons %v)", res.Denied, tc.denied, res.Reasons)
			}
		})
	}
}

func TestOPAEvaluator_OrgPolicyAddsDeny(t *testing.T) {
	repo := &mockPolicyRepo{policies: map[string][]*domain.Policy{
		"org-1": {{ID: "p1", OrgID: "org-1", Rules: blockAccountantsPolicy, Enabled: true}},
	}}
	e := NewOPAEvaluator(repo)
	ctx := context.Background()

	res, err := e.EvaluateAccess(ctx, AccessInput{OrgID: "org-1", Role: "ACCOUNTANT", Status: "active", Action: "write"})
	if err != nil {
		t.Fatalf("EvaluateAccess: %v", err)
	}
	if !res.Denied || len(res.Reasons) != 1 || res.Reasons[0] != "accountants are read-only in this organization" {
		t.Errorf("got %+v, want single accountant deny", res)
	}

	// Same input in another org is not affected.
	res, err = e.EvaluateAccess(ctx, AccessInput{OrgID: "org-2", Role: "ACCOUNTANT", Status: "active", Action: "write"})
	if err != nil {
		t.Fatalf("EvaluateAccess: %v", err)
	}
	if res.Denied {
		t.Errorf("org-2 should not inherit org-1 policy: %+v", res)
	}
}

func TestOPAEvaluator_BrokenOrgPolicyFallsBackToDefault(t *testing.T) {
	repo := &mockPolicyRepo{policies: map[string][]*domain.Policy{
		"org-1": {{ID: "p1", OrgID: "org-1", Rules: "package tenant.access\n\ndeny contains msg if {", Enabled: true}},
	}}
	e := NewOPAEvaluator(repo)

	res, err := e.EvaluateAccess(context.Background(), AccessInput{OrgID: "org-1", Status: "inactive", Action: "write"})
	if err != nil {
		t.Fatalf("EvaluateAccess: %v", err)
	}
	if !res.Denied {
		t.Error("default policy should still deny inactive writes")
	}
}

func TestOPAEvaluator_RepoErrorUsesDefault(t *testing.T) {
	e := NewOPAEvaluator(&mockPolicyRepo{err: errors.New("database error")})
	res, err := e.EvaluateAccess(context.Background(), AccessInput{OrgID: "org-1", Status: "active", Action: "write"})
	if err != nil {
		t.Fatalf("EvaluateAccess: %v", err)
	}
	if res.Denied {
		t.Errorf("active write should be allowed by default policy: %+v", res)
	}
}

func TestOPAEvaluator_DisabledPolicyIgnored(t *testing.T) {
	repo := &mockPolicyRepo{policies: map[string][]*domain.Policy{
		"org-1": {{ID: "p1", OrgID: "org-1", Rules: blockAccountantsPolicy, Enabled: false}},
	}}
	res, err := NewOPAEvaluator(repo).EvaluateAccess(context.Background(),
		AccessInput{OrgID: "org-1", Role: "ACCOUNTANT", Status: "active", Action: "write"})
	if err != nil {
		t.Fatalf("EvaluateAccess: %v", err)
	}
	if res.Denied {
		t.Errorf("disabled policy should not apply: %+v", res)
	}
}

func TestOPAEvaluator_PreparedQueriesAreReused(t *testing.T) {
	repo := &mockPolicyRepo{policies: map[string][]*domain.Policy{
		"org-1": {{ID: "p1", OrgID: "org-1", Rules: blockAccountantsPolicy, Enabled: true}},
	}}
	e := NewOPAEvaluator(repo)
	ctx := context.Background()
	accountantWrite := AccessInput{OrgID: "org-1", Role: "ACCOUNTANT", Status: "active", Action: "write"}

	for i := 0; i < 5; i++ {
		res, err := e.EvaluateAccess(ctx, accountantWrite)
		if err != nil || !res.Denied {
			t.Fatalf("evaluation %d = %+v, %v", i, res, err)
		}
		if _, err := e.EvaluateAccess(ctx, AccessInput{OrgID: "org-2", Status: "active", Action: "write"}); err != nil {
			t.Fatal(err)
		}
	}
	if e.compiles != 2 {
		t.Errorf("compiles = %d, want 2 (org-1 set and default)", e.compiles)
	}

	// A changed policy set is picked up on the next evaluation.
	repo.policies["org-1"] = []*domain.Policy{{ID: "p2", OrgID: "org-1", Rules: "package tenant.access\n", Enabled: true}}
	res, err := e.EvaluateAccess(ctx, accountantWrite)
	if err != nil || res.Denied {
		t.Fatalf("after policy change = %+v, %v", res, err)
	}
	if e.compiles != 3 {
		t.Errorf("compiles = %d, want 3", e.compiles)
	}
}

func TestOPAEvaluator_BrokenPolicyNotRecompiled(t *testing.T) {
	repo := &mockPolicyRepo{policies: map[string][]*domain.Policy{
		"org-1": {{ID: "p1", OrgID: "org-1", Rules: "package tenant.access\n\ndeny contains msg if {", Enabled: true}},
	}}
	e := NewOPAEvaluator(repo)
	for i := 0; i < 3; i++ {
		if _, err := e.EvaluateAccess(context.Background(), AccessInput{OrgID: "org-1", Status: "active", Action: "read"}); err != nil {
			t.Fatal(err)
		}
	}
	if e.compiles != 2 {
		t.Errorf("compiles = %d, want 2 (failed org set and default)", e.compiles)
	}
}
