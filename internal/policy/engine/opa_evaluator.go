package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"

	"tenant-core/internal/policy/repository"
)

const denyQuery = "data.tenant.access.deny"

// DefaultRegoPolicy is always loaded. Org policies add rules to the same deny set.
const DefaultRegoPolicy = `package tenant.access

deny contains msg if {
	input.action == "write"
	input.membership.status != "active"
	msg := "write requires an active membership"
}
`

// OPAEvaluator evaluates per-organization deny policies using OPA Rego. Prepared queries are
// cached per organization and rebuilt only when that organization's policy set changes.
type OPAEvaluator struct {
	policyRepo repository.Repository

	mu       sync.Mutex
	fallback *rego.PreparedEvalQuery
	byOrg    map[string]preparedSet
	compiles int
}

type preparedSet struct {
	fingerprint string
	query       rego.PreparedEvalQuery
}

// NewOPAEvaluator returns an OPA-based policy evaluator. policyRepo may be nil; then only the
// default policy applies.
func NewOPAEvaluator(policyRepo repository.Repository) *OPAEvaluator {
	return &OPAEvaluator{policyRepo: policyRepo, byOrg: make(map[string]preparedSet)}
}

// HealthCheck verifies that the in-process OPA Rego engine can compile and evaluate the default policy.
// Does not call the policy repo or database. Returns nil on success.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	pq, err := e.defaultQuery(ctx)
	if err != nil {
		return fmt.Errorf("compile default policy: %w", err)
	}
	if _, err := evalDeny(ctx, pq, buildInput(AccessInput{Action: "read", Status: "active"})); err != nil {
		return fmt.Errorf("eval default policy: %w", err)
	}
	return nil
}

// EvaluateAccess evaluates the default policy plus the organization's enabled policies.
// A broken org policy is logged and skipped in favour of the default policy alone.
func (e *OPAEvaluator) EvaluateAccess(ctx context.Context, in AccessInput) (AccessResult, error) {
	pq, err := e.queryFor(ctx, in.OrgID)
	if err != nil {
		return AccessResult{}, err
	}
	reasons, err := evalDeny(ctx, pq, buildInput(in))
	if err != nil {
		return AccessResult{}, err
	}
	return AccessResult{Denied: len(reasons) > 0, Reasons: reasons}, nil
}

// queryFor returns the prepared deny query for orgID's current enabled policies.
func (e *OPAEvaluator) queryFor(ctx context.Context, orgID string) (rego.PreparedEvalQuery, error) {
	if e.policyRepo == nil || orgID == "" {
		return e.defaultQuery(ctx)
	}
	policies, err := e.policyRepo.ListEnabledByOrg(ctx, orgID)
	if err != nil {
		log.Printf("policy: failed to load policies for org %s: %v", orgID, err)
	}
	modules := map[string]string{}
	h := sha256.New()
	for i, p := range policies {
		if p.Enabled && p.Rules != "" {
			modules[fmt.Sprintf("org_%d.rego", i)] = p.Rules
			h.Write([]byte(p.Rules))
			h.Write([]byte{0})
		}
	}
	if len(modules) == 0 {
		return e.defaultQuery(ctx)
	}
	fingerprint := hex.EncodeToString(h.Sum(nil))

	e.mu.Lock()
	cached, ok := e.byOrg[orgID]
	e.mu.Unlock()
	if ok && cached.fingerprint == fingerprint {
		return cached.query, nil
	}

	modules["default.rego"] = DefaultRegoPolicy
	pq, err := e.prepare(ctx, modules)
	if err != nil {
		log.Printf("policy: org %s policies do not compile, using default only: %v", orgID, err)
		if pq, err = e.defaultQuery(ctx); err != nil {
			return rego.PreparedEvalQuery{}, err
		}
	}
	e.mu.Lock()
	e.byOrg[orgID] = preparedSet{fingerprint: fingerprint, query: pq}
	e.mu.Unlock()
	return pq, nil
}

func (e *OPAEvaluator) defaultQuery(ctx context.Context) (rego.PreparedEvalQuery, error) {
	e.mu.Lock()
	cached := e.fallback
	e.mu.Unlock()
	if cached != nil {
		return *cached, nil
	}
	pq, err := e.prepare(ctx, map[string]string{"default.rego": DefaultRegoPolicy})
	if err != nil {
		return rego.PreparedEvalQuery{}, err
	}
	e.mu.Lock()
	e.fallback = &pq
	e.mu.Unlock()
	return pq, nil
}

func (e *OPAEvaluator) prepare(ctx context.Context, modules map[string]string) (rego.PreparedEvalQuery, error) {
	e.mu.Lock()
	e.compiles++
	e.mu.Unlock()
	compiler, err := ast.CompileModules(modules)
	if err != nil {
		return rego.PreparedEvalQuery{}, fmt.Errorf("compile policies: %w", err)
	}
	pq, err := rego.New(rego.Query(denyQuery), rego.Compiler(compiler)).PrepareForEval(ctx)
	if err != nil {
		return rego.PreparedEvalQuery{}, fmt.Errorf("prepare deny query: %w", err)
	}
	return pq, nil
}

func buildInput(in AccessInput) map[string]interface{} {
	return map[string]interface{}{
		"user": map[string]interface{}{
			"id":          in.UserID,
			"global_role": in.GlobalRole,
		},
		"org": map[string]interface{}{
			"id": in.OrgID,
		},
		"membership": map[string]interface{}{
			"role":      in.Role,
			"role_rank": in.RoleRank,
			"status":    in.Status,
		},
		"required": map[string]interface{}{
			"role":      in.RequiredRole,
			"role_rank": in.RequiredRank,
		},
		"action": in.Action,
	}
}

func evalDeny(ctx context.Context, pq rego.PreparedEvalQuery, input map[string]interface{}) ([]string, error) {
	rs, err := pq.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, fmt.Errorf("eval deny: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return nil, nil
	}
	set, ok := rs[0].Expressions[0].Value.([]interface{})
	if !ok {
		return nil, nil
	}
	reasons := make([]string, 0, len(set))
	for _, v := range set {
		if s, ok := v.(string); ok && s != "" {
			reasons = append(reasons, s)
		}
	}
	sort.Strings(reasons)
	return reasons, nil
}
