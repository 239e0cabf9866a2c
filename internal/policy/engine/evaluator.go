package engine

import (
	"context"
)

// AccessInput is the document handed to access policies as `input`.
type AccessInput struct {
	UserID       string
	GlobalRole   string
	OrgID        string
	Role         string
	RoleRank     int
	Status       string
	RequiredRole string
	RequiredRank int
	Action       string
}

// AccessResult holds the outcome of the policy overlay. Policies can only deny.
type AccessResult struct {
	Denied  bool
	Reasons []string
}

// Evaluator evaluates per-organization access policies using OPA or other engines.
type Evaluator interface {
	// EvaluateAccess returns the deny reasons the organization's policies produce for in.
	EvaluateAccess(ctx context.Context, in AccessInput) (AccessResult, error)
}
