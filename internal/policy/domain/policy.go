package domain

import "time"

// Policy is an org-level Rego module that can add deny rules on top of the built-in access guard.
// Rules must declare package tenant.access and contribute to the deny set.
type Policy struct {
	ID        string
	OrgID     string
	Rules     string
	Enabled   bool
	CreatedAt time.Time
}
