package domain

import (
	"errors"
	"strings"
	"time"
)

// User is the identity read model. Users are owned by the identity subsystem.
type User struct {
	ID         string
	Email      string
	Name       string
	Image      string // optional avatar URL
	GlobalRole GlobalRole
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GlobalRole is a platform-wide privilege tier, distinct from org-scoped roles.
type GlobalRole string

const (
	GlobalRoleSuperAdmin GlobalRole = "SUPERADMIN"
	GlobalRoleAdmin      GlobalRole = "ADMIN"
	GlobalRoleUser       GlobalRole = "USER"
)

// Rank orders global roles SUPERADMIN > ADMIN > USER. Unknown roles rank as USER.
func (g GlobalRole) Rank() int {
	switch g {
	case GlobalRoleSuperAdmin:
		return 3
	case GlobalRoleAdmin:
		return 2
	default:
		return 1
	}
}

// BypassesOrgChecks reports whether the holder skips per-organization membership checks.
func (g GlobalRole) BypassesOrgChecks() bool {
	return g == GlobalRoleSuperAdmin
}

// ParseGlobalRole maps a stored role string to a GlobalRole; anything unrecognized is USER.
func ParseGlobalRole(s string) GlobalRole {
	switch g := GlobalRole(strings.ToUpper(strings.TrimSpace(s))); g {
	case GlobalRoleSuperAdmin, GlobalRoleAdmin:
		return g
	default:
		return GlobalRoleUser
	}
}

// LookupGlobalRole maps s to a known GlobalRole and reports false for anything else. Use it for
// requirements; ParseGlobalRole is for stored roles.
func LookupGlobalRole(s string) (GlobalRole, bool) {
	switch g := GlobalRole(strings.ToUpper(strings.TrimSpace(s))); g {
	case GlobalRoleSuperAdmin, GlobalRoleAdmin, GlobalRoleUser:
		return g, true
	default:
		return "", false
	}
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.GlobalRole == "" {
		u.GlobalRole = GlobalRoleUser
	}
	return nil
}
