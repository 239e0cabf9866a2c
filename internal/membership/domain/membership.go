package domain

import (
	"strings"
	"time"

	orgdomain "tenant-core/internal/organization/domain"
)

// Membership links a user to an organization with an org-scoped role and a lifecycle status.
// At most one active membership exists per (UserID, OrgID) within a dataset.
type Membership struct {
	ID        string
	UserID    string
	OrgID     string
	Role      Role
	Status    Status
	Source    Source
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role is an organization-scoped privilege level.
type Role string

const (
	RoleOwner       Role = "OWNER"
	RoleAdmin       Role = "ADMIN"
	RoleAccountant  Role = "ACCOUNTANT"
	RoleOfficeStaff Role = "OFFICE_STAFF"
	RoleMember      Role = "MEMBER"
)

var roleRank = map[Role]int{
	RoleMember:      1,
	RoleOfficeStaff: 2,
	RoleAccountant:  3,
	RoleAdmin:       4,
	RoleOwner:       5,
}

// Rank returns the position of r in the total order OWNER > ADMIN > ACCOUNTANT > OFFICE_STAFF > MEMBER.
// Unknown roles rank 0, below every known role.
func (r Role) Rank() int {
	return roleRank[r]
}

// Valid reports whether r is one of the known org roles.
func (r Role) Valid() bool {
	return r.Rank() > 0
}

// AtLeast reports whether r ranks at or above required. An unknown r never satisfies a requirement.
func (r Role) AtLeast(required Role) bool {
	return r.Valid() && r.Rank() >= required.Rank()
}

// ParseRole maps a stored or client-supplied role string to a Role. Matching is case-insensitive
// and accepts "office-staff" / "office staff" spellings. Returns false for unknown values.
func ParseRole(s string) (Role, bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	r := Role(norm)
	if !r.Valid() {
		return "", false
	}
	return r, true
}

// Status is the lifecycle state of a membership. Memberships are never hard-deleted.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRemoved  Status = "removed"
)

// permissiveness orders statuses from least to most permissive; used by the duplicate tie-break.
func (s Status) permissiveness() int {
	switch s {
	case StatusActive:
		return 3
	case StatusInactive:
		return 2
	case StatusRemoved:
		return 1
	default:
		return 0
	}
}

// ParseStatus maps a stored status to a Status. Unknown values are treated as removed so that a
// corrupt row can never grant visibility.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive
	case StatusInactive:
		return StatusInactive
	default:
		return StatusRemoved
	}
}

// Source names the dataset a membership row was read from.
type Source string

const (
	SourceUser    Source = "user"
	SourceFeature Source = "feature"
)

// Row is a membership joined with the display fields of its organization.
// Repositories produce rows with a single joined query per dataset.
type Row struct {
	Membership
	OrgName      string
	OrgType      orgdomain.OrgType
	OrgLogoImage string
}

// MoreRestrictiveThan reports whether r should win a duplicate tie against other when both were
// updated at the same instant: the lower role wins, then the less permissive status, then the
// user dataset.
func (r *Row) MoreRestrictiveThan(other *Row) bool {
	if r.Role.Rank() != other.Role.Rank() {
		return r.Role.Rank() < other.Role.Rank()
	}
	if r.Status.permissiveness() != other.Status.permissiveness() {
		return r.Status.permissiveness() < other.Status.permissiveness()
	}
	return r.Source == SourceUser && other.Source != SourceUser
}

// OrgSummary is the per-organization view handed to the context and to UI consumers.
type OrgSummary struct {
	ID        string
	Name      string
	Type      orgdomain.OrgType
	LogoImage string
	Role      Role
	Status    Status
}

// Active reports whether the membership behind s grants access.
func (s OrgSummary) Active() bool {
	return s.Status == StatusActive
}

// Inactive reports whether the membership is visible but read-only.
func (s OrgSummary) Inactive() bool {
	return s.Status == StatusInactive
}

// Summary converts a joined row to its OrgSummary.
func (r *Row) Summary() OrgSummary {
	return OrgSummary{
		ID:        r.OrgID,
		Name:      r.OrgName,
		Type:      r.OrgType,
		LogoImage: r.OrgLogoImage,
		Role:      r.Role,
		Status:    r.Status,
	}
}
