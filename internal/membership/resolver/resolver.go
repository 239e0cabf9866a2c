// Package resolver turns a user id into the normalized list of organizations the user can see.
package resolver

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"tenant-core/internal/membership/domain"
	orgdomain "tenant-core/internal/organization/domain"
	orgrepo "tenant-core/internal/organization/repository"
	userdomain "tenant-core/internal/user/domain"
	userrepo "tenant-core/internal/user/repository"
)

const instrumentationName = "tenant-core/internal/membership/resolver"

// MembershipLister is the read contract of the membership store.
type MembershipLister interface {
	ListMembershipsForUser(ctx context.Context, userID string) []*domain.Row
}

// UserGetter loads the user profile and global role.
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*userdomain.User, error)
}

// OrgLister loads canonical organization display fields in one batch.
type OrgLister interface {
	ListOrganizationsByIDs(ctx context.Context, ids []string) (map[string]*orgdomain.Org, error)
}

// Resolution is the outcome of resolving one user.
type Resolution struct {
	// User is nil when the profile is unknown or could not be loaded.
	User *userdomain.User
	// GlobalRole is USER unless the profile was loaded and carries a higher platform role.
	GlobalRole userdomain.GlobalRole
	// Organizations are the non-removed memberships in store order. Never nil.
	Organizations []domain.OrgSummary
}

// Resolver joins membership rows with organization and user data.
type Resolver struct {
	memberships MembershipLister
	users       UserGetter
	orgs        OrgLister
}

// New returns a Resolver. users and orgs may be nil: without users every caller is a plain USER,
// without orgs the display fields carried on the membership rows are used as-is.
func New(memberships MembershipLister, users UserGetter, orgs OrgLister) *Resolver {
	return &Resolver{memberships: memberships, users: users, orgs: orgs}
}

// Resolve returns the organizations userID belongs to. It never fails: lookup failures degrade to
// fewer organizations or a missing profile, never to an error.
func (r *Resolver) Resolve(ctx context.Context, userID string) *Resolution {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "membership.resolve")
	defer span.End()

	res := &Resolution{GlobalRole: userdomain.GlobalRoleUser, Organizations: []domain.OrgSummary{}}
	if userID == "" {
		return res
	}
	if r.users != nil {
		u, err := r.users.GetUserByID(ctx, userID)
		if err != nil {
			log.Printf("resolver: load user %s: %v", userID, err)
		} else if u != nil {
			res.User = u
			res.GlobalRole = u.GlobalRole
		}
	}

	rows := r.memberships.ListMembershipsForUser(ctx, userID)
	canonical := r.loadOrgs(ctx, rows)
	for _, row := range rows {
		if row.Status == domain.StatusRemoved {
			continue
		}
		s := row.Summary()
		if o, ok := canonical[s.ID]; ok {
			s.Name, s.Type, s.LogoImage = o.Name, o.Type, o.LogoImage
		}
		res.Organizations = append(res.Organizations, s)
	}
	span.SetAttributes(
		attribute.Int("membership.organizations", len(res.Organizations)),
		attribute.String("membership.global_role", string(res.GlobalRole)),
	)
	return res
}

func (r *Resolver) loadOrgs(ctx context.Context, rows []*domain.Row) map[string]*orgdomain.Org {
	if r.orgs == nil || len(rows) == 0 {
		return nil
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Status != domain.StatusRemoved {
			ids = append(ids, row.OrgID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	orgs, err := r.orgs.ListOrganizationsByIDs(ctx, ids)
	if err != nil {
		log.Printf("resolver: load organizations: %v", err)
		return nil
	}
	return orgs
}

var (
	_ UserGetter = userrepo.Repository(nil)
	_ OrgLister  = orgrepo.Repository(nil)
)
