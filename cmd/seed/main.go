// seed inserts development sample data into both datasets for local testing. Run with go run ./cmd/seed.
// Idempotent: skips inserts if the dev user already exists in the user dataset.
//
// The dev user belongs to three organizations: Acme School (ADMIN, active, user dataset, with a
// stale duplicate in the feature dataset), Grace Church (MEMBER, inactive, feature dataset) and
// Old Ventures (OWNER, removed). With JWT_PRIVATE_KEY set it also prints an access token.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tenant-core/internal/config"
	"tenant-core/internal/db"
	"tenant-core/internal/membership/domain"
	membershiprepo "tenant-core/internal/membership/repository"
	orgdomain "tenant-core/internal/organization/domain"
	orgrepo "tenant-core/internal/organization/repository"
	policydomain "tenant-core/internal/policy/domain"
	policyrepo "tenant-core/internal/policy/repository"
	"tenant-core/internal/security"
	userdomain "tenant-core/internal/user/domain"
	userrepo "tenant-core/internal/user/repository"
)

// readOnlyChurchPolicy makes Grace Church read-only for everyone below ADMIN.
const readOnlyChurchPolicy = `package tenant.access

deny contains msg if {
	input.action == "write"
	input.membership.role_rank < 4
	msg := "organization is read-only below ADMIN"
}
`

const (
	devUserID       = "dev-user-001"
	devUserEmail    = "dev@example.com"
	superUserID     = "dev-user-002"
	superUserEmail  = "root@example.com"
	schoolOrgID     = "dev-org-school"
	churchOrgID     = "dev-org-church"
	formerOrgID     = "dev-org-former"
	devPolicyID     = "dev-policy-001"
	devSessionID    = "dev-session-001"
	schoolMemberID  = "dev-membership-001"
	formerMemberID  = "dev-membership-002"
	staleSchoolID   = "dev-feature-membership-001"
	churchMemberID  = "dev-feature-membership-002"
	superSchoolID   = "dev-membership-003"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.UserDatabaseURL == "" || cfg.FeatureDatabaseURL == "" {
		log.Fatal("USER_DATABASE_URL and FEATURE_DATABASE_URL must be set; create a .env from .env.example")
	}

	userDB, err := db.OpenUserDataset(cfg.UserDatabaseURL)
	if err != nil {
		log.Fatalf("user dataset: %v", err)
	}
	defer userDB.Close()
	featureDB, featureConn, err := db.OpenFeatureDataset(cfg.FeatureDatabaseURL)
	if err != nil {
		log.Fatalf("feature dataset: %v", err)
	}
	defer featureConn.Close()

	ctx := context.Background()
	users := userrepo.NewPostgresRepository(userDB)
	orgs := orgrepo.NewPostgresRepository(userDB)
	userMemberships := membershiprepo.NewPostgresRepository(userDB)
	featureMemberships := membershiprepo.NewGormRepository(featureDB)
	policies := policyrepo.NewGormRepository(featureDB)

	existing, err := users.GetUserByID(ctx, devUserID)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Printf("Seed already applied (%s exists). Skipping.", devUserEmail)
		printToken(cfg)
		return
	}

	now := time.Now().UTC()
	started := now.AddDate(-3, 0, 0)

	for _, u := range []*userdomain.User{
		{ID: devUserID, Email: devUserEmail, Name: "Dev User", GlobalRole: userdomain.GlobalRoleUser, CreatedAt: now, UpdatedAt: now},
		{ID: superUserID, Email: superUserEmail, Name: "Platform Operator", GlobalRole: userdomain.GlobalRoleSuperAdmin, CreatedAt: now, UpdatedAt: now},
	} {
		if err := users.CreateUser(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", u.Email, err)
		}
	}

	for _, o := range []*orgdomain.Org{
		{ID: schoolOrgID, Name: "Acme School", Type: orgdomain.OrgTypeSchool, StartedAt: &started, CreatedAt: now},
		{ID: churchOrgID, Name: "Grace Church", Type: orgdomain.OrgTypeChurch, CreatedAt: now},
		{ID: formerOrgID, Name: "Old Ventures", Type: orgdomain.OrgTypeBusiness, CreatedAt: now},
	} {
		if err := orgs.CreateOrganization(ctx, o); err != nil {
			log.Fatalf("create organization %s: %v", o.Name, err)
		}
	}

	for _, m := range []*domain.Membership{
		{ID: schoolMemberID, UserID: devUserID, OrgID: schoolOrgID, Role: domain.RoleAdmin, Status: domain.StatusActive, CreatedAt: now, UpdatedAt: now},
		{ID: formerMemberID, UserID: devUserID, OrgID: formerOrgID, Role: domain.RoleOwner, Status: domain.StatusRemoved, CreatedAt: now.Add(2 * time.Hour), UpdatedAt: now.Add(2 * time.Hour)},
		{ID: superSchoolID, UserID: superUserID, OrgID: schoolOrgID, Role: domain.RoleMember, Status: domain.StatusActive, CreatedAt: now, UpdatedAt: now},
	} {
		if err := userMemberships.CreateMembership(ctx, m); err != nil {
			log.Fatalf("create membership %s: %v", m.ID, err)
		}
	}

	churchType := string(orgdomain.OrgTypeChurch)
	for _, m := range []*membershiprepo.OrgMembership{
		// Older duplicate of the school membership; the user dataset row wins the merge.
		{ID: staleSchoolID, UserID: devUserID, OrgID: schoolOrgID, OrgName: "Acme School", OrgType: string(orgdomain.OrgTypeSchool),
			Role: string(domain.RoleMember), Status: string(domain.StatusActive), CreatedAt: now, UpdatedAt: now.Add(-24 * time.Hour)},
		{ID: churchMemberID, UserID: devUserID, OrgID: churchOrgID, OrgName: "Grace Church", OrgType: churchType,
			Role: string(domain.RoleMember), Status: string(domain.StatusInactive), CreatedAt: now.Add(time.Hour), UpdatedAt: now.Add(time.Hour)},
	} {
		if err := featureMemberships.Create(ctx, m); err != nil {
			log.Fatalf("create feature membership %s: %v", m.ID, err)
		}
	}

	if err := policies.Create(ctx, &policydomain.Policy{
		ID: devPolicyID, OrgID: churchOrgID, Rules: readOnlyChurchPolicy, Enabled: true, CreatedAt: now,
	}); err != nil {
		log.Fatalf("create policy: %v", err)
	}

	log.Println("Seed completed successfully.")
	printToken(cfg)
}

// printToken prints a development access token for the dev user when JWT_PRIVATE_KEY is set.
func printToken(cfg *config.Config) {
	if cfg.JWTPrivateKey == "" {
		fmt.Printf("Dev user: %s (%s). Set JWT_PRIVATE_KEY to mint an access token.\n", devUserID, devUserEmail)
		return
	}
	signer, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		log.Fatalf("parse JWT_PRIVATE_KEY: %v", err)
	}
	token, expires, err := security.NewAccessIssuer(signer, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL()).Issue(devUserID, devSessionID)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Printf("Dev access token for %s (expires %s):\n%s\n", devUserEmail, expires.Format(time.RFC3339), token)
}
