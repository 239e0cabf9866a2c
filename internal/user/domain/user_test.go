package domain

import "testing"

func TestGlobalRole(t *testing.T) {
	if !(GlobalRoleSuperAdmin.Rank() > GlobalRoleAdmin.Rank() && GlobalRoleAdmin.Rank() > GlobalRoleUser.Rank()) {
		t.Error("expected SUPERADMIN > ADMIN > USER")
	}
	if !GlobalRoleSuperAdmin.BypassesOrgChecks() || GlobalRoleAdmin.BypassesOrgChecks() {
		t.Error("only SUPERADMIN bypasses organization checks")
	}
	for in, want := range map[string]GlobalRole{
		"superadmin": GlobalRoleSuperAdmin, " Admin": GlobalRoleAdmin, "user": GlobalRoleUser, "root": GlobalRoleUser,
	} {
		if got := ParseGlobalRole(in); got != want {
			t.Errorf("ParseGlobalRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookupGlobalRole(t *testing.T) {
	tests := []struct {
		in   string
		want GlobalRole
		ok   bool
	}{
		{"SUPERADMIN", GlobalRoleSuperAdmin, true},
		{" admin ", GlobalRoleAdmin, true},
		{"user", GlobalRoleUser, true},
		{"SUPERADMN", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := LookupGlobalRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupGlobalRole(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUser_Validate(t *testing.T) {
	u := &User{Email: "u@example.com"}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if u.GlobalRole != GlobalRoleUser {
		t.Errorf("GlobalRole = %q, want USER", u.GlobalRole)
	}
	if err := (&User{}).Validate(); err == nil {
		t.Error("missing email should fail")
	}
}
