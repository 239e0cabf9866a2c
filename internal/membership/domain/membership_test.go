package domain

import "testing"

func TestRole_Order(t *testing.T) {
	order := []Role{RoleMember, RoleOfficeStaff, RoleAccountant, RoleAdmin, RoleOwner}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("%s should rank above %s", order[i], order[i-1])
		}
	}
	if Role("JANITOR").Valid() {
		t.Error("unknown role should be invalid")
	}
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		held, required Role
		want           bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleOwner, RoleAdmin, true},
		{RoleAccountant, RoleAdmin, false},
		{RoleMember, RoleMember, true},
		{Role("BOGUS"), RoleMember, false},
	}
	for _, tt := range tests {
		if got := tt.held.AtLeast(tt.required); got != tt.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tt.held, tt.required, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"owner", RoleOwner, true},
		{" Admin ", RoleAdmin, true},
		{"office-staff", RoleOfficeStaff, true},
		{"office staff", RoleOfficeStaff, true},
		{"OFFICE_STAFF", RoleOfficeStaff, true},
		{"superadmin", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseStatus_UnknownIsRemoved(t *testing.T) {
	for in, want := range map[string]Status{
		"active": StatusActive, "INACTIVE": StatusInactive, "removed": StatusRemoved,
		"suspended": StatusRemoved, "": StatusRemoved,
	} {
		if got := ParseStatus(in); got != want {
			t.Errorf("ParseStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRow_MoreRestrictiveThan(t *testing.T) {
	row := func(role Role, st Status, src Source) *Row {
		return &Row{Membership: Membership{Role: role, Status: st, Source: src}}
	}
	tests := []struct {
		name string
		a, b *Row
		want bool
	}{
		{"lower role wins", row(RoleMember, StatusActive, SourceFeature), row(RoleAdmin, StatusActive, SourceUser), true},
		{"higher role loses", row(RoleAdmin, StatusActive, SourceUser), row(RoleMember, StatusActive, SourceFeature), false},
		{"same role, inactive beats active", row(RoleAdmin, StatusInactive, SourceFeature), row(RoleAdmin, StatusActive, SourceUser), true},
		{"same role, removed beats inactive", row(RoleAdmin, StatusRemoved, SourceFeature), row(RoleAdmin, StatusInactive, SourceUser), true},
		{"identical, user dataset wins", row(RoleAdmin, StatusActive, SourceUser), row(RoleAdmin, StatusActive, SourceFeature), true},
		{"identical, feature dataset loses", row(RoleAdmin, StatusActive, SourceFeature), row(RoleAdmin, StatusActive, SourceUser), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.MoreRestrictiveThan(tt.b); got != tt.want {
				t.Errorf("MoreRestrictiveThan = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRow_Summary(t *testing.T) {
	r := &Row{
		Membership:   Membership{OrgID: "orgB", Role: RoleMember, Status: StatusInactive},
		OrgName:      "Beta",
		OrgType:      "church",
		OrgLogoImage: "https://cdn.example.com/b.png",
	}
	s := r.Summary()
	if s.ID != "orgB" || s.Name != "Beta" || s.Type != "church" || s.LogoImage == "" || s.Role != RoleMember {
		t.Errorf("Summary = %+v", s)
	}
	if s.Active() || !s.Inactive() {
		t.Errorf("inactive membership flags wrong: active=%v inactive=%v", s.Active(), s.Inactive())
	}
}
