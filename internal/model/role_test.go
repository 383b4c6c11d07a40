package model

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"student", "owner", "admin"} {
		if _, err := ParseRole(valid); err != nil {
			t.Fatalf("expected role %s to parse", valid)
		}
	}
	for _, invalid := range []string{"", "Admin", "superuser", "owner "} {
		if _, err := ParseRole(invalid); err == nil {
			t.Fatalf("expected role %q to be rejected", invalid)
		}
	}
}

func TestRoleSatisfies(t *testing.T) {
	cases := []struct {
		holder   Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleOwner, true}, // admin bypass on owner surfaces
		{RoleAdmin, RoleStudent, false},
		{RoleOwner, RoleOwner, true},
		{RoleOwner, RoleAdmin, false},
		{RoleOwner, RoleStudent, false},
		{RoleStudent, RoleStudent, true},
		{RoleStudent, RoleOwner, false},
		{RoleStudent, RoleAdmin, false},
	}
	for _, c := range cases {
		if got := c.holder.Satisfies(c.required); got != c.want {
			t.Fatalf("%s.Satisfies(%s) = %v, want %v", c.holder, c.required, got, c.want)
		}
	}
	if (Role("ghost")).Satisfies(Role("ghost")) {
		t.Fatalf("unknown required role must never be satisfied")
	}
}
