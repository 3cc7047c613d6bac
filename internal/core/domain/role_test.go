package domain

import "testing"

func TestHasCapability_AllImpliesEveryToken(t *testing.T) {
	for _, role := range Roles() {
		if !HasCapability(role, CapAll) {
			continue
		}
		for _, c := range Capabilities() {
			if !HasCapability(role, c) {
				t.Errorf("%s holds all but not %q", role, c)
			}
		}
	}
	if !HasCapability(RoleAdmin, CapAll) {
		t.Fatal("admin must hold all")
	}
}

func TestHasCapability_UnknownTokenDenied(t *testing.T) {
	for _, role := range Roles() {
		if HasCapability(role, Capability("billing")) {
			t.Errorf("%s was granted an unknown token", role)
		}
	}
}

func TestCapabilitiesFor_Table(t *testing.T) {
	cases := map[Role][]Capability{
		RoleAdmin:  {CapAll},
		RoleParent: {CapMeals, CapActivities, CapShopping, CapFamily, CapTransport},
		RoleCook:   {CapMeals, CapShopping},
		RoleDriver: {CapActivities, CapTransport},
		RoleChild:  {CapActivities, CapViewOnly},
	}
	for role, want := range cases {
		got := CapabilitiesFor(role)
		if len(got) != len(want) {
			t.Errorf("%s: got %v, want %v", role, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: got %v, want %v", role, got, want)
				break
			}
		}
	}
}

func TestCapabilitiesFor_UnknownRoleIsParent(t *testing.T) {
	got := CapabilitiesFor(Role("guest"))
	want := CapabilitiesFor(RoleParent)
	if len(got) != len(want) {
		t.Fatalf("unknown role: got %v, want %v", got, want)
	}
	if !HasCapability(Role(""), CapFamily) || HasCapability(Role("guest"), CapAll) {
		t.Error("unknown roles must behave exactly like parent")
	}
}

func TestCapabilitiesFor_ReturnsCopy(t *testing.T) {
	caps := CapabilitiesFor(RoleCook)
	caps[0] = CapAll
	if HasCapability(RoleCook, CapAll) {
		t.Error("mutating the returned set changed the table")
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole(" Driver "); !ok || r != RoleDriver {
		t.Errorf("ParseRole(Driver) = %q, %v", r, ok)
	}
	if _, ok := ParseRole("owner"); ok {
		t.Error("owner is not a role")
	}
	if RoleOrDefault("owner") != RoleParent {
		t.Error("unknown role must default to parent")
	}
}

func TestViewOnly(t *testing.T) {
	if !ViewOnly(RoleChild) {
		t.Error("child is view-only")
	}
	for _, r := range []Role{RoleAdmin, RoleParent, RoleCook, RoleDriver} {
		if ViewOnly(r) {
			t.Errorf("%s is not view-only", r)
		}
	}
}
