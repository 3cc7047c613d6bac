package domain

import "strings"

// Role is one of the five fixed household access levels.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleParent Role = "parent"
	RoleCook   Role = "cook"
	RoleDriver Role = "driver"
	RoleChild  Role = "child"
)

// DefaultRole is the safe fallback for any unrecognized role.
const DefaultRole = RoleParent

var knownRoles = []Role{RoleAdmin, RoleParent, RoleCook, RoleDriver, RoleChild}

// Roles returns the known roles in declaration order.
func Roles() []Role {
	out := make([]Role, len(knownRoles))
	copy(out, knownRoles)
	return out
}

// ParseRole maps a raw token onto a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range knownRoles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// RoleOrDefault returns the parsed role, or DefaultRole when s is not a known role.
func RoleOrDefault(s string) Role {
	if r, ok := ParseRole(s); ok {
		return r
	}
	return DefaultRole
}

// Known reports whether r is one of the five fixed roles.
func (r Role) Known() bool {
	for _, known := range knownRoles {
		if r == known {
			return true
		}
	}
	return false
}

// normalize collapses unknown roles onto DefaultRole before any permission lookup.
func (r Role) normalize() Role {
	if r.Known() {
		return r
	}
	return DefaultRole
}

// Capability is a named permission checked against a role's permission set.
type Capability string

const (
	CapMeals      Capability = "meals"
	CapShopping   Capability = "shopping"
	CapActivities Capability = "activities"
	CapFamily     Capability = "family"
	CapTransport  Capability = "transport"
	CapViewOnly   Capability = "view-only"
	CapAll        Capability = "all"
)

var knownCapabilities = []Capability{CapMeals, CapShopping, CapActivities, CapFamily, CapTransport, CapViewOnly, CapAll}

// ParseCapability maps a raw token onto the closed capability set.
func ParseCapability(s string) (Capability, bool) {
	c := Capability(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range knownCapabilities {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Known reports whether c belongs to the closed capability set.
func (c Capability) Known() bool {
	for _, known := range knownCapabilities {
		if c == known {
			return true
		}
	}
	return false
}

// Capabilities returns the closed capability set.
func Capabilities() []Capability {
	out := make([]Capability, len(knownCapabilities))
	copy(out, knownCapabilities)
	return out
}

// permissionTable is the static role → capability mapping.
var permissionTable = map[Role][]Capability{
	RoleAdmin:  {CapAll},
	RoleParent: {CapMeals, CapActivities, CapShopping, CapFamily, CapTransport},
	RoleCook:   {CapMeals, CapShopping},
	RoleDriver: {CapActivities, CapTransport},
	RoleChild:  {CapActivities, CapViewOnly},
}

// CapabilitiesFor returns the permission set of role. Unknown roles get the
// DefaultRole set.
func CapabilitiesFor(role Role) []Capability {
	caps := permissionTable[role.normalize()]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// HasCapability reports whether role holds cap. Tokens outside the closed set
// are never granted, not even to "all".
func HasCapability(role Role, c Capability) bool {
	if !c.Known() {
		return false
	}
	for _, held := range permissionTable[role.normalize()] {
		if held == c || held == CapAll {
			return true
		}
	}
	return false
}

// ViewOnly reports whether role may only read. "all" overrides it.
func ViewOnly(role Role) bool {
	role = role.normalize()
	for _, held := range permissionTable[role] {
		if held == CapAll {
			return false
		}
	}
	for _, held := range permissionTable[role] {
		if held == CapViewOnly {
			return true
		}
	}
	return false
}
