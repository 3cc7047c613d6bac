package domain

import "time"

// Identity is the authenticated household member of the current session.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}

// Session binds one Identity to one login. A new login always yields a new
// session ID.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	StartedAt time.Time `json:"started_at"`
}

var roleDisplayNames = map[Role]string{
	RoleAdmin:  "Admin User",
	RoleParent: "Sarah Johnson",
	RoleCook:   "Chef Mike",
	RoleDriver: "Driver Emma",
	RoleChild:  "Little Emma",
}

var roleAvatars = map[Role]string{
	RoleAdmin:  "👑",
	RoleParent: "👩‍💼",
	RoleCook:   "👨‍🍳",
	RoleDriver: "🚗",
	RoleChild:  "👧",
}

// DisplayNameFor returns the profile name shown for role.
func DisplayNameFor(role Role) string {
	if name, ok := roleDisplayNames[role]; ok {
		return name
	}
	return string(role)
}

// AvatarFor returns the avatar glyph shown for role.
func AvatarFor(role Role) string {
	if avatar, ok := roleAvatars[role]; ok {
		return avatar
	}
	return "👤"
}

// FamilyMember is an entry of the household roster.
type FamilyMember struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Age    int    `json:"age,omitempty"`
}
