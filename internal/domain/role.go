package domain

import "strings"

// Role is the closed set of caller roles.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// ParseRole maps free text onto a Role. Empty input defaults to RolePlayer.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(RolePlayer):
		return RolePlayer, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", NewFieldError("role", "must be one of: player, admin")
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// Caller is the authenticated principal of a request.
type Caller struct {
	UserID string
	Role   Role
}

// CanActFor reports whether the caller may act on resources owned by userID.
func (c Caller) CanActFor(userID string) bool {
	return c.Role.IsAdmin() || (c.UserID != "" && c.UserID == userID)
}
