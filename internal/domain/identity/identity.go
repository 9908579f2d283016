package identity

import "strings"

// ===============================
// Principal Roles
// ===============================

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleUnknown Role = ""
)

// ParseRole normalizes the token's role claim once at the boundary. Anything
// outside the two known roles maps to RoleUnknown; callers decide whether
// that means a 403 or an invalid-role rejection.
func ParseRole(claim string) Role {
	switch strings.ToLower(strings.TrimSpace(claim)) {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleUnknown
	}
}

// Principal is the acting identity derived from a verified bearer token.
type Principal struct {
	UserID string
	Email  string
	Name   string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
