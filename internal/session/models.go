package session

// Role is the canonical client-side role.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// IsValidRole reports whether role is one of the three canonical values.
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// AuthSession is the client-held view of an authenticated user: an opaque
// backend token, the normalized role, and whatever profile data the login
// response carried. Created on login, destroyed on logout.
type AuthSession struct {
	Token    string                 `json:"token"`
	Role     Role                   `json:"role"`
	UserData map[string]interface{} `json:"user_data,omitempty"`
}

// NewAuthSession builds a session from a raw login response. The role
// payload is normalized from whatever shape the backend sent.
func NewAuthSession(token string, rawRole interface{}, userData map[string]interface{}) AuthSession {
	return AuthSession{
		Token:    token,
		Role:     NormalizeRole(rawRole),
		UserData: userData,
	}
}

// Authenticated reports token presence. Expiry is deliberately not
// checked here; see IsTokenExpired.
func (s AuthSession) Authenticated() bool {
	return s.Token != ""
}

// DefaultPathForRole returns the landing path a user of the given role is
// redirected to when a role gate rejects them.
func DefaultPathForRole(role Role) string {
	switch role {
	case RoleSuperAdmin:
		return "/super-admin/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/"
	}
}
