package session

import (
	"context"
	"strings"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"
)

// NormalizeRole converts the backend's role payload to a canonical Role.
// The backend answers in three shapes depending on endpoint: a plain
// string ("admin"), a "ROLE_"-prefixed string ("ROLE_ADMIN"), or an array
// of authority strings (["booking:create", "ROLE_ADMIN"]). Anything
// unrecognized falls back to USER with a warning.
func NormalizeRole(raw interface{}) Role {
	switch v := raw.(type) {
	case string:
		if role, ok := canonicalRole(v); ok {
			return role
		}
	case []string:
		for _, authority := range v {
			if role, ok := canonicalRole(authority); ok {
				return role
			}
		}
	case []interface{}:
		for _, entry := range v {
			authority, ok := entry.(string)
			if !ok {
				continue
			}
			if role, ok := canonicalRole(authority); ok {
				return role
			}
		}
	case Role:
		if IsValidRole(string(v)) {
			return v
		}
	}

	logger.GetDefault().LogUnknownRole(context.Background(), raw)
	return RoleUser
}

// canonicalRole maps a single authority string to a Role. Permission
// strings like "booking:create" are not roles and are skipped.
func canonicalRole(authority string) (Role, bool) {
	v := strings.ToUpper(strings.TrimSpace(authority))
	v = strings.TrimPrefix(v, "ROLE_")

	switch v {
	case "USER":
		return RoleUser, true
	case "ADMIN":
		return RoleAdmin, true
	case "SUPER_ADMIN", "SUPERADMIN":
		return RoleSuperAdmin, true
	}
	return "", false
}
