package guard

import "github.com/campuslink/community-service/internal/domain"

// IsAdmitted reports whether a role may enter the admin console. Unknown and
// empty roles are denied.
func IsAdmitted(role string) bool {
	switch domain.Role(role) {
	case domain.RoleAdmin, domain.RoleModerator:
		return true
	default:
		return false
	}
}
