package auth

// Application roles.
const (
	RoleAdmin             = "admin"
	RoleLegalProfessional = "legal_professional"
	RoleParalegal         = "paralegal"
)

// ValidRoles lists every role a user account can hold.
var ValidRoles = []string{RoleAdmin, RoleLegalProfessional, RoleParalegal}

// IsValidRole reports whether role is a known application role.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanManageUsers reports whether the role may list users and change roles.
func CanManageUsers(role string) bool {
	return role == RoleAdmin
}

// CanTriggerSweeps reports whether the role may run the batch reminder sweep.
func CanTriggerSweeps(role string) bool {
	return role == RoleAdmin
}
