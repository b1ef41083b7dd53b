package auth

// Console role constants.
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// StaffRoles returns every role that may sign in to the console.
func StaffRoles() []string {
	return []string{RoleOwner, RoleAdmin, RoleAgent}
}

// WriteRoles returns roles that can modify data.
func WriteRoles() []string {
	return []string{RoleOwner, RoleAdmin}
}
