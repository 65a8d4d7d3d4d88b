package constants

import "fmt"

const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleAdmin        = "ADMIN"
	RoleTeacher      = "TEACHER"
	RoleStudent      = "STUDENT"
	RoleParent       = "PARENT"
	RoleAccountant   = "ACCOUNTANT"
	RoleLibrarian    = "LIBRARIAN"
	RoleReceptionist = "RECEPTIONIST"
	RoleDriver       = "DRIVER"
	RoleHostelWarden = "HOSTEL_WARDEN"
)

// Template pesan error role
const (
	ErrForbiddenCapability = "Forbidden: role %s may not %s %s"
)

func CapabilityError(role string, c Capability) string {
	return fmt.Sprintf(ErrForbiddenCapability, role, c.Action, c.Area)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
		RoleAccountant,
		RoleLibrarian,
		RoleReceptionist,
		RoleDriver,
		RoleHostelWarden,
	}

	AdminRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
	}

	// StaffRoles are the roles a Staff record may be linked to.
	StaffRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleTeacher,
		RoleAccountant,
		RoleLibrarian,
		RoleReceptionist,
		RoleDriver,
		RoleHostelWarden,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsAdmin(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}
