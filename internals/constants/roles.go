package constants

const (
	RoleAdmin            = "ADMIN"
	RoleStaff            = "STAFF"
	RoleTransportManager = "TRANSPORT_MANAGER"
	RoleAccountant       = "ACCOUNTANT"
)

// AllRoles is the full role set carried in JWT claims.
var AllRoles = []string{RoleAdmin, RoleStaff, RoleTransportManager, RoleAccountant}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
