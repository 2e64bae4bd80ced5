package kernel

import "strings"

// Role is the caller role forwarded by the gateway in the x-user-role header.
type Role string

const (
	RoleUnknown      Role = "unknown"
	RoleAdmin        Role = "admin"
	RoleSalesManager Role = "sales_manager"
	RoleSeller       Role = "seller"
)

// ParseRole accepts any casing ("SALES_MANAGER", "sales_manager") and maps
// unrecognised values to RoleUnknown.
func ParseRole(raw string) Role {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleAdmin, RoleSalesManager, RoleSeller:
		return r
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	return string(r)
}

// Caller is the identity established by the gateway for the current request.
type Caller struct {
	UserID string
	Name   string
	Role   Role
}

// NewCaller builds a Caller from raw trust header values.
func NewCaller(userID, name, role string) Caller {
	return Caller{
		UserID: strings.TrimSpace(userID),
		Name:   strings.TrimSpace(name),
		Role:   ParseRole(role),
	}
}
