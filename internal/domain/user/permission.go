package user

type Permission int

const (
	PermissionNetAdmin Permission = 0 // Platform operator - full access
	PermissionEmployer Permission = 1 // Company administrator
	PermissionEmployee Permission = 2 // Regular employee
)

// ParsePermission validates a raw permission code.
func ParsePermission(code int) (Permission, error) {
	p := Permission(code)
	switch p {
	case PermissionNetAdmin, PermissionEmployer, PermissionEmployee:
		return p, nil
	}
	return 0, ErrInvalidPermission
}

// IsNetAdmin checks if the permission is net admin
func (p Permission) IsNetAdmin() bool {
	return p == PermissionNetAdmin
}

// IsEmployer checks if the permission is employer
func (p Permission) IsEmployer() bool {
	return p == PermissionEmployer
}

// IsEmployee checks if the permission is employee
func (p Permission) IsEmployee() bool {
	return p == PermissionEmployee
}

// CanAdministerCompany checks if the permission allows managing company members
func (p Permission) CanAdministerCompany() bool {
	return p == PermissionNetAdmin || p == PermissionEmployer
}

func (p Permission) String() string {
	switch p {
	case PermissionNetAdmin:
		return "net_admin"
	case PermissionEmployer:
		return "employer"
	case PermissionEmployee:
		return "employee"
	}
	return "unknown"
}
