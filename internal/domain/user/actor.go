package user

// Actor identifies the authenticated caller of an operation. Handlers
// build it from the verified token claims and pass it down explicitly,
// services never reach into the request context for identity.
type Actor struct {
	Email      string
	Permission Permission
	CompanyID  string
}

// CanAccessUser reports whether the actor may read the target user's data.
// Employees may only access themselves, employers anyone in their own
// company, net admins anyone.
func (a Actor) CanAccessUser(target User) bool {
	switch {
	case a.Permission.IsNetAdmin():
		return true
	case a.Permission.IsEmployer():
		return a.CompanyID == target.CompanyID
	default:
		return a.Email == target.Email
	}
}

// CanAccessCompany reports whether the actor may read company-wide data.
// Employees are always refused.
func (a Actor) CanAccessCompany(companyID string) bool {
	switch {
	case a.Permission.IsNetAdmin():
		return true
	case a.Permission.IsEmployer():
		return a.CompanyID == companyID
	default:
		return false
	}
}
