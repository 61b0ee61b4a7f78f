package user

import "time"

type User struct {
	Email           string
	FirstName       string
	LastName        string
	MobilePhone     string
	CompanyID       string
	Role            string
	Permission      Permission
	PassHash        string
	IsActive        bool
	Salary          float64
	WorkCapacity    float64
	EmploymentStart time.Time
	EmploymentEnd   *time.Time
	WeekendDays     WeekendDays
}

// FullName returns the display name used in reports.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsWorkDay reports whether the given day falls outside the user's weekend.
func (u *User) IsWorkDay(day time.Time) bool {
	return !u.WeekendDays.Has(day.Weekday())
}
