package user

import (
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email           string  `json:"email"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	MobilePhone     string  `json:"mobile_phone"`
	CompanyName     string  `json:"company_name"`
	Role            string  `json:"role"`
	Permission      int     `json:"permission"`
	Password        string  `json:"password"`
	Salary          float64 `json:"salary"`
	WorkCapacity    float64 `json:"work_capacity"`
	EmploymentStart *string `json:"employment_start,omitempty"`
	WeekendChoice   string  `json:"weekend_choice"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if r.MobilePhone != "" && !validator.IsValidPhoneNumber(r.MobilePhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_phone",
			Message: "invalid phone number",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if _, err := ParsePermission(r.Permission); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "permission",
			Message: "permission must be 0 (net admin), 1 (employer) or 2 (employee)",
		})
	}
	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.WorkCapacity < 0 || r.WorkCapacity > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_capacity",
			Message: "work_capacity must be between 0 and 24 hours",
		})
	}
	if r.EmploymentStart != nil {
		if _, ok := validator.IsValidDateTime(*r.EmploymentStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_start",
				Message: "employment_start must be an ISO8601 timestamp",
			})
		}
	}
	if _, err := ParseWeekendDays(r.WeekendChoice); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "weekend_choice",
			Message: "weekend_choice must be a comma-separated list of weekday names",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	FirstName     *string  `json:"first_name,omitempty"`
	LastName      *string  `json:"last_name,omitempty"`
	MobilePhone   *string  `json:"mobile_phone,omitempty"`
	Role          *string  `json:"role,omitempty"`
	Permission    *int     `json:"permission,omitempty"`
	Salary        *float64 `json:"salary,omitempty"`
	WorkCapacity  *float64 `json:"work_capacity,omitempty"`
	WeekendChoice *string  `json:"weekend_choice,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MobilePhone != nil && *r.MobilePhone != "" && !validator.IsValidPhoneNumber(*r.MobilePhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_phone",
			Message: "invalid phone number",
		})
	}
	if r.Permission != nil {
		if _, err := ParsePermission(*r.Permission); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "permission",
				Message: "permission must be 0 (net admin), 1 (employer) or 2 (employee)",
			})
		}
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.WorkCapacity != nil && (*r.WorkCapacity < 0 || *r.WorkCapacity > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_capacity",
			Message: "work_capacity must be between 0 and 24 hours",
		})
	}
	if r.WeekendChoice != nil {
		if _, err := ParseWeekendDays(*r.WeekendChoice); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "weekend_choice",
				Message: "weekend_choice must be a comma-separated list of weekday names",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	Password string `json:"password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListScope selects which users a listing returns.
type ListScope string

const (
	ScopeActive   ListScope = "active"
	ScopeInactive ListScope = "inactive"
	ScopeAll      ListScope = "all"
)

func ParseListScope(s string) (ListScope, bool) {
	switch ListScope(s) {
	case ScopeActive, ScopeInactive, ScopeAll:
		return ListScope(s), true
	case "":
		return ScopeActive, true
	}
	return "", false
}

// Profile is the user shape returned over HTTP, password hash excluded.
type Profile struct {
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	MobilePhone     string     `json:"mobile_phone"`
	CompanyID       string     `json:"company_id"`
	Role            string     `json:"role"`
	Permission      int        `json:"permission"`
	IsActive        bool       `json:"is_active"`
	Salary          float64    `json:"salary"`
	WorkCapacity    float64    `json:"work_capacity"`
	EmploymentStart time.Time  `json:"employment_start"`
	EmploymentEnd   *time.Time `json:"employment_end"`
	WeekendChoice   string     `json:"weekend_choice"`
}

func NewProfile(u User) Profile {
	return Profile{
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		MobilePhone:     u.MobilePhone,
		CompanyID:       u.CompanyID,
		Role:            u.Role,
		Permission:      int(u.Permission),
		IsActive:        u.IsActive,
		Salary:          u.Salary,
		WorkCapacity:    u.WorkCapacity,
		EmploymentStart: u.EmploymentStart,
		EmploymentEnd:   u.EmploymentEnd,
		WeekendChoice:   u.WeekendDays.String(),
	}
}

func NewProfiles(users []User) []Profile {
	profiles := make([]Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, NewProfile(u))
	}
	return profiles
}
