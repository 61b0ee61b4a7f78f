package company

import (
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name string `json:"company_name"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name must be at most 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name *string `json:"company_name,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name must be at most 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Details is the company shape returned over HTTP.
type Details struct {
	ID       string `json:"company_id"`
	Name     string `json:"company_name"`
	IsActive bool   `json:"is_active"`
}

func NewDetails(c Company) Details {
	return Details{
		ID:       c.ID,
		Name:     c.Name,
		IsActive: c.IsActive,
	}
}

func NewDetailsList(companies []Company) []Details {
	details := make([]Details, 0, len(companies))
	for _, c := range companies {
		details = append(details, NewDetails(c))
	}
	return details
}
