package company

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyNameExists  = errors.New("company name already registered")
	ErrCompanyInactive    = errors.New("company is inactive")
	ErrUnauthorizedAccess = errors.New("unauthorized access")
)
