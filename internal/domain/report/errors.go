package report

import "errors"

var (
	ErrInvalidDateRangeType = errors.New("invalid date range type")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrUnauthorizedAccess   = errors.New("unauthorized access")
)
