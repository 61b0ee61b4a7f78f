package response

import (
	"errors"
	"net/http"

	"github.com/timewatch/timewatch-backend-go/internal/domain/auth"
	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked),
		errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrGoogleAccountNotLinked):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Conflict(w, "User is already inactive")
	case errors.Is(err, user.ErrUserAlreadyActive):
		Conflict(w, "User is already active")
	case errors.Is(err, user.ErrInvalidPermission):
		BadRequest(w, "Invalid permission code", nil)
	case errors.Is(err, user.ErrInvalidWeekendChoice):
		BadRequest(w, "Invalid weekend choice", nil)
	case errors.Is(err, user.ErrUnauthorizedAccess):
		Forbidden(w, "Access denied")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")
	case errors.Is(err, company.ErrCompanyInactive):
		Conflict(w, "Company is inactive")
	case errors.Is(err, company.ErrUnauthorizedAccess):
		Forbidden(w, "Access denied")

	// Time stamp domain errors
	case errors.Is(err, timestamp.ErrTimeStampNotFound):
		NotFound(w, "Time stamp not found")
	case errors.Is(err, timestamp.ErrNoOpenPunchIn):
		NotFound(w, err.Error())
	case errors.Is(err, timestamp.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, timestamp.ErrPunchOutBeforePunchIn):
		BadRequest(w, "Punch-out must not precede punch-in", nil)
	case errors.Is(err, timestamp.ErrUnauthorizedAccess):
		Forbidden(w, "Access denied")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRangeType):
		BadRequest(w, "Invalid date range type", nil)
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, report.ErrUnauthorizedAccess):
		Forbidden(w, "Access denied")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
