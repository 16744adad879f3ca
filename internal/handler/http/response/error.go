package response

import (
	"errors"
	"net/http"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/domain/attendance"
	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/chafiq1992/attendance-app/internal/pkg/validator"
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
	// Attendance domain errors
	case errors.Is(err, attendance.ErrUnknownAction):
		ValidationError(w, map[string]string{"action": err.Error()})
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be formatted as YYYY-MM", nil)
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be formatted as YYYY-MM-DD", nil)

	// Ledger domain errors
	case errors.Is(err, ledger.ErrEntryNotFound):
		NotFound(w, "Ledger entry not found")
	case errors.Is(err, ledger.ErrInvalidMonth):
		BadRequest(w, "Month must be formatted as YYYY-MM", nil)

	// Admin domain errors
	case errors.Is(err, admin.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, admin.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, admin.ErrUserNotFound):
		NotFound(w, "Admin user not found")
	case errors.Is(err, admin.ErrUsernameTaken):
		Conflict(w, "Username already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
