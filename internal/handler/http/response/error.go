package response

import (
	"errors"
	"net/http"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/auth"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expenditure"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/report"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/user"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vacation"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vehicle"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrQIDExists):
		Conflict(w, "QID already registered")
	case errors.Is(err, employee.ErrInvalidDocumentType):
		BadRequest(w, "Unknown document type", nil)
	case errors.Is(err, tempemployee.ErrTempEmployeeNotFound):
		NotFound(w, "Temp employee not found")

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, "Branch name already exists")
	case errors.Is(err, branch.ErrInvalidDocumentType):
		BadRequest(w, "Unknown document type", nil)

	// Vehicle domain errors
	case errors.Is(err, vehicle.ErrVehicleNotFound):
		NotFound(w, "Vehicle not found")
	case errors.Is(err, vehicle.ErrLicenseNumberExists):
		Conflict(w, "License number already registered")
	case errors.Is(err, vehicle.ErrSameBranchTransfer):
		Conflict(w, "Vehicle already belongs to target branch")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation not found")
	case errors.Is(err, vacation.ErrInvalidDuration):
		BadRequest(w, "Invalid duration code", nil)
	case errors.Is(err, vacation.ErrOverlappingVacation):
		Conflict(w, "Employee already has a vacation in this period")

	// Expenditure domain errors
	case errors.Is(err, expenditure.ErrExpenditureNotFound):
		NotFound(w, "Expenditure not found")
	case errors.Is(err, expenditure.ErrInvalidAmount):
		BadRequest(w, "Amount must be positive", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidView):
		BadRequest(w, "View must be expired or expiring", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
