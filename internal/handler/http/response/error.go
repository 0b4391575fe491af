package response

import (
	"errors"
	"net/http"

	"github.com/geoattend/geoattend-backend-go/internal/domain/attendance"
	"github.com/geoattend/geoattend-backend-go/internal/domain/auth"
	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/geoattend/geoattend-backend-go/internal/domain/schedule"
	"github.com/geoattend/geoattend-backend-go/internal/domain/user"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrReviewerPrivilegeRequired):
		Forbidden(w, "Admin or supervisor privilege required")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleExists):
		Conflict(w, "Schedule already exists for this user and day")

	// Geofence domain errors
	case errors.Is(err, geofence.ErrGeofenceNotFound):
		NotFound(w, "Geofence not found")
	case errors.Is(err, geofence.ErrNoActiveGeofence):
		NotConfigured(w, "No active geofence is configured")

	// Network domain errors
	case errors.Is(err, network.ErrNetworkNotFound):
		NotFound(w, "Authorized network not found")
	case errors.Is(err, network.ErrBSSIDExists):
		Conflict(w, "BSSID already registered")
	case errors.Is(err, network.ErrNetworkUnauthorized):
		Forbidden(w, "Network is not authorized for attendance registration")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateForDay):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrExitWithoutEntry):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, attendance.ErrIncidenceNotFound):
		NotFound(w, "Incidence not found")
	case errors.Is(err, attendance.ErrIncidenceExists):
		Conflict(w, "An incidence of this kind already exists for this user and date")
	case errors.Is(err, attendance.ErrUnauthorized):
		Unauthorized(w, "Unauthorized")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
