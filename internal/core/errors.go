// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
	ErrTokenInvalid = errors.New("token invalid")
)

// Check-in precondition sentinels. Each maps to a stable reason code so
// the client can route the user to the right corrective action.
var (
	ErrNoActivePlan        = errors.New("no active plan")
	ErrNoActivePhase       = errors.New("no active phase")
	ErrMissingHabitProfile = errors.New("missing habit profile")
	ErrInvalidCheckinDate  = errors.New("check-in date must be today")
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func NewAppError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

func BadRequestError(message string) *AppError {
	return NewAppError("BAD_REQUEST", message, http.StatusBadRequest)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError("FORBIDDEN", message, http.StatusForbidden)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		"NOT_FOUND",
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
	)
}

func ConflictError(message string) *AppError {
	return NewAppError("CONFLICT", message, http.StatusConflict)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		"TOKEN_EXPIRED",
		"access token has expired",
		http.StatusUnauthorized,
	)
}

func TokenRevokedError() *AppError {
	return NewAppError(
		"TOKEN_REVOKED",
		"access token has been revoked",
		http.StatusUnauthorized,
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		"TOKEN_INVALID",
		"access token is invalid",
		http.StatusUnauthorized,
	)
}

// PreconditionError translates a domain precondition sentinel into its
// client-facing reason code. Unknown errors fall through to a generic
// unprocessable response.
func PreconditionError(err error) *AppError {
	switch {
	case errors.Is(err, ErrNoActivePlan):
		return NewAppError(
			"NO_ACTIVE_PLAN",
			"you have no active quit plan",
			http.StatusUnprocessableEntity,
		)
	case errors.Is(err, ErrNoActivePhase):
		return NewAppError(
			"NO_ACTIVE_PHASE",
			"your plan has no phase in progress today",
			http.StatusUnprocessableEntity,
		)
	case errors.Is(err, ErrMissingHabitProfile):
		return NewAppError(
			"MISSING_HABIT_PROFILE",
			"complete your smoking habit profile first",
			http.StatusUnprocessableEntity,
		)
	case errors.Is(err, ErrInvalidCheckinDate):
		return NewAppError(
			"INVALID_CHECKIN_DATE",
			"check-ins are only accepted for today",
			http.StatusUnprocessableEntity,
		)
	default:
		return NewAppError(
			"PRECONDITION_FAILED",
			err.Error(),
			http.StatusUnprocessableEntity,
		)
	}
}

func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoActivePlan) ||
		errors.Is(err, ErrNoActivePhase) ||
		errors.Is(err, ErrMissingHabitProfile) ||
		errors.Is(err, ErrInvalidCheckinDate)
}
