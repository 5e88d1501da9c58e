package errors

import (
	"net/http"

	"lifeline/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int { return e.httpCode }

func (e *BaseError) ErrorCode() string { return e.errorCode }

func (e *BaseError) Message() string { return e.message }

func (e *BaseError) Details() string { return e.details }

// Is matches on the business code so WithDetails copies still compare equal
// to their predefined parent.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Code registry errors
	ErrCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"CODE_NOT_FOUND",
		"connection code not found or expired",
		"",
	)

	ErrCodeSpaceExhausted = NewBaseError(
		http.StatusServiceUnavailable,
		"CODE_SPACE_EXHAUSTED",
		"no free connection code available",
		"",
	)

	// Pairing errors. A repeated decision is reported as a no-op, never to clients.
	ErrApprovalAlreadyDecided = NewBaseError(
		http.StatusConflict,
		"APPROVAL_ALREADY_DECIDED",
		"pairing has already been decided",
		"",
	)

	ErrFamilyAlreadyPaired = NewBaseError(
		http.StatusConflict,
		"FAMILY_ALREADY_PAIRED",
		"family is already paired",
		"",
	)

	// Family errors
	ErrFamilyNotFound = NewBaseError(
		http.StatusNotFound,
		"FAMILY_NOT_FOUND",
		"family not found",
		"",
	)

	ErrInvalidSettings = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_SETTINGS",
		"monitoring settings are invalid",
		"",
	)

	ErrAlertNotActive = NewBaseError(
		http.StatusConflict,
		"ALERT_NOT_ACTIVE",
		"no active inactivity alert",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// Delivery errors
	ErrNotificationDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"NOTIFICATION_DELIVERY_FAILED",
		"notification delivery failed",
		"",
	)

	ErrNoRecipients = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_RECIPIENTS",
		"family has no notification recipients",
		"",
	)

	// Infrastructure errors
	ErrPersistenceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PERSISTENCE_UNAVAILABLE",
		"storage is temporarily unavailable",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid credentials",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// PersistenceError is a store failure. It matches ErrPersistenceUnavailable
// under errors.Is and keeps the store error reachable through Unwrap.
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a storage-related error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "persistence: "+e.details).Error()
}

func (e *PersistenceError) Unwrap() error { return e.err }

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceUnavailable
}

func (e *PersistenceError) HTTPCode() int { return http.StatusServiceUnavailable }

func (e *PersistenceError) ErrorCode() string { return ErrPersistenceUnavailable.ErrorCode() }

func (e *PersistenceError) Message() string { return ErrPersistenceUnavailable.Message() }

func (e *PersistenceError) Details() string { return e.details }
