package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStorageFailure = errors.New("storage failure")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameExists    = errors.New("username already taken")
	ErrProfileIncomplete = errors.New("profile is incomplete")
	ErrResumeNotFound    = errors.New("resume not found")
)

// Job errors
var (
	ErrJobNotFound = errors.New("job not found")
)

// Application errors
var (
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrAlreadyPlaced        = errors.New("student is already placed")
	ErrIneligible           = errors.New("not eligible for this job")
)

// Feedback errors
var (
	ErrDuplicateFeedback = errors.New("feedback already submitted")
	ErrNotPlaced         = errors.New("student is not placed yet")
)

// Upload errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewIneligibleError creates an eligibility rejection carrying the reason message
func NewIneligibleError(message string) error {
	return &CustomError{
		Err:     ErrIneligible,
		Message: message,
	}
}
