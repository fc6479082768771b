package errprocess

import (
	"errors"
	"fmt"

	"workzup_backend/pkg/logger"
)

// error kinds, the API boundary maps these onto HTTP status codes
var (
	// ErrValidation malformed or missing input
	ErrValidation = errors.New("validation failed")
	// ErrNotFound unknown id
	ErrNotFound = errors.New("not found")
	// ErrForbidden caller is not allowed to touch the resource
	ErrForbidden = errors.New("forbidden")
	// ErrInternal unexpected failure
	ErrInternal = errors.New("internal error")
)

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// Validation wrap a validation error with detail
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wrap a not-found error with detail
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Forbidden wrap a forbidden error with detail
func Forbidden(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// Internal log and wrap an unexpected error, detail stays in the log
func Internal(err error) error {
	logger.Log.Errorf("internal error :", err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

// IsValidation report whether err is a validation error
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound report whether err is a not-found error
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsForbidden report whether err is a forbidden error
func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }
