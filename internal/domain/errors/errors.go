// Package errors defines the domain error taxonomy. Every failure kind the
// core can produce maps to one HTTP status and one stable numeric error code,
// so API clients can branch programmatically.
package errors

import (
	"net/http"

	"github.com/jacketex894/login-project/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorName() string // Stable error identifier, e.g. "UsernameAlreadyExistsError"
	ErrorCode() int    // Stable numeric error code
	Detail() string    // Human-readable error detail
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorName string
	errorCode int
	detail    string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorName string, errorCode int, detail string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorName: errorName,
		errorCode: errorCode,
		detail:    detail,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.detail
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorName returns the stable error identifier
func (e *BaseError) ErrorName() string {
	return e.errorName
}

// ErrorCode returns the stable numeric error code
func (e *BaseError) ErrorCode() int {
	return e.errorCode
}

// Detail returns the human-readable error detail
func (e *BaseError) Detail() string {
	return e.detail
}

// Predefined error types
var (
	// ErrInvalidHashedPassword signals a malformed hash reaching the store.
	// Correct callers never produce it; it marks a defect in the hasher or a
	// caller bypassing it, which is why it maps to a 500.
	ErrInvalidHashedPassword = NewBaseError(
		http.StatusInternalServerError,
		"InvalidHashedPassword",
		5001,
		"Invalid hashed password format",
	)

	// Storage-fault errors. Always preceded by rollback of the in-flight write.
	ErrCreateUser = NewBaseError(
		http.StatusInternalServerError,
		"DatabaseCreateUserError",
		5002,
		"Failed to create user",
	)

	ErrUpdateUser = NewBaseError(
		http.StatusInternalServerError,
		"DatabaseUpdateUserError",
		5003,
		"Failed to update user",
	)

	ErrDeleteUser = NewBaseError(
		http.StatusInternalServerError,
		"DatabaseDeleteUserError",
		5004,
		"Failed to delete user",
	)

	ErrQueryUser = NewBaseError(
		http.StatusInternalServerError,
		"DatabaseQueryUserError",
		5005,
		"Failed to query user",
	)

	// ErrUsernameAlreadyExists is the collapsed duplicate-key kind: username
	// and email uniqueness violations both surface as this error.
	ErrUsernameAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"UsernameAlreadyExistsError",
		4001,
		"Failed to create user cause of user exist",
	)

	ErrQueryUserNotFound = NewBaseError(
		http.StatusNotFound,
		"DatabaseQueryUserNotFoundError",
		4002,
		"User not found",
	)

	ErrUpdateUserNotFound = NewBaseError(
		http.StatusNotFound,
		"DatabaseUpdateUserNotFoundError",
		4003,
		"User to update not found",
	)

	ErrDeleteUserNotFound = NewBaseError(
		http.StatusNotFound,
		"DatabaseDeleteUserNotFoundError",
		4004,
		"User to delete not found",
	)

	// ErrInvalidCredentials is the unified login failure. Unknown username and
	// wrong password are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"InvalidUserNameOrPassword",
		4006,
		"Invalid username or password",
	)

	ErrAccessTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"AccessTokenNotFound",
		4009,
		"Access token not found from the request",
	)

	ErrAccessTokenUserIDNotFound = NewBaseError(
		http.StatusNotFound,
		"AccessTokenUserIDNotFound",
		4010,
		"Access token does not contain a user ID",
	)

	ErrAccessTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"AccessTokenExpired",
		4011,
		"Access token has expired",
	)

	ErrAccessTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"AccessTokenInvalid",
		4012,
		"Access token is invalid",
	)
)
