// Package response holds the wire shapes shared by all HTTP handlers.
package response

import (
	"github.com/labstack/echo/v4"

	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
)

// ErrorBody is the structured error shape surfaced at the API boundary.
// Every domain failure kind maps 1:1 onto it.
type ErrorBody struct {
	ErrorName  string `json:"error_name"`  // Stable error identifier
	StatusCode int    `json:"status_code"` // HTTP status code, repeated in the body for client convenience
	Detail     string `json:"detail"`      // Human-readable error detail
	ErrorCode  int    `json:"error_code"`  // Stable numeric error code for programmatic branching
}

// JSON writes a success payload.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// AppError writes a domain error in the boundary error shape.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), ErrorBody{
		ErrorName:  appErr.ErrorName(),
		StatusCode: appErr.HTTPCode(),
		Detail:     appErr.Detail(),
		ErrorCode:  appErr.ErrorCode(),
	})
}

// Error writes an ad-hoc error in the boundary error shape.
func Error(c echo.Context, statusCode int, errorName, detail string, errorCode int) error {
	return c.JSON(statusCode, ErrorBody{
		ErrorName:  errorName,
		StatusCode: statusCode,
		Detail:     detail,
		ErrorCode:  errorCode,
	})
}
