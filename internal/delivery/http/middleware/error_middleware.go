// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jacketex894/login-project/internal/delivery/http/response"
	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
)

// ErrorMiddleware error handling middleware. It is the single place where
// domain failures are translated into the boundary error shape; handlers
// just return errors.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Domain failures carry their own name, status and code.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.AppError(c, appErr)

		return
	}

	// Echo's own errors (bad routes, binding failures) keep their status.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, "HTTPError", fmt.Sprintf("%v", httpErr.Message), 4000)

		return
	}

	// Anything else is a defect: log it and return a generic internal error.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "InternalServerError", "Internal server error", 5000)
}
