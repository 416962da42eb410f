// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jacketex894/login-project/internal/delivery/http/middleware"
	"github.com/jacketex894/login-project/internal/delivery/http/response"
	"github.com/jacketex894/login-project/internal/domain/service"
	"github.com/jacketex894/login-project/internal/usecase"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Mail     string `json:"mail" validate:"required,email"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest is the credential-change payload for the
// authenticated account.
type UpdateAccountRequest struct {
	Password string `json:"password" validate:"required"`
	Mail     string `json:"mail" validate:"required,email"`
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "ValidationError", "Invalid registration input", 4000)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.UserName,
		Password: req.Password,
		Email:    req.Mail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{
		"message":   output.Message,
		"user_name": output.Username,
	})
}

// Login handles the login request. On success the issued token is delivered
// as an HTTP-only, strict-same-site cookie whose lifetime equals the token TTL.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "ValidationError", "Invalid login input", 4000)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     service.AccessTokenCookie,
		Value:    output.AccessToken,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.TTL().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	return response.JSON(c, http.StatusOK, map[string]string{
		"message": output.Message,
	})
}

// Profile returns the authenticated account's identity. It exists mainly so
// downstream services have a reference for the cookie-guard contract.
func (h *UserHandler) Profile(c echo.Context) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"message": "Welcome!",
		"user_id": userID,
	})
}

// UpdateAccount changes the authenticated account's password and email.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "ValidationError", "Invalid account update input", 4000)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateAccount(c.Request().Context(), &usecase.UpdateAccountInput{
		UserID:      userID,
		NewPassword: req.Password,
		NewEmail:    req.Mail,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{
		"message": "User successfully updated",
	})
}

// DeleteAccount removes the authenticated account. The cookie is expired so
// the now-orphaned token is not resent.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     service.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	return response.JSON(c, http.StatusOK, map[string]string{
		"message": "User successfully deleted",
	})
}
