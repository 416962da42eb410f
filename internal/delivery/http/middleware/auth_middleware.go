package middleware

import (
	"github.com/labstack/echo/v4"

	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
	"github.com/jacketex894/login-project/internal/domain/service"
)

// userIDContextKey is the echo.Context key under which the authenticated
// account id is stored.
const userIDContextKey = "userID"

// AuthMiddleware guards routes that require an authenticated caller. It reads
// the access token from the request cookie, resolves the subject id and hands
// it to the route handler via the context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access
// token carried by the cookie. Resolution is side-effect free, so it runs on
// every request; failures surface as their domain error kinds.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.tokenSvc.ResolveIdentity(c.Request())
		if err != nil {
			return err
		}

		c.Set(userIDContextKey, userID)

		return next(c)
	}
}

// CurrentUserID returns the authenticated account id set by Authenticate.
// It must only be called on routes behind the middleware.
func CurrentUserID(c echo.Context) (uint64, error) {
	userID, ok := c.Get(userIDContextKey).(uint64)
	if !ok {
		return 0, domainerrors.ErrAccessTokenUserIDNotFound
	}

	return userID, nil
}
