package service

import (
	"net/http"
	"time"
)

// AccessTokenCookie is the name of the cookie that carries the access token
// between client and server.
const AccessTokenCookie = "access_token"

// TokenService defines the interface for issuing and validating the signed,
// time-boxed identity tokens handed out on login. Tokens are stateless: they
// are never persisted server-side and are invalidated only by expiry or
// secret rotation.
type TokenService interface {
	// Issue creates a signed token whose "sub" claim is the account id and
	// whose "exp" claim is now plus the configured TTL.
	Issue(userID uint64) (string, error)

	// Decode verifies and parses a token string. It returns
	// errors.ErrAccessTokenExpired when the token's expiry has passed and
	// errors.ErrAccessTokenInvalid when signature or structure verification
	// fails (tampered, wrong secret, malformed).
	Decode(tokenString string) (map[string]any, error)

	// ResolveIdentity reads the access token from the request's cookie and
	// returns the authenticated account id. It is side-effect free and safe
	// to call on every request. Returns errors.ErrAccessTokenNotFound when
	// the cookie is absent and errors.ErrAccessTokenUserIDNotFound when the
	// decoded claims lack a usable subject.
	ResolveIdentity(r *http.Request) (uint64, error)

	// TTL returns the configured access-token lifetime, used by the delivery
	// layer to bound the cookie's Max-Age to the token's validity.
	TTL() time.Duration
}
