package auth

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jacketex894/login-project/config"
	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
	"github.com/jacketex894/login-project/internal/domain/service"
	"github.com/jacketex894/login-project/internal/errors"
)

const defaultExpireMinutes = 60

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte            // Secret key for signing access tokens.
	method jwt.SigningMethod // Configured HMAC signing method.
	ttl    time.Duration     // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	var method jwt.SigningMethod
	switch cfg.JWT.Algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, errors.Errorf("unsupported jwt algorithm: %s", cfg.JWT.Algorithm)
	}

	expireMinutes := cfg.JWT.ExpireMinutes
	if expireMinutes <= 0 {
		expireMinutes = defaultExpireMinutes
	}

	return &jwtService{
		secret: []byte(cfg.JWT.SecretKey),
		method: method,
		ttl:    time.Duration(expireMinutes) * time.Minute,
	}, nil
}

// Issue creates a new signed access token carrying the account id as subject.
func (s *jwtService) Issue(userID uint64) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(userID, 10), // Subject (who the token is for)
		"iat": time.Now().Unix(),              // Issued At
		"exp": time.Now().Add(s.ttl).Unix(),   // Expiration Time
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Decode verifies a token string and returns its claims. Expiry and
// signature/structure failures map to their distinct domain kinds.
func (s *jwtService) Decode(tokenString string) (map[string]any, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrAccessTokenExpired
		}

		return nil, domainerrors.ErrAccessTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrAccessTokenInvalid
	}

	return claims, nil
}

// ResolveIdentity extracts the authenticated account id from the request's
// access-token cookie. It performs no I/O beyond reading the request.
func (s *jwtService) ResolveIdentity(r *http.Request) (uint64, error) {
	cookie, err := r.Cookie(service.AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return 0, domainerrors.ErrAccessTokenNotFound
	}

	claims, err := s.Decode(cookie.Value)
	if err != nil {
		return 0, err
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, domainerrors.ErrAccessTokenUserIDNotFound
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrAccessTokenUserIDNotFound
	}

	return userID, nil
}

// TTL returns the configured access-token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
