package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacketex894/login-project/config"
	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
	"github.com/jacketex894/login-project/internal/domain/service"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		JWT: config.JWTConfig{
			SecretKey:     "test-secret",
			Algorithm:     "HS256",
			ExpireMinutes: 30,
		},
	})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	require.Error(t, err)
}

func TestNewJWTService_UnsupportedAlgorithm(t *testing.T) {
	_, err := NewJWTService(&config.Config{
		JWT: config.JWTConfig{
			SecretKey: "test-secret",
			Algorithm: "RS256",
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported jwt algorithm")
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret"},
	})

	require.NoError(t, err)
	assert.Equal(t, 60*time.Minute, svc.TTL())
}

func TestJWTService_IssueAndDecode(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, "42", claims["sub"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	assert.Equal(t, 30*time.Minute, time.Duration(exp-iat)*time.Second)
}

func TestJWTService_DecodeExpired(t *testing.T) {
	svc := newTestTokenService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Decode(tokenString)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenExpired)
}

func TestJWTService_DecodeTampered(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	// Flip a character in the middle of the payload segment so the claims no
	// longer match the signature.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	mid := len(payload) / 2
	if payload[mid] == 'x' {
		payload[mid] = 'y'
	} else {
		payload[mid] = 'x'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Decode(tampered)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
}

func TestJWTService_DecodeWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other, err := NewJWTService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "other-secret"},
	})
	require.NoError(t, err)

	token, err := other.Issue(42)
	require.NoError(t, err)

	_, err = svc.Decode(token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
}

func TestJWTService_DecodeGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.Decode("not-a-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
}

func TestJWTService_ResolveIdentity(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessTokenCookie, Value: token})

	userID, err := svc.ResolveIdentity(req)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestJWTService_ResolveIdentity_NoCookie(t *testing.T) {
	svc := newTestTokenService(t)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)

	_, err := svc.ResolveIdentity(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenNotFound)
}

func TestJWTService_ResolveIdentity_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := noSub.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessTokenCookie, Value: tokenString})

	_, err = svc.ResolveIdentity(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenUserIDNotFound)
}

func TestJWTService_ResolveIdentity_NonNumericSubject(t *testing.T) {
	svc := newTestTokenService(t)

	badSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-number",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := badSub.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessTokenCookie, Value: tokenString})

	_, err = svc.ResolveIdentity(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenUserIDNotFound)
}

func TestJWTService_ResolveIdentity_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessTokenCookie, Value: tokenString})

	_, err = svc.ResolveIdentity(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenExpired)
}
