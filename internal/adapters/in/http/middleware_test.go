package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/identity"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, displayName, username, role string, ttl time.Duration) string {
	t.Helper()

	now := time.Now().UTC()
	claims := identity.Claims{
		UserID:      7,
		Username:    username,
		DisplayName: displayName,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authTestRig(handler echo.HandlerFunc, extra ...echo.MiddlewareFunc) *echo.Echo {
	verifier := identity.NewService(nil, []byte(testSecret))

	e := echo.New()
	middlewares := append([]echo.MiddlewareFunc{httpadapter.AuthMiddleware(verifier)}, extra...)
	e.GET("/protected", handler, middlewares...)
	return e
}

func okHandler(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingToken_Unauthorized(t *testing.T) {
	e := authTestRig(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedToken_Unauthorized(t *testing.T) {
	e := authTestRig(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken_Unauthorized(t *testing.T) {
	e := authTestRig(okHandler)
	token := signedToken(t, "Ana", "ana", user.RoleOperator, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken_PassesThrough(t *testing.T) {
	e := authTestRig(okHandler)
	token := signedToken(t, "Ana", "ana", user.RoleOperator, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireManager_OperatorToken_Forbidden(t *testing.T) {
	e := authTestRig(okHandler, httpadapter.RequireManager())
	token := signedToken(t, "Ana", "ana", user.RoleOperator, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireManager_ManagerToken_PassesThrough(t *testing.T) {
	e := authTestRig(okHandler, httpadapter.RequireManager())
	token := signedToken(t, "Gloria", "gloria", user.RoleManager, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
