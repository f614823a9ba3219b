package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"terracore/internal/model"
)

func protectedEcho(t *testing.T, service *JWTService, adminOnly bool) *echo.Echo {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "claims missing")
		}
		return c.String(http.StatusOK, claims.Email)
	}

	middlewares := []echo.MiddlewareFunc{Middleware(service)}
	if adminOnly {
		middlewares = append(middlewares, RequireAdmin)
	}
	e.GET("/protected", handler, middlewares...)
	return e
}

func TestMiddleware(t *testing.T) {
	service := NewJWTService("test-secret")

	validToken, err := service.GenerateToken(&model.User{
		ID:    1,
		Email: "user@example.com",
		Role:  model.RoleUser,
	})
	assert.NoError(t, err)

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
	}{
		{
			name:         "missing header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "bare scheme without a token",
			authHeader:   "Bearer",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "scheme followed by nothing",
			authHeader:   "Bearer ",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed token",
			authHeader:   "Bearer not-a-jwt",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "token signed with another secret",
			authHeader:   "Bearer " + mustToken(t, NewJWTService("other-secret")),
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "valid token",
			authHeader:   "Bearer " + validToken,
			expectedCode: http.StatusOK,
		},
	}

	e := protectedEcho(t, service, false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "user@example.com", rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	service := NewJWTService("test-secret")
	e := protectedEcho(t, service, true)

	userToken, err := service.GenerateToken(&model.User{ID: 1, Email: "user@example.com", Role: model.RoleUser})
	assert.NoError(t, err)
	adminToken, err := service.GenerateToken(&model.User{ID: 2, Email: "admin@terracore.com", Role: model.RoleAdmin})
	assert.NoError(t, err)

	t.Run("user token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin@terracore.com", rec.Body.String())
	})
}

func mustToken(t *testing.T, service *JWTService) string {
	t.Helper()
	token, err := service.GenerateToken(&model.User{ID: 9, Email: "other@example.com", Role: model.RoleUser})
	assert.NoError(t, err)
	return token
}
