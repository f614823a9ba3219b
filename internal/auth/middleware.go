package auth

import (
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "terracore/internal/errors"
)

// claimsContextKey is where the middleware stores decoded claims on the
// request context (echo-jwt's default key).
const claimsContextKey = "user"

// Middleware returns the bearer-token middleware for protected routes.
// A request carrying no token fails with 401, whether the Authorization
// header is absent entirely or holds a bare scheme with nothing after it;
// a present but invalid or expired token fails with 403. On success the
// decoded Claims are stored in the request context for role checks
// downstream.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized,
					apperrors.NewErrorResponse("Access token required"))
			}
			return echo.NewHTTPError(http.StatusForbidden,
				apperrors.NewErrorResponse("Invalid token"))
		},
	})
}

// CurrentClaims returns the decoded claims attached by Middleware.
func CurrentClaims(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}

// RequireAdmin rejects authenticated requests whose token lacks the admin
// role. It must run after Middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := CurrentClaims(c)
		if !ok || !claims.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden,
				apperrors.NewErrorResponse("Admin access required"))
		}
		return next(c)
	}
}
