package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"expman-backend/internal/usecase/auth"
)

// RequireAccessToken runs after the jwt middleware and rejects any token
// whose token_type is not "access". A refresh token only buys a new access
// token at the refresh endpoint, it never reaches the API directly.
func RequireAccessToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired jwt")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || claims.TokenType != "access" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired jwt")
			}
			return next(c)
		}
	}
}
