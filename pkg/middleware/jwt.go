package middleware

import (
	"net/http"
	"strings"

	"InternLink/internal/auth"

	"github.com/labstack/echo/v4"
)

// JWTMiddleware restores the session identity from the bearer token on every
// request. A missing or malformed token is treated as no session at all.
func JWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing token"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)

		claims, err := auth.ValidateJWT(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
		}
		c.Set("user", claims)
		return next(c)
	}
}
