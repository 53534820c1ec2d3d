package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/auth/repository"
	"farmhub/pkg/auth/token"
)

// RequireAuth gates a route group behind bearer-token authentication.
// On success the resolved user is attached to the context under "user"
// and its id under "uid"; every failure is a 401 with a generic message.
func RequireAuth(tokens *token.Service, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "authentication required"})
			}

			uid, err := tokens.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid or expired token"})
			}

			// user may have been deleted after the token was issued
			u, err := users.FindByID(uid)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token"})
			}

			c.Set("user", u)
			c.Set("uid", u.ID)
			return next(c)
		}
	}
}
