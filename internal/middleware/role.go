package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RoleAdmin is the role claim required for operator-only routes.
const RoleAdmin = "ADMIN"

// RequireRole rejects with 403 unless JWTAuth stored one of roles in the
// context. It must run after JWTAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if !allowed[role] {
				return c.JSON(http.StatusForbidden, errorBody{Error: "forbidden"})
			}
			return next(c)
		}
	}
}
