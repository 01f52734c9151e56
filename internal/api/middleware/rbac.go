package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control on top of Session.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := User(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgUnauthorized})
			}
			if _, ok := allowed[user.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Acesso negado"})
			}
			return next(c)
		}
	}
}
