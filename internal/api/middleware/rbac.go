package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketline/commerce-system/internal/api/metrics"
	"github.com/marketline/commerce-system/internal/core/domain"
)

// RBAC enforces role-based access control against an allowed-role set.
// The set is fixed per protected route and configured in the router.
// A request with no identity in context (the gate was bypassed or absent)
// is rejected as unauthenticated, not forbidden.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(identityKey).(domain.Identity)
			if !ok {
				metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.AuthzDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
