package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware.
// Routes calling this must be registered behind the gate; a missing
// identity is rejected with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get("identity").(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
