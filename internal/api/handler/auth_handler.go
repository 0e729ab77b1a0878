package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketline/commerce-system/internal/api/metrics"
	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a new account and returns the user plus a fresh token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration profile"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignUpsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignUpsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	tok, user, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		status := http.StatusInternalServerError
		result := "error"
		switch err {
		case domain.ErrUserExists:
			status, result = http.StatusConflict, "exists"
		case domain.ErrValidation:
			status, result = http.StatusBadRequest, "invalid"
		}
		metrics.SignUpsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	metrics.SignUpsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: tok, User: user})
}

// SignIn authenticates a user and returns the user plus a bearer token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	tok, user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		result := "error"
		switch err {
		case domain.ErrInvalidCredentials:
			status, result = http.StatusUnauthorized, "invalid_credentials"
		case domain.ErrUserNotFound:
			status, result = http.StatusNotFound, "not_found"
		}
		metrics.SignInsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: tok, User: user})
}
