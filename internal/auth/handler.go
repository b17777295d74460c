package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	service *AuthService
}

func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	token, identity, err := h.service.Login(c.Request().Context(), cred)
	if err != nil {
		if errors.Is(err, ErrInvalidDomain) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email domain for intern account"})
		}
		if errors.Is(err, ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Login failed"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":    token,
		"identity": identity,
	})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.service.Register(c.Request().Context(), req); err != nil {
		if errors.Is(err, ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Registration failed"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "User registered successfully"})
}
