package profile

import (
	"errors"
	"net/http"

	"InternLink/internal/auth"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service *ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service *ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, log: log}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user claims"})
	}

	id, err := primitive.ObjectIDFromHex(claims.IdentityID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid identity"})
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile data not found"})
		}
		h.log.Error("Failed to fetch profile", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch profile"})
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user claims"})
	}

	id, err := primitive.ObjectIDFromHex(claims.IdentityID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid identity"})
	}

	var update ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	profile, err := h.service.Update(c.Request().Context(), id, update)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile data not found"})
		}
		h.log.Error("Failed to update profile", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update profile"})
	}
	return c.JSON(http.StatusOK, profile)
}
