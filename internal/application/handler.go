package application

import (
	"errors"
	"net/http"

	"InternLink/internal/auth"
	"InternLink/internal/posting"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	service *ApplicationService
	log     *zap.Logger
}

func NewApplicationHandler(service *ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{service: service, log: log}
}

// Apply creates a pending application for the logged-in intern.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user claims"})
	}

	internshipID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship ID"})
	}

	app, err := h.service.Apply(c.Request().Context(), claims.UserID, internshipID)
	if err != nil {
		if errors.Is(err, posting.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Internship not found"})
		}
		if errors.Is(err, ErrAlreadyApplied) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Already applied to this internship"})
		}
		h.log.Error("Failed to submit application", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit application"})
	}
	return c.JSON(http.StatusCreated, app)
}

// PendingByInternship lists the pending applications for one posting in the
// recruiter console.
func (h *ApplicationHandler) PendingByInternship(c echo.Context) error {
	internshipID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship ID"})
	}

	apps, err := h.service.PendingForInternship(c.Request().Context(), internshipID)
	if err != nil {
		h.log.Error("Failed to fetch applications", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch applications"})
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	return h.decide(c, StatusApproved)
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	return h.decide(c, StatusRejected)
}

func (h *ApplicationHandler) decide(c echo.Context, status string) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid application ID"})
	}

	app, err := h.service.Decide(c.Request().Context(), id, status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Application not found"})
		}
		if errors.Is(err, ErrNotPending) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Application is not pending"})
		}
		h.log.Error("Failed to update application", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update application"})
	}
	return c.JSON(http.StatusOK, app)
}
