package posting

import (
	"context"
	"errors"
	"net/http"

	"InternLink/internal/auth"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ApplicationStatusFinder reports the viewer's application status for a
// posting; the empty string means no application exists yet.
type ApplicationStatusFinder interface {
	Status(ctx context.Context, userID string, internshipID primitive.ObjectID) (string, error)
}

type PostingHandler struct {
	service  *PostingService
	statuses ApplicationStatusFinder
	log      *zap.Logger
}

func NewPostingHandler(service *PostingService, statuses ApplicationStatusFinder, log *zap.Logger) *PostingHandler {
	return &PostingHandler{service: service, statuses: statuses, log: log}
}

// CreatePostingRequest represents the request to publish an internship.
type CreatePostingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Experience  string   `json:"experience"`
	Img         string   `json:"img"`
	Location    string   `json:"location"`
	Mode        string   `json:"mode"`
	Skills      []string `json:"skills"`
	Stipend     string   `json:"stipend"`
}

// ListInternships returns the full collection filtered by the query params.
// No params means the unfiltered list.
func (h *PostingHandler) ListInternships(c echo.Context) error {
	filter := Filter{
		Search:     c.QueryParam("search"),
		Type:       c.QueryParam("type"),
		Company:    c.QueryParam("company"),
		Location:   c.QueryParam("location"),
		Experience: c.QueryParam("experience"),
	}

	postings, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		h.log.Error("Failed to list internships", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch internships"})
	}
	return c.JSON(http.StatusOK, postings)
}

// GetInternship returns one posting plus the viewer's application status so
// the detail view can decide whether to offer the apply action.
func (h *PostingHandler) GetInternship(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship ID"})
	}

	ctx := c.Request().Context()
	posting, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Internship not found"})
		}
		h.log.Error("Failed to fetch internship", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch internship"})
	}

	response := map[string]interface{}{
		"internship": posting,
	}

	claims, ok := c.Get("user").(*auth.JWTClaims)
	if ok && claims != nil && claims.Class == auth.ClassIntern {
		status, err := h.statuses.Status(ctx, claims.UserID, id)
		if err != nil {
			h.log.Error("Failed to check application status", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check application status"})
		}
		response["application_status"] = status
		response["can_apply"] = status == ""
	}

	return c.JSON(http.StatusOK, response)
}

// ListCompanyInternships returns the postings owned by the caller's company.
func (h *PostingHandler) ListCompanyInternships(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user claims"})
	}

	postings, err := h.service.ListForCompany(c.Request().Context(), claims.Company)
	if err != nil {
		h.log.Error("Failed to list company internships", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch internships"})
	}
	return c.JSON(http.StatusOK, postings)
}

func (h *PostingHandler) CreateInternship(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user claims"})
	}

	var req CreatePostingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	posting := &Posting{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Experience:  req.Experience,
		Img:         req.Img,
		Location:    req.Location,
		Mode:        req.Mode,
		Skills:      req.Skills,
		Stipend:     req.Stipend,
	}

	if err := h.service.CreateForCompany(c.Request().Context(), claims.Company, posting); err != nil {
		if errors.Is(err, ErrMissingCompany) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Please enter a company name"})
		}
		h.log.Error("Failed to create internship", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload internship opportunity"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Internship opportunity uploaded successfully"})
}

func (h *PostingHandler) DeleteInternship(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user claims"})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship ID"})
	}

	if err := h.service.Remove(c.Request().Context(), id, claims.Company); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Internship not found"})
		}
		if errors.Is(err, ErrForbidden) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Internship belongs to another company"})
		}
		h.log.Error("Failed to remove internship", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove internship"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Internship removed successfully"})
}
