package forum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"InternLink/internal/auth"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MessageSubscriber is the push side of the forum; the channel closes when
// the subscription context ends.
type MessageSubscriber interface {
	Subscribe(ctx context.Context) (<-chan *Message, error)
}

type ForumHandler struct {
	service *ForumService
	streams MessageSubscriber
	log     *zap.Logger
}

func NewForumHandler(service *ForumService, streams MessageSubscriber, log *zap.Logger) *ForumHandler {
	return &ForumHandler{service: service, streams: streams, log: log}
}

func (h *ForumHandler) ListMessages(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list discussion messages", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *ForumHandler) PostMessage(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user claims"})
	}

	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	message, err := h.service.Post(c.Request().Context(), claims.UserID, claims.Name, req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message text is empty"})
		}
		h.log.Error("Failed to post message", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to post message"})
	}
	return c.JSON(http.StatusCreated, message)
}

// StreamMessages pushes new messages to the client as server-sent events.
// The subscription lives exactly as long as the request context.
func (h *ForumHandler) StreamMessages(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.streams.Subscribe(ctx)
	if err != nil {
		h.log.Error("Failed to subscribe to discussion", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to subscribe to discussion"})
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case message, ok := <-messages:
			if !ok {
				return nil
			}
			data, err := json.Marshal(message)
			if err != nil {
				h.log.Error("Failed to marshal message", zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
