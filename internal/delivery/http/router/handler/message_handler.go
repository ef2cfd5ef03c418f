package handler

import (
	"log/slog"
	"net/http"

	"cafemeetup/internal/delivery/http/middleware"
	"cafemeetup/internal/delivery/http/response"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler exposes the notification inbox over HTTP.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

// Inbox returns a page of the caller's messages, newest first.
func (h *MessageHandler) Inbox(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	limit, offset := pagination(c)

	output, err := h.uc.Inbox(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"messages": output.Messages,
		"unread":   output.Unread,
	})
}

// MarkRead flags one of the caller's messages as read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("messageID"))
	if err != nil {
		return response.BindingError(c, "Invalid message ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, messageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Message marked as read"})
}

// UnreadCount returns the caller's unread message count.
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}
