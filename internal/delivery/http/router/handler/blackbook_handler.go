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

// BlackBookHandler exposes the owner-private notes over HTTP.
type BlackBookHandler struct {
	uc     usecase.BlackBookUsecase
	logger *slog.Logger
}

// NewBlackBookHandler is the constructor for BlackBookHandler, injected by Fx.
func NewBlackBookHandler(uc usecase.BlackBookUsecase, logger *slog.Logger) *BlackBookHandler {
	return &BlackBookHandler{uc: uc, logger: logger}
}

type upsertNoteRequest struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Note      string    `json:"note" validate:"required,max=5000"`
}

// UpsertNote creates or replaces the caller's note about a subject.
func (h *BlackBookHandler) UpsertNote(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req upsertNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.uc.UpsertNote(c.Request().Context(), ownerID, &usecase.UpsertNoteInput{
		SubjectID: req.SubjectID,
		Note:      req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// ListNotes returns the caller's notes, newest first.
func (h *BlackBookHandler) ListNotes(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	limit, offset := pagination(c)

	entries, err := h.uc.ListNotes(c.Request().Context(), ownerID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"notes": entries})
}

// DeleteNote removes the caller's note about a subject.
func (h *BlackBookHandler) DeleteNote(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	subjectID, err := uuid.Parse(c.Param("subjectID"))
	if err != nil {
		return response.BindingError(c, "Invalid subject ID")
	}

	if err := h.uc.DeleteNote(c.Request().Context(), ownerID, subjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Note deleted"})
}
