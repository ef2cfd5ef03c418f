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

// RatingHandler exposes post-date ratings over HTTP.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{uc: uc, logger: logger}
}

type rateDateRequest struct {
	Score   int     `json:"score" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// RateDate records the caller's rating of the other party of a completed date.
func (h *RatingHandler) RateDate(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	proposalID, err := uuid.Parse(c.Param("proposalID"))
	if err != nil {
		return response.BindingError(c, "Invalid proposal ID")
	}

	var req rateDateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rating, err := h.uc.RateDate(c.Request().Context(), userID, proposalID, &usecase.RateDateInput{
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rating)
}

// Summary returns the aggregate ratings the caller has received.
func (h *RatingHandler) Summary(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	summary, err := h.uc.Summary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// Received lists ratings the caller has received, newest first.
func (h *RatingHandler) Received(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	limit, offset := pagination(c)

	ratings, err := h.uc.Received(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"ratings": ratings})
}
