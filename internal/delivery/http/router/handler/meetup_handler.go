package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cafemeetup/internal/delivery/http/middleware"
	"cafemeetup/internal/delivery/http/response"
	"cafemeetup/internal/domain/entity"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MeetupHandler exposes the lifecycle state machine over HTTP.
type MeetupHandler struct {
	uc     usecase.MeetupUsecase
	logger *slog.Logger
}

// NewMeetupHandler is the constructor for MeetupHandler, injected by Fx.
func NewMeetupHandler(uc usecase.MeetupUsecase, logger *slog.Logger) *MeetupHandler {
	return &MeetupHandler{uc: uc, logger: logger}
}

// GetState returns the caller's dashboard view of the lifecycle.
func (h *MeetupHandler) GetState(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	state, err := h.uc.GetState(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// BecomeChooser moves the caller from default to chooser.
func (h *MeetupHandler) BecomeChooser(c echo.Context) error {
	return h.simpleTransition(c, h.uc.BecomeChooser, "You are now choosing")
}

// BecomeChosen moves the caller from default to chosen.
func (h *MeetupHandler) BecomeChosen(c echo.Context) error {
	return h.simpleTransition(c, h.uc.BecomeChosen, "You are now discoverable")
}

// BackToDefault cancels a chooser or chosen stance.
func (h *MeetupHandler) BackToDefault(c echo.Context) error {
	return h.simpleTransition(c, h.uc.BackToDefault, "Back to default")
}

// CloseMeetup returns a completed date to default.
func (h *MeetupHandler) CloseMeetup(c echo.Context) error {
	return h.simpleTransition(c, h.uc.CloseMeetup, "Meetup closed")
}

func (h *MeetupHandler) simpleTransition(c echo.Context, transition func(ctx context.Context, userID uuid.UUID) error, message string) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	if err := transition(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message})
}

// ListCandidates returns discoverable users for a chooser.
func (h *MeetupHandler) ListCandidates(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	candidates, err := h.uc.ListCandidates(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"candidates": candidates})
}

type selectCandidateRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
}

// SelectCandidate creates a pending match with the chosen candidate.
func (h *MeetupHandler) SelectCandidate(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req selectCandidateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid candidate input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	match, err := h.uc.SelectCandidate(c.Request().Context(), userID, req.CandidateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, match)
}

type respondToMatchRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

// RespondToMatch accepts or rejects the caller's pending match.
func (h *MeetupHandler) RespondToMatch(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("matchID"))
	if err != nil {
		return response.BindingError(c, "Invalid match ID")
	}

	var req respondToMatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid response input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RespondToMatch(c.Request().Context(), userID, matchID, *req.Accept); err != nil {
		return errors.WithStack(err)
	}

	message := "Match accepted"
	if !*req.Accept {
		message = "Match rejected"
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message})
}

type dateOptionRequest struct {
	StartsAt  time.Time `json:"starts_at" validate:"required"`
	VenueName string    `json:"venue_name" validate:"required,max=255"`
	Address   string    `json:"address" validate:"required,max=500"`
	Latitude  *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64  `json:"longitude" validate:"omitempty,longitude"`
}

type proposeDatesRequest struct {
	Options []dateOptionRequest `json:"options" validate:"required,len=3,dive"`
}

// ProposeDates submits three date options for an accepted match.
func (h *MeetupHandler) ProposeDates(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("matchID"))
	if err != nil {
		return response.BindingError(c, "Invalid match ID")
	}

	var req proposeDatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid proposal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	options := make([]entity.DateOption, 0, len(req.Options))
	for _, opt := range req.Options {
		options = append(options, entity.DateOption{
			StartsAt:  opt.StartsAt,
			VenueName: opt.VenueName,
			Address:   opt.Address,
			Latitude:  opt.Latitude,
			Longitude: opt.Longitude,
		})
	}

	proposal, err := h.uc.ProposeDates(c.Request().Context(), userID, matchID, &usecase.ProposeDatesInput{Options: options})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, proposal)
}

type selectDateOptionRequest struct {
	OptionIndex *int `json:"option_index" validate:"required,min=0,max=2"`
}

// SelectDateOption lets the non-proposer pick one of the proposed options.
func (h *MeetupHandler) SelectDateOption(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	proposalID, err := uuid.Parse(c.Param("proposalID"))
	if err != nil {
		return response.BindingError(c, "Invalid proposal ID")
	}

	var req selectDateOptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid option input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SelectDateOption(c.Request().Context(), userID, proposalID, *req.OptionIndex); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Date option selected"})
}

// ConfirmDate locks in the selected option.
func (h *MeetupHandler) ConfirmDate(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	proposalID, err := uuid.Parse(c.Param("proposalID"))
	if err != nil {
		return response.BindingError(c, "Invalid proposal ID")
	}

	if err := h.uc.ConfirmDate(c.Request().Context(), userID, proposalID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Date confirmed"})
}

// History lists the caller's past dates, newest first.
func (h *MeetupHandler) History(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	limit, offset := pagination(c)

	dates, err := h.uc.History(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"dates": dates})
}
