package handler

import (
	"log/slog"
	"net/http"

	"cafemeetup/internal/delivery/http/middleware"
	"cafemeetup/internal/delivery/http/response"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttendanceHandler exposes attendance verification over HTTP.
type AttendanceHandler struct {
	uc     usecase.AttendanceUsecase
	logger *slog.Logger
}

// NewAttendanceHandler is the constructor for AttendanceHandler, injected by Fx.
func NewAttendanceHandler(uc usecase.AttendanceUsecase, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, logger: logger}
}

// StartAttendance begins attendance for a confirmed date and returns the
// caller's confirmation code.
func (h *AttendanceHandler) StartAttendance(c echo.Context) error {
	userID, proposalID, err := h.identify(c)
	if err != nil {
		return err
	}

	output, err := h.uc.StartAttendance(c.Request().Context(), userID, proposalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Attendance)
}

// GetMyAttendance returns the caller's attendance record for a date.
func (h *AttendanceHandler) GetMyAttendance(c echo.Context) error {
	userID, proposalID, err := h.identify(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetMyAttendance(c.Request().Context(), userID, proposalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Attendance)
}

// AttendanceQR renders the caller's confirmation code as a QR PNG.
func (h *AttendanceHandler) AttendanceQR(c echo.Context) error {
	userID, proposalID, err := h.identify(c)
	if err != nil {
		return err
	}

	png, err := h.uc.AttendanceQR(c.Request().Context(), userID, proposalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type verifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=4,numeric"`
}

// VerifyCode checks the other party's code and completes the date on a match.
func (h *AttendanceHandler) VerifyCode(c echo.Context) error {
	userID, proposalID, err := h.identify(c)
	if err != nil {
		return err
	}

	var req verifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid code input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.VerifyCode(c.Request().Context(), userID, proposalID, req.Code); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Attendance verified"})
}

func (h *AttendanceHandler) identify(c echo.Context) (userID, proposalID uuid.UUID, err error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrAuthNotFound.WrapMessage("user identity missing from token")
	}

	proposalID, parseErr := uuid.Parse(c.Param("proposalID"))
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid proposal ID")
	}

	return userID, proposalID, nil
}
