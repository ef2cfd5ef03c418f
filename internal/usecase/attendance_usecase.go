package usecase

import (
	"context"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// AttendanceOutput returns a party's own attendance record, including the
// code they show the other party.
type AttendanceOutput struct {
	Attendance *entity.Attendance
}

// AttendanceUsecase drives the attendance verification phase of a confirmed
// date.
type AttendanceUsecase interface {
	// StartAttendance moves both parties of a confirmed date to
	// waiting_for_attendance and issues each a fresh confirmation code.
	StartAttendance(ctx context.Context, userID, proposalID uuid.UUID) (*AttendanceOutput, error)

	// GetMyAttendance returns the caller's attendance record for a date.
	GetMyAttendance(ctx context.Context, userID, proposalID uuid.UUID) (*AttendanceOutput, error)

	// AttendanceQR renders the caller's confirmation code as a QR PNG.
	AttendanceQR(ctx context.Context, userID, proposalID uuid.UUID) ([]byte, error)

	// VerifyCode checks a submitted code against every attendance record of
	// the date. On a match the meeting is verified: both parties move to
	// date_completed and receive a confirmation message.
	VerifyCode(ctx context.Context, userID, proposalID uuid.UUID, code string) error
}
