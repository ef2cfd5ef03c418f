// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for attendance persistence.
var (
	// ErrAttendanceNotFound is returned when an attendance record is not found.
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// AttendanceRepository defines the interface for attendance persistence.
type AttendanceRepository interface {
	// Create persists a new attendance record carrying a confirmation code.
	Create(ctx context.Context, attendance *entity.Attendance) error

	// FindByDateAndUser retrieves a single party's attendance record for a date.
	FindByDateAndUser(ctx context.Context, dateID, userID uuid.UUID) (*entity.Attendance, error)

	// FindByDate retrieves every attendance record written for a date.
	FindByDate(ctx context.Context, dateID uuid.UUID) ([]*entity.Attendance, error)

	// CodeMatches reports whether any attendance record for the date carries
	// the given confirmation code.
	CodeMatches(ctx context.Context, dateID uuid.UUID, code string) (bool, error)

	// MarkConfirmed sets the confirmed flag and timestamp on a record.
	MarkConfirmed(ctx context.Context, id uuid.UUID) error
}
