// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// RejectionRepository defines the interface for rejection counter persistence.
// Absence of a row means the user has never rejected, so lookups return a
// zero-valued counter instead of a not-found error.
type RejectionRepository interface {
	// Get retrieves the user's rejection counter. A user with no counter row
	// yet gets a zero counter with LastResetDate set to now.
	Get(ctx context.Context, userID uuid.UUID) (*entity.RejectionCount, error)

	// Increment raises the counter by one, first resetting it when a full
	// day has passed since the last reset. It creates the row on first use.
	Increment(ctx context.Context, userID uuid.UUID) (*entity.RejectionCount, error)

	// Reset zeroes the counter and stamps a new reset date.
	Reset(ctx context.Context, userID uuid.UUID) error
}
