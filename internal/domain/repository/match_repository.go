// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchConflict is returned when a conditional match update matched
	// no row, meaning the match status changed concurrently.
	ErrMatchConflict = errors.New("match status changed concurrently")
)

// MatchRepository defines the interface for match persistence.
type MatchRepository interface {
	// Create persists a new pending match.
	Create(ctx context.Context, match *entity.Match) error

	// FindByID retrieves a match by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// FindActiveByUser retrieves the non-terminal match a user is currently
	// party to, if any.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Match, error)

	// FindByUser retrieves all matches a user has been party to, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error)

	// UpdateStatus moves a match from one status to another as a single
	// conditional update. It returns ErrMatchConflict when the match is no
	// longer in the expected from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.MatchStatus) error
}
