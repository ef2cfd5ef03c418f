// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrStatusConflict is returned when a conditional status update matched
	// no row, meaning the user's status changed concurrently.
	ErrStatusConflict = errors.New("user status changed concurrently")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByStatus retrieves users currently in the given lifecycle status,
	// excluding excludeID, ordered by most recent activity.
	FindByStatus(ctx context.Context, status entity.UserStatus, excludeID uuid.UUID, limit int) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateStatus moves a user from one lifecycle status to another as a
	// single conditional update. It returns ErrStatusConflict when the user
	// is no longer in the expected from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.UserStatus) error

	// TouchLastActive records the user's latest activity timestamp.
	TouchLastActive(ctx context.Context, id uuid.UUID) error
}
