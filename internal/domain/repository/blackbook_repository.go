// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for black book persistence.
var (
	// ErrBlackBookEntryNotFound is returned when a black book entry is not found.
	ErrBlackBookEntryNotFound = errors.New("black book entry not found")
)

// BlackBookRepository defines the interface for private note persistence.
// Entries are scoped to their owner; every operation takes the owner ID so
// implementations can enforce that scope in the query itself.
type BlackBookRepository interface {
	// Upsert creates or replaces the owner's note about a subject.
	Upsert(ctx context.Context, entry *entity.BlackBookEntry) error

	// FindByOwner retrieves all of an owner's entries, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.BlackBookEntry, error)

	// FindByOwnerAndSubject retrieves the owner's note about a subject, if any.
	FindByOwnerAndSubject(ctx context.Context, ownerID, subjectID uuid.UUID) (*entity.BlackBookEntry, error)

	// Delete removes the owner's note about a subject.
	Delete(ctx context.Context, ownerID, subjectID uuid.UUID) error
}
