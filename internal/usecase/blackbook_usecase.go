package usecase

import (
	"context"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertNoteInput carries a private note about a past date partner.
type UpsertNoteInput struct {
	SubjectID uuid.UUID
	Note      string
}

// BlackBookUsecase manages a user's private notes. Notes are visible only to
// their owner.
type BlackBookUsecase interface {
	// UpsertNote creates or replaces the caller's note about a subject.
	UpsertNote(ctx context.Context, ownerID uuid.UUID, input *UpsertNoteInput) (*entity.BlackBookEntry, error)

	// ListNotes returns the caller's notes, newest first.
	ListNotes(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.BlackBookEntry, error)

	// DeleteNote removes the caller's note about a subject.
	DeleteNote(ctx context.Context, ownerID, subjectID uuid.UUID) error
}
