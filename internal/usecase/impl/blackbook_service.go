package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cafemeetup/internal/delivery/context"
	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// blackBookService implements the BlackBookUsecase interface. All queries are
// owner-scoped, so one user can never see another's notes.
type blackBookService struct {
	blackBookRepo repository.BlackBookRepository
	userRepo      repository.UserRepository
	logger        *slog.Logger
}

// BlackBookServiceParams holds dependencies for BlackBookService, injected by Fx.
type BlackBookServiceParams struct {
	fx.In

	BlackBookRepo repository.BlackBookRepository
	UserRepo      repository.UserRepository
	Logger        *slog.Logger
}

// NewBlackBookService is the constructor for blackBookService.
func NewBlackBookService(params BlackBookServiceParams) usecase.BlackBookUsecase {
	return &blackBookService{
		blackBookRepo: params.BlackBookRepo,
		userRepo:      params.UserRepo,
		logger:        params.Logger,
	}
}

func (srv *blackBookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertNote creates or replaces the caller's note about a subject.
func (srv *blackBookService) UpsertNote(ctx context.Context, ownerID uuid.UUID, input *usecase.UpsertNoteInput) (*entity.BlackBookEntry, error) {
	note := strings.TrimSpace(input.Note)
	if note == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "note is empty")
	}
	if ownerID == input.SubjectID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot take a note about yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.SubjectID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "note subject not found")
		}

		return nil, errors.Wrap(err, "failed to find note subject")
	}

	entry := &entity.BlackBookEntry{
		OwnerID:   ownerID,
		SubjectID: input.SubjectID,
		Note:      note,
	}
	if err := srv.blackBookRepo.Upsert(ctx, entry); err != nil {
		srv.log(ctx).Warn("Failed to upsert black book entry", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upsert black book entry")
	}

	return entry, nil
}

// ListNotes returns the caller's notes, newest first.
func (srv *blackBookService) ListNotes(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.BlackBookEntry, error) {
	entries, err := srv.blackBookRepo.FindByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list black book entries")
	}

	return entries, nil
}

// DeleteNote removes the caller's note about a subject.
func (srv *blackBookService) DeleteNote(ctx context.Context, ownerID, subjectID uuid.UUID) error {
	if err := srv.blackBookRepo.Delete(ctx, ownerID, subjectID); err != nil {
		if errors.Is(err, repository.ErrBlackBookEntryNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "black book entry not found")
		}

		return errors.Wrap(err, "failed to delete black book entry")
	}

	return nil
}
