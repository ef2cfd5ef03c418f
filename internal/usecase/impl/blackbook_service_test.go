package impl

import (
	"context"
	"testing"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	mockRepo "cafemeetup/internal/mocks/repository"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBlackBookFixture(t *testing.T) (usecase.BlackBookUsecase, *mockRepo.MockBlackBookRepository, *mockRepo.MockUserRepository) {
	blackBookRepo := mockRepo.NewMockBlackBookRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewBlackBookService(BlackBookServiceParams{
		BlackBookRepo: blackBookRepo,
		UserRepo:      userRepo,
		Logger:        testLogger(),
	})

	return service, blackBookRepo, userRepo
}

func TestBlackBookService_UpsertNote(t *testing.T) {
	service, blackBookRepo, userRepo := newBlackBookFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	subjectID := uuid.New()

	userRepo.On("FindByID", ctx, subjectID).Return(&entity.User{ID: subjectID}, nil)
	blackBookRepo.On("Upsert", ctx, mock.MatchedBy(func(entry *entity.BlackBookEntry) bool {
		return entry.OwnerID == ownerID && entry.SubjectID == subjectID && entry.Note == "great conversation"
	})).Return(nil)

	entry, err := service.UpsertNote(ctx, ownerID, &usecase.UpsertNoteInput{
		SubjectID: subjectID,
		Note:      "  great conversation  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "great conversation", entry.Note)
}

func TestBlackBookService_UpsertNote_EmptyNote(t *testing.T) {
	service, _, _ := newBlackBookFixture(t)

	_, err := service.UpsertNote(context.Background(), uuid.New(), &usecase.UpsertNoteInput{
		SubjectID: uuid.New(),
		Note:      "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBlackBookService_UpsertNote_SelfSubject(t *testing.T) {
	service, _, _ := newBlackBookFixture(t)
	ownerID := uuid.New()

	_, err := service.UpsertNote(context.Background(), ownerID, &usecase.UpsertNoteInput{
		SubjectID: ownerID,
		Note:      "me",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBlackBookService_ListNotes_OwnerScoped(t *testing.T) {
	service, blackBookRepo, _ := newBlackBookFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	blackBookRepo.On("FindByOwner", ctx, ownerID, 20, 0).Return([]*entity.BlackBookEntry{
		{ID: uuid.New(), OwnerID: ownerID, Note: "lovely"},
	}, nil)

	entries, err := service.ListNotes(ctx, ownerID, 20, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ownerID, entries[0].OwnerID)
}
