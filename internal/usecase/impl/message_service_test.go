package impl

import (
	"context"
	"testing"

	"cafemeetup/internal/domain/entity"
	"cafemeetup/internal/domain/repository"
	mockRepo "cafemeetup/internal/mocks/repository"
	mockSvc "cafemeetup/internal/mocks/service"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture(t *testing.T) (usecase.MessageUsecase, *mockRepo.MockMessageRepository, *mockSvc.MockUnreadCache) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	unreadCache := mockSvc.NewMockUnreadCache(t)

	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		UnreadCache: unreadCache,
		Logger:      testLogger(),
	})

	return service, messageRepo, unreadCache
}

func TestMessageService_UnreadCount_CacheHit(t *testing.T) {
	service, _, unreadCache := newMessageFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	unreadCache.On("GetUnread", ctx, userID).Return(int64(4), true, nil)

	count, err := service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestMessageService_UnreadCount_CacheMissFallsBackToDatabase(t *testing.T) {
	service, messageRepo, unreadCache := newMessageFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	unreadCache.On("GetUnread", ctx, userID).Return(int64(0), false, nil)
	messageRepo.On("CountUnread", ctx, userID).Return(int64(2), nil)
	unreadCache.On("SetUnread", ctx, userID, int64(2)).Return(nil)

	count, err := service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMessageService_UnreadCount_CacheErrorIsNotFatal(t *testing.T) {
	service, messageRepo, unreadCache := newMessageFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	unreadCache.On("GetUnread", ctx, userID).Return(int64(0), false, errors.New("redis down"))
	messageRepo.On("CountUnread", ctx, userID).Return(int64(7), nil)
	unreadCache.On("SetUnread", ctx, userID, int64(7)).Return(errors.New("redis down"))

	count, err := service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestMessageService_MarkRead_InvalidatesCache(t *testing.T) {
	service, messageRepo, unreadCache := newMessageFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	messageID := uuid.New()

	messageRepo.On("MarkRead", ctx, messageID, userID).Return(nil)
	unreadCache.On("InvalidateUnread", ctx, userID).Return(nil)

	assert.NoError(t, service.MarkRead(ctx, userID, messageID))
}

func TestMessageService_MarkRead_NotFound(t *testing.T) {
	service, messageRepo, _ := newMessageFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	messageID := uuid.New()

	messageRepo.On("MarkRead", ctx, messageID, userID).Return(repository.ErrMessageNotFound)

	assert.Error(t, service.MarkRead(ctx, userID, messageID))
}

func TestMessageService_Inbox(t *testing.T) {
	service, messageRepo, unreadCache := newMessageFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	messages := []*entity.Message{
		{ID: uuid.New(), ReceiverID: userID, Type: entity.MessageMatch, Content: "hello"},
	}
	messageRepo.On("FindByReceiver", ctx, userID, 20, 0).Return(messages, nil)
	unreadCache.On("GetUnread", ctx, userID).Return(int64(1), true, nil)

	output, err := service.Inbox(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, output.Messages, 1)
	assert.Equal(t, int64(1), output.Unread)
}
