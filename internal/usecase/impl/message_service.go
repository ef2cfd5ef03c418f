package impl

import (
	"context"
	"log/slog"

	deliverycontext "cafemeetup/internal/delivery/context"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/domain/service"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface. Unread counts are
// served cache-first with the database as fallback and source of truth.
type messageService struct {
	messageRepo repository.MessageRepository
	unreadCache service.UnreadCache
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UnreadCache service.UnreadCache
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		unreadCache: params.UnreadCache,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Inbox returns a page of the user's messages plus the unread count.
func (srv *messageService) Inbox(ctx context.Context, userID uuid.UUID, limit, offset int) (*usecase.InboxOutput, error) {
	messages, err := srv.messageRepo.FindByReceiver(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	unread, err := srv.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.InboxOutput{Messages: messages, Unread: unread}, nil
}

// MarkRead flags one of the user's messages as read and drops the cached
// unread count.
func (srv *messageService) MarkRead(ctx context.Context, userID, messageID uuid.UUID) error {
	if err := srv.messageRepo.MarkRead(ctx, messageID, userID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "message not found")
		}

		return errors.Wrap(err, "failed to mark message read")
	}

	if err := srv.unreadCache.InvalidateUnread(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate unread cache", slog.Any("userID", userID), slog.Any("error", err))
	}

	return nil
}

// UnreadCount returns the unread total, cache-first.
func (srv *messageService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	if count, ok, err := srv.unreadCache.GetUnread(ctx, userID); err != nil {
		srv.log(ctx).Warn("Unread cache read failed", slog.Any("userID", userID), slog.Any("error", err))
	} else if ok {
		return count, nil
	}

	count, err := srv.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	if err := srv.unreadCache.SetUnread(ctx, userID, count); err != nil {
		srv.log(ctx).Warn("Unread cache write failed", slog.Any("userID", userID), slog.Any("error", err))
	}

	return count, nil
}
